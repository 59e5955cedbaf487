package runtime

import (
	"sync"
	"time"
)

const DefaultDedupWindow = time.Second

// DedupCache absorbs retried signals. A fingerprint seen less than one
// window ago is a duplicate; its timestamp is not refreshed, so a client
// retrying in a tight loop still gets one delivery per window.
type DedupCache struct {
	mu        sync.Mutex
	window    time.Duration
	lastSeen  map[string]time.Time
	lastSweep time.Time
}

func NewDedupCache(window time.Duration) *DedupCache {
	if window <= 0 {
		window = DefaultDedupWindow
	}
	return &DedupCache{window: window, lastSeen: make(map[string]time.Time)}
}

// Seen reports whether fingerprint is a duplicate at instant now, recording
// it otherwise. Entries older than twice the window are swept on the way.
func (c *DedupCache) Seen(fingerprint string, now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep(now)

	if last, ok := c.lastSeen[fingerprint]; ok && now.Sub(last) < c.window {
		return true
	}
	c.lastSeen[fingerprint] = now
	return false
}

func (c *DedupCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lastSeen)
}

// sweep walks the map at most once per window, which keeps the cost per
// Seen call amortized constant. A Seen call never observes an entry older
// than three windows.
func (c *DedupCache) sweep(now time.Time) {
	if now.Sub(c.lastSweep) < c.window {
		return
	}
	c.lastSweep = now
	for fingerprint, last := range c.lastSeen {
		if now.Sub(last) >= 2*c.window {
			delete(c.lastSeen, fingerprint)
		}
	}
}
