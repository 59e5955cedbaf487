package websocket

import (
	"chat-relay/domain"
	"sync"
)

// Peer is one connection registered in the Hub.
type Peer interface {
	ID() domain.ConnectionID
	// Send enqueues an encoded frame without blocking. It reports false when
	// the peer is closed or its queue is full.
	Send(frame []byte) bool
	Close()
}

// BufferedPeer is a Peer backed by a bounded FIFO queue. Frames are written
// to the network, in order, by whoever drains Frames.
type BufferedPeer struct {
	id     domain.ConnectionID
	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func NewBufferedPeer(id domain.ConnectionID, size int) *BufferedPeer {
	return &BufferedPeer{id: id, send: make(chan []byte, size)}
}

func (p *BufferedPeer) ID() domain.ConnectionID {
	return p.id
}

func (p *BufferedPeer) Send(frame []byte) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	select {
	case p.send <- frame:
		return true
	default:
		return false
	}
}

// Close is idempotent. Frames already queued can still be drained.
func (p *BufferedPeer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.send)
	}
}

func (p *BufferedPeer) Frames() <-chan []byte {
	return p.send
}
