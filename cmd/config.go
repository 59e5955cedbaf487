package main

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	Host               string        `env:"HOST,default=localhost"`
	Port               int           `env:"PORT,default=8080"`
	GrpcPort           int           `env:"GRPC_PORT,default=9090"`
	DebugPort          int           `env:"DEBUG_PORT,default=8081"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	JwtSecret          string        `env:"JWT_SECRET,required=true"`
	JwtIssuer          string        `env:"JWT_ISSUER,default=chat-relay"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true"`
	LimitMessages      *int          `env:"LIMIT_MESSAGES"`
	SignalTTL          time.Duration `env:"SIGNAL_TTL,default=24h"`
	DedupWindow        time.Duration `env:"DEDUP_WINDOW,default=1s"`
	RoomScopedSignals  string        `env:"ROOM_SCOPED_SIGNALS,default=offer|answer|ice-candidate|call-accepted|call-ended"`
	MultiTargetSignals string        `env:"MULTI_TARGET_SIGNALS,default=call-request|call-cancelled|call-ended"`
	DedupSignals       string        `env:"DEDUP_SIGNALS,default=offer|answer|call-request|call-accepted|call-rejected|call-cancelled|call-ended"`
	SendBufferSize     int           `env:"SEND_BUFFER_SIZE,default=256"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT,default=10s"`
	PongTimeout        time.Duration `env:"PONG_TIMEOUT,default=60s"`
	MaxFrameBytes      int64         `env:"MAX_FRAME_BYTES,default=65536"`
	MaxFramesPerSecond int           `env:"MAX_FRAMES_PER_SECOND,default=50"`
	MaxContentLength   int           `env:"MAX_CONTENT_LENGTH,default=4000"`
	CensoredWords      string        `env:"CENSORED_WORDS"`
	CensorCharacter    rune          `env:"CENSOR_CHARACTER,default=42"`
	TaskBufferSize     int           `env:"TASK_BUFFER_SIZE,default=128"`
	TaskTimeout        time.Duration `env:"TASK_TIMEOUT,default=10s"`
	HeartbeatInterval  time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=1s"`
	AllowAnonymousJoin bool          `env:"ALLOW_ANONYMOUS_JOIN,default=true"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// list splits a "|" separated variable, ignoring blanks
func list(value string) []string {
	return lo.Compact(lo.Map(strings.Split(value, "|"), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}
