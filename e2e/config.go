package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RELAY_ADDR is the websocket endpoint, e.g. ws://localhost:8080/ws
	RelayAddr    string `envconfig:"RELAY_ADDR"`
	NotifierAddr string `envconfig:"NOTIFIER_ADDR"`
	JwtSecret    string `envconfig:"JWT_SECRET"`
	JwtIssuer    string `envconfig:"JWT_ISSUER" default:"chat-relay"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
