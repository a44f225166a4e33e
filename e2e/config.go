package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	EmailsAddr string `envconfig:"EMAILS_ADDR"`
	// Must match the AUTH_TOKEN_SECRET and AUTH_TOKEN_ISSUER of the running server
	TokenSecret string `envconfig:"E2E_TOKEN_SECRET"`
	TokenIssuer string `envconfig:"E2E_TOKEN_ISSUER" default:"persona"`
	// Persona already known by the server directory, see `inspect persona add`
	PersonaID    string `envconfig:"E2E_PERSONA_ID"`
	PersonaUID   string `envconfig:"E2E_PERSONA_UID"`
	PersonaEmail string `envconfig:"E2E_PERSONA_EMAIL"`
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
