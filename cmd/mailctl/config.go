package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr string `envconfig:"ADDR" default:"localhost:8080"`
	// TOKEN is the bearer token sent on list, show and delete
	Token       string        `envconfig:"TOKEN"`
	TokenSecret string        `envconfig:"TOKEN_SECRET"`
	TokenIssuer string        `envconfig:"TOKEN_ISSUER" default:"persona"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"10s"`
	// COLOURS enables colorized output
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("MAILCTL", &cfg)
	return cfg, err
}
