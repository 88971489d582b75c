package config

import "time"

type Config struct {
	APIAddr   string        `env:"COUNCIL_API_ADDRESS"`
	Timeout   time.Duration `env:"COUNCIL_API_TIMEOUT"`
	RateLimit time.Duration `env:"COUNCIL_API_RATE_LIMIT"`
}
