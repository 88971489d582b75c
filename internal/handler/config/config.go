package config

type Config struct {
	ServerAddr string `env:"SERVER_ADDRESS"`
}
