package config

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	councilConfig "github.com/iurnickita/binday/internal/council/config"
	handlerConfig "github.com/iurnickita/binday/internal/handler/config"
	loggerConfig "github.com/iurnickita/binday/internal/logger/config"
	serviceConfig "github.com/iurnickita/binday/internal/service/config"
)

type Config struct {
	Handler handlerConfig.Config
	Service serviceConfig.Config
	Council councilConfig.Config
	Logger  loggerConfig.Config
}

// GetConfig читает флаги командной строки; переменные окружения
// (и файл .env, если он есть) имеют приоритет.
func GetConfig() (Config, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

// Load registers the configuration flags on fs, parses args and then applies
// environment overrides. Extra flags may be registered on fs beforehand.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{}

	fs.StringVar(&cfg.Handler.ServerAddr, "a", ":8080", "server address")
	fs.StringVar(&cfg.Logger.LogLevel, "l", "info", "log level")
	fs.StringVar(&cfg.Council.APIAddr, "c", "https://servicelayer3c.azure-api.net/wastecalendar/", "council waste calendar API address")
	fs.DurationVar(&cfg.Council.Timeout, "t", 10*time.Second, "council API timeout")
	fs.DurationVar(&cfg.Council.RateLimit, "r", 100*time.Millisecond, "minimum interval between council API calls")
	fs.IntVar(&cfg.Service.NumberOfCollections, "n", 10, "number of collections to request")
	fs.StringVar(&cfg.Service.Timezone, "z", "Europe/London", "timezone of collection dates")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
