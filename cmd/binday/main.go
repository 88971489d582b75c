package main

import (
	"log"

	"github.com/iurnickita/binday/internal/config"
	"github.com/iurnickita/binday/internal/council"
	"github.com/iurnickita/binday/internal/handler"
	"github.com/iurnickita/binday/internal/logger"
	"github.com/iurnickita/binday/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	zaplog, err := logger.NewZapLog(cfg.Logger)
	if err != nil {
		return err
	}
	defer zaplog.Sync()

	council := council.NewClient(cfg.Council, zaplog)
	service, err := service.NewService(cfg.Service, council, zaplog)
	if err != nil {
		return err
	}

	return handler.Serve(cfg.Handler, service, zaplog)
}
