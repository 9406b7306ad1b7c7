package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-api/internal/adapter"
	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
)

func main() {
	log := logger.NewClientLogger("go-auth-client")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPAuthAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}
	api.SetToken(cfg.Token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, api, cfg.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
