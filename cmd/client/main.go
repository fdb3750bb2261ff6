package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cash-card/internal/adapter"
	"github.com/MKhiriev/go-cash-card/internal/client"
	"github.com/MKhiriev/go-cash-card/internal/config"
	"github.com/MKhiriev/go-cash-card/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger("cashcard-client", os.Stderr)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cashCardAdapter, err := adapter.NewHTTPAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating http adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = client.NewApp(cashCardAdapter, os.Stdout, log).Run(ctx, cfg.Args)
	if err == nil {
		return
	}

	log.Error().Err(err).Msg("command failed")
	if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) ||
		errors.Is(err, client.ErrMissingArgument) || errors.Is(err, client.ErrInvalidArgument) {
		fmt.Fprint(os.Stderr, client.Usage)
		os.Exit(2)
	}
	os.Exit(1)
}
