package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-birthday-keeper/internal/birthday"
	"github.com/MKhiriev/go-birthday-keeper/internal/client"
	"github.com/MKhiriev/go-birthday-keeper/internal/config"
	"github.com/MKhiriev/go-birthday-keeper/internal/logger"
	"github.com/MKhiriev/go-birthday-keeper/internal/service"
	"github.com/MKhiriev/go-birthday-keeper/internal/store"
	"github.com/MKhiriev/go-birthday-keeper/internal/tui"
	"github.com/MKhiriev/go-birthday-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	bootLog := logger.NewLogger("birthday-keeper")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	// the terminal belongs to the UI from here on
	log, err := logger.NewClientLogger("birthday-keeper", cfg.Log.File, cfg.Log.Level)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating client logger")
	}

	if err = run(cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		_ = log.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = log.Close()
}

func run(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create storage: %w", err)
	}
	defer storages.Close()

	services := service.NewClientServices(storages, cfg.App, buildInfo, birthday.NewClock(), log)

	ui, err := tui.New(services, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
