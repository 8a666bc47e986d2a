package main

import (
	"fmt"

	"github.com/MKhiriev/go-area-keeper/internal/adapter"
	"github.com/MKhiriev/go-area-keeper/internal/client"
	"github.com/MKhiriev/go-area-keeper/internal/config"
	"github.com/MKhiriev/go-area-keeper/internal/events"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/service"
	"github.com/MKhiriev/go-area-keeper/internal/store"
	"github.com/MKhiriev/go-area-keeper/internal/tui"
	"github.com/MKhiriev/go-area-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-area-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	bus := events.NewBus()
	services := service.NewClientServices(localStorage, serverAdapter, bus, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, bus, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
