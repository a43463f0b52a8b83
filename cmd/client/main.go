package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-note-share/internal/adapter"
	"github.com/MKhiriev/go-note-share/internal/client"
	"github.com/MKhiriev/go-note-share/internal/config"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/service"
	"github.com/MKhiriev/go-note-share/internal/store"
	"github.com/MKhiriev/go-note-share/internal/tui"
	"github.com/MKhiriev/go-note-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; flags and real env vars still apply without it.
	_ = godotenv.Load()

	log := logger.New("note-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	sessions, err := store.NewSessionStore(cfg.Storage.SessionFile)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.API, sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(sessions, serverAdapter, cfg.Notifications, log)

	publicLinkFor := func(noteID int64) string {
		return fmt.Sprintf("%s/notes/public/%d", strings.TrimRight(cfg.API.BaseURL, "/"), noteID)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, publicLinkFor, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Notifications, log)
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
