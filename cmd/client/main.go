package main

import (
	"fmt"

	"github.com/Anjaratiana11/restaurant-mobile/internal/adapter"
	"github.com/Anjaratiana11/restaurant-mobile/internal/client"
	"github.com/Anjaratiana11/restaurant-mobile/internal/config"
	"github.com/Anjaratiana11/restaurant-mobile/internal/logger"
	"github.com/Anjaratiana11/restaurant-mobile/internal/service"
	"github.com/Anjaratiana11/restaurant-mobile/internal/store"
	"github.com/Anjaratiana11/restaurant-mobile/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("restaurant-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	identityAdapter, err := adapter.NewIdentityAdapter(cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity adapter")
	}

	orderingAdapter, err := adapter.NewOrderingAdapter(cfg.Ordering, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create ordering adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, identityAdapter, orderingAdapter, log)

	ui, err := tui.New(services, cfg.App.UserID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
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
