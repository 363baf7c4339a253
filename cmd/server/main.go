package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hy-wedding/rsvp-api/internal/config"
	"github.com/hy-wedding/rsvp-api/internal/database"
	"github.com/hy-wedding/rsvp-api/internal/handlers"
	"github.com/hy-wedding/rsvp-api/internal/notifier"
	"github.com/hy-wedding/rsvp-api/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	discordNotifier, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
	if err != nil {
		log.Info().Err(err).Msg("discord notifier not initialized")
	}

	rsvpStore := store.NewGormStore(db)

	var n notifier.Notifier
	if discordNotifier != nil {
		n = discordNotifier
	}
	rsvpHandler := handlers.NewRSVPHandler(rsvpStore, n, cfg)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, rsvpHandler)

	// Start Server
	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
