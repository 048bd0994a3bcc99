package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/errands-sys/portfolio-backend/api"
	"github.com/errands-sys/portfolio-backend/config"
	"github.com/errands-sys/portfolio-backend/database"
)

func main() {
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	cfg := config.New()

	store, err := database.Open(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Error connecting to database")
		os.Exit(1)
	}
	defer store.Close()

	log.Info().Str("backend", store.Dialect().String()).Msg("Database connected")

	// Schema must exist before anything serves a request
	if err := store.InitSchema(context.Background()); err != nil {
		log.Error().Err(err).Msg("Error initializing database schema")
		os.Exit(1)
	}

	currentDB := database.New(store)

	// If seeding fixtures, run the seed job and exit
	if config.GetBool(cfg, "SEED_DB", false) {
		log.Info().Msg("Seeding fixture data...")
		if err := database.Seed(context.Background(), currentDB); err != nil {
			log.Error().Err(err).Msg("Error seeding database")
			os.Exit(1)
		}
		return
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
