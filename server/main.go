package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ShutdownGraceDuration bounds how long Run waits for in-flight requests to
// finish once it receives SIGINT.
var ShutdownGraceDuration = 5 * time.Second

// Config configures Run.
type Config struct {
	// Addr is the address to listen on, e.g. ":8000".
	Addr string
	// Debug enables debug-level logging.
	Debug bool
	// Pretty switches from JSON logs to a human-readable console writer.
	Pretty bool
}

// Run starts the HTTP server and blocks until it receives SIGINT, then
// shuts down gracefully, mirroring the teacher project's signal-handling
// shape.
func Run(cfg Config) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("debug mode enabled")
	}

	srv := &http.Server{
		Handler:      ConfigureRouting(),
		Addr:         cfg.Addr,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server fatal error")
		}
	}()
	log.Info().Str("address", srv.Addr).Msg("server started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	log.Info().Msg("SIGINT received")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownGraceDuration)
	defer cancel()

	log.Info().Msg("shutting down")
	return srv.Shutdown(ctx)
}
