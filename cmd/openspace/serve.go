package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/srgjo27/openspace/internal/adapter/handler"
	"github.com/srgjo27/openspace/internal/adapter/repository/jsonfile"
	"github.com/srgjo27/openspace/internal/config"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the seating API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx, cfg, jsonfile.NewStore(statePath(cfg, "")))
		if err != nil {
			return err
		}
		defer rt.Close()

		mux := http.NewServeMux()
		handler.NewSeatingHandler(rt.svc).Routes(mux)

		server := &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		srvErr := make(chan error, 1)
		go func() {
			log.Printf("Server starting on %s", cfg.HTTPAddr)
			srvErr <- server.ListenAndServe()
		}()

		select {
		case err := <-srvErr:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
			log.Println("Shutting down server...")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		log.Println("Server exiting")
		return nil
	},
}
