package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/picshelf/picshelf/internal/config"
	"github.com/picshelf/picshelf/internal/gallery"
	"github.com/picshelf/picshelf/internal/handlers"
	"github.com/picshelf/picshelf/internal/storage"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the gallery backend server",
		Long: `Starts the Picshelf backend on the specified port.

The backend serves uploaded images, session-based login, paginated
image listing, and admin label management.`,
		Example: `  # Start server on default port 5001
  picshelf serve

  # Start server with a config file
  picshelf serve --config picshelf.yml --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			creds, err := cfg.Credentials()
			if err != nil {
				return err
			}

			files, err := storage.NewDiskStore(cfg.UploadsDir)
			if err != nil {
				return err
			}
			sessions := storage.NewSessionStore(cfg.SessionDuration())
			svc := gallery.NewService(files, storage.NewLabelStore())
			handler := handlers.New(creds, sessions, svc, files)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/login", handler.HandleLogin)
			mux.HandleFunc("/logout", handler.HandleLogout)
			mux.HandleFunc("/user", handler.HandleUser)
			mux.HandleFunc("/upload", handler.HandleUpload)
			mux.HandleFunc("/images", handler.HandleImages)
			mux.HandleFunc("/admin-dashboard", handler.HandleAdminDashboard)
			mux.HandleFunc("/label", handler.HandleLabel)
			mux.HandleFunc("/uploads/", handler.HandleUploads)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})
			mux.HandleFunc("/", handler.HandleRoot)

			corsMiddleware := cors.New(cors.Options{
				AllowedOrigins:   cfg.CORSOrigins,
				AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"Content-Type"},
				AllowCredentials: true,
			})

			addr := ":" + cfg.Port
			server := &http.Server{
				Addr:    addr,
				Handler: handler.Recover(corsMiddleware.Handler(mux)),
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Picshelf backend available", "addr", addr, "uploads", cfg.UploadsDir)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")

	return cmd
}
