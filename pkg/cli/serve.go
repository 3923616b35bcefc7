package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/breedsense/breedsense/pkg/cli/config"
	httpctrl "github.com/breedsense/breedsense/pkg/controller/http"
	"github.com/breedsense/breedsense/pkg/service/export"
	"github.com/breedsense/breedsense/pkg/service/telemetry"
	"github.com/breedsense/breedsense/pkg/usecase"
	"github.com/breedsense/breedsense/pkg/utils/logging"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var uploadsDir string
	var sourceDir string
	var sentryDSN string
	var corsOrigins []string
	var enableMetrics bool
	var appCfg config.AppConfig
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("BREEDSENSE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "uploads-dir",
			Usage:       "Directory for transient upload scratch files",
			Value:       "uploads",
			Sources:     cli.EnvVars("BREEDSENSE_UPLOADS_DIR"),
			Destination: &uploadsDir,
		},
		&cli.StringFlag{
			Name:        "source-dir",
			Usage:       "Project root served by the source download endpoint (empty to disable)",
			Sources:     cli.EnvVars("BREEDSENSE_SOURCE_DIR"),
			Destination: &sourceDir,
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error tracking",
			Sources:     cli.EnvVars("BREEDSENSE_SENTRY_DSN"),
			Destination: &sentryDSN,
		},
		&cli.StringSliceFlag{
			Name:        "cors-origin",
			Usage:       "Allowed CORS origin (repeatable, default: any)",
			Sources:     cli.EnvVars("BREEDSENSE_CORS_ORIGIN"),
			Destination: &corsOrigins,
		},
		&cli.BoolFlag{
			Name:        "enable-metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Sources:     cli.EnvVars("BREEDSENSE_ENABLE_METRICS"),
			Destination: &enableMetrics,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if sentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:     sentryDSN,
					Release: version,
				}); err != nil {
					return goerr.Wrap(err, "failed to initialize sentry")
				}
				defer sentry.Flush(2 * time.Second)
				logging.Default().Info("Sentry error tracking enabled")
			}

			// Load classifier configuration
			clfCfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load classifier configuration")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			metrics, err := telemetry.NewMetrics()
			if err != nil {
				return goerr.Wrap(err, "failed to register metrics")
			}

			if err := os.MkdirAll(uploadsDir, 0750); err != nil {
				return goerr.Wrap(err, "failed to create uploads directory", goerr.V("dir", uploadsDir))
			}

			uc, err := usecase.New(repo, clfCfg,
				usecase.WithScratchDir(uploadsDir),
				usecase.WithMetrics(metrics),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize use cases")
			}

			httpOpts := []httpctrl.Options{
				httpctrl.WithCORSOrigins(corsOrigins),
				httpctrl.WithMetrics(enableMetrics),
			}
			if sourceDir != "" {
				httpOpts = append(httpOpts, httpctrl.WithSourceArchiver(export.New(sourceDir)))
				logging.Default().Info("Source download endpoint enabled", "dir", sourceDir)
			}

			httpHandler, err := httpctrl.New(uc, httpOpts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"backend", repoCfg.Backend(),
					"metrics", enableMetrics,
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
