package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	httphandler "github.com/ericfisherdev/tokenview/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/tokenview/internal/adapter/driving/web"
	"github.com/ericfisherdev/tokenview/internal/application"
	"github.com/ericfisherdev/tokenview/internal/config"
	"github.com/ericfisherdev/tokenview/internal/metrics"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// newRootCmd builds the tokenview command tree. The root command serves the
// sign-in and dashboard screens.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tokenview",
		Short: "Sign in with Google and view the issued credential",
		Long: `tokenview serves a Google sign-in page, stores the credential the sign-in
widget returns for this browser, and shows it on a dashboard with a copy button.

Configuration is read from TOKENVIEW_* environment variables.
TOKENVIEW_GOOGLE_CLIENT_ID is required.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, newLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout))
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().String("listen-addr", "", "address to listen on (overrides TOKENVIEW_LISTEN_ADDR)")
	rootCmd.Flags().String("store", "", "credential store backend: sqlite or memory (overrides TOKENVIEW_STORE)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return rootCmd
}

// loadConfig reads the environment, applies the flags that were set, and only
// then validates, so a flag can repair an invalid environment value.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, err
	}

	if flags.Changed("listen-addr") {
		if cfg.ListenAddr, err = flags.GetString("listen-addr"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("store") {
		if cfg.Store, err = flags.GetString("store"); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger creates a structured logger writing to w. Unknown levels fall
// back to info.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	slog.SetDefault(logger)
	logger.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"store", cfg.Store,
		"db_path", cfg.DBPath,
		"secure_cookies", cfg.SecureCookies,
	)

	// 1. Open the credential store.
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	// 2. Wire services.
	credSvc := application.NewCredentialService(store)
	healthSvc := application.NewHealthService(store, cfg.Store)

	// 3. API routes and metrics.
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(healthSvc, logger))
	mux.Handle("GET /metrics", metrics.Handler())

	// 4. GUI routes, with the sign-in callback rate limited per client IP.
	limiter := httphandler.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateBurst)
	go limiter.Run(ctx.Done())

	webHandler := webhandler.NewHandler(credSvc, webhandler.Options{
		ClientID:        cfg.GoogleClientID,
		WelcomeMarkdown: cfg.WelcomeMarkdown,
		SecureCookies:   cfg.SecureCookies,
	}, logger)
	webhandler.RegisterRoutes(mux, webHandler, limiter.Middleware)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           httphandler.ApplyMiddleware(mux, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	logger.Info("tokenview started", "version", version, "listen_addr", cfg.ListenAddr)

	// 5. Wait for a shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
	}

	// 6. Graceful shutdown with 10s drain. The store closes after the server.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
