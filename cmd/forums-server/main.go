// Package main provides the entry point for forums-server.
//
// forums-server is a demo forums backend with session-based
// authentication, an in-memory store seeded with a deterministic
// fixture dataset, and a JSON HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mcbarinov/p1--demo-forums--api/internal/core/service"
	"github.com/mcbarinov/p1--demo-forums--api/internal/fixture"
	"github.com/mcbarinov/p1--demo-forums--api/internal/infra/buildinfo"
	"github.com/mcbarinov/p1--demo-forums--api/internal/infra/confloader"
	"github.com/mcbarinov/p1--demo-forums--api/internal/infra/shutdown"
	"github.com/mcbarinov/p1--demo-forums--api/internal/server/config"
	"github.com/mcbarinov/p1--demo-forums--api/internal/server/httpserver"
	"github.com/mcbarinov/p1--demo-forums--api/internal/storage/memory"
	"github.com/mcbarinov/p1--demo-forums--api/internal/telemetry/logger"
	"github.com/mcbarinov/p1--demo-forums--api/internal/telemetry/metric"
)

func main() {
	app := &cli.App{
		Name:    "forums-server",
		Usage:   "Demo forums backend server",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				EnvVars: []string{"FORUMS_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "watch-config",
				Usage: "Reload the log level when the config file changes",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"), c.Bool("watch-config"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string, watchConfig bool) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	logger.SetDefault(log)

	log.Info("starting forums-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", configFile)

	// Storage and fixture dataset
	store := memory.NewStore()
	sessions := memory.NewSessionTable()
	if err := fixture.Load(context.Background(), store); err != nil {
		return fmt.Errorf("load fixture data: %w", err)
	}

	users, forums, posts, comments := store.Counts()
	log.Info("fixture data loaded",
		"users", users,
		"forums", forums,
		"posts", posts,
		"comments", comments)

	// Services
	authSvc := service.NewAuthService(store, sessions)
	forumSvc := service.NewForumService(store)

	// Metrics
	registry := metric.NewRegistry(sessions.Count)
	registry.SetEntityCounts(users, forums, posts, comments)

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		AuthService:        authSvc,
		ForumService:       forumSvc,
		Logger:             log,
		Metrics:            registry,
		CORSAllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		SecureCookies:      cfg.Security.SecureCookies,
	})

	httpServer := httpserver.New(cfg.Server.HTTP, router)

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout, shutdown.WithLogger(log))
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Optional config file watcher for runtime log level changes
	if watchConfig && configFile != "" {
		watcher, err := startConfigWatcher(configFile, log)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			return watcher.Stop()
		})
	}

	go func() {
		log.Info("HTTP server listening", "addr", httpServer.Addr())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// startConfigWatcher re-reads the config file on change and applies the
// log level. Other settings require a restart.
func startConfigWatcher(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(configFile)
		if err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		logger.SetLevel(cfg.Log.Level)
		log.Info("config reloaded", "log_level", cfg.Log.Level)
	})

	if err := watcher.Watch(configFile); err != nil {
		_ = watcher.Stop()
		return nil, err
	}
	watcher.StartAsync()

	return watcher, nil
}
