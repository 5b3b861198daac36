package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/HerbHall/bigoref/internal/apidocs"
	"github.com/HerbHall/bigoref/internal/catalog"
	"github.com/HerbHall/bigoref/internal/complexity"
	"github.com/HerbHall/bigoref/internal/config"
	"github.com/HerbHall/bigoref/internal/metrics"
	"github.com/HerbHall/bigoref/internal/server"
	"github.com/HerbHall/bigoref/internal/version"
)

func runServe(args []string, w io.Writer) error {
	fs := newFlagSet("serve", w)
	configPath := fs.String("config", "", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	settings, err := cfg.Server()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("bigoref server starting", zap.String("version", version.Short()))

	srv, err := newServer(cfg, settings, logger)
	if err != nil {
		logger.Error("invalid catalog configuration", zap.Error(err))
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("bigoref server ready", zap.String("addr", cfg.ServerAddr()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
		}
		return err
	case sig := <-sigCh:
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
		return err
	}

	logger.Info("bigoref server stopped")
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	if cfg.GetBool("log.development") {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// newServer loads the catalog and wires every API handler. A catalog
// ConfigurationError is returned unchanged.
func newServer(cfg *config.Config, settings config.ServerSettings, logger *zap.Logger) (*server.Server, error) {
	cat, err := openCatalog(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded",
		zap.Int("questions", len(cat.Questions())),
		zap.Int("sorting", len(cat.Sorting())),
		zap.Int("searching", len(cat.Searching())),
		zap.Int("structures", len(cat.Structures())),
	)

	m := metrics.New()
	engine := catalog.NewEngine(cat, m)

	return server.New(server.Config{
		Addr:      cfg.ServerAddr(),
		RateLimit: settings.RateLimit,
		RateBurst: settings.RateBurst,
	}, logger, m,
		catalog.NewHandler(engine, logger.Named("catalog")),
		complexity.NewHandler(m, logger.Named("complexity")),
		apidocs.Routes{},
	), nil
}
