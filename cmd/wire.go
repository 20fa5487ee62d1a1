package cmd

import (
	"fmt"

	"github.com/bnema/pareto-trade/internal/adapters/catalog"
	"github.com/bnema/pareto-trade/internal/adapters/render/board"
	"github.com/bnema/pareto-trade/internal/application"
	"github.com/bnema/pareto-trade/internal/config"
	"github.com/bnema/pareto-trade/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type rootOptions struct {
	configDir string
	verbose   bool
}

type app struct {
	config        config.Config
	logger        *zap.Logger
	catalog       ports.ScenarioCatalog
	service       *application.GameService
	boardRenderer func(application.Snapshot, board.RenderOptions) (string, error)
}

func (a *app) wire(opts rootOptions) error {
	overrides, err := config.ParseEnv()
	if err != nil {
		return err
	}
	if opts.configDir != "" {
		overrides.ConfigDir = opts.configDir
	}

	cfg, err := config.Load(viper.New(), overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, opts.verbose)
	if err != nil {
		return err
	}

	scenarios, err := catalog.Open(cfg.ScenariosPath)
	if err != nil {
		return fmt.Errorf("wire scenario catalog: %w", err)
	}

	service, err := application.NewGameService(scenarios, ports.SystemClock{}, logger, application.Options{
		WeightsA: cfg.WeightsA,
		WeightsB: cfg.WeightsB,
	})
	if err != nil {
		return fmt.Errorf("wire game service: %w", err)
	}

	a.config = cfg
	a.logger = logger
	a.catalog = scenarios
	a.service = service
	a.boardRenderer = board.Render

	logger.Debug("app wired",
		zap.String("config_dir", cfg.Dir),
		zap.String("scenarios_path", cfg.ScenariosPath),
	)

	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	if verbose {
		parsed = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	return logger, nil
}
