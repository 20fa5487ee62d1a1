package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pareto-trade/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	configName    = "config"
	configType    = "toml"
	appDirName    = "pareto"
	scenariosFile = "scenarios.toml"

	ScenariosPathKey = "scenarios.path"
	PlayerNameKey    = "player.name"
	WeightsAPizzaKey = "weights.a.pizza"
	WeightsASodaKey  = "weights.a.soda"
	WeightsBPizzaKey = "weights.b.pizza"
	WeightsBSodaKey  = "weights.b.soda"

	DefaultPlayerName = "Player"
	DefaultLogLevel   = "warn"
)

// Env holds the PARETO_* overrides. They win over the config file.
type Env struct {
	ConfigDir     string `env:"PARETO_CONFIG_DIR"`
	ScenariosPath string `env:"PARETO_SCENARIOS_PATH"`
	LogLevel      string `env:"PARETO_LOG_LEVEL" envDefault:"warn"`
	Player        string `env:"PARETO_PLAYER"`
}

type Config struct {
	Dir           string
	ScenariosPath string
	PlayerName    string
	LogLevel      string
	WeightsA      domain.Weights
	WeightsB      domain.Weights
}

func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Load reads config.toml from the config directory, applies env overrides and
// validates the result. A missing config file is not an error.
func Load(v *viper.Viper, overrides Env) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir := overrides.ConfigDir
	if dir == "" {
		resolved, err := defaultConfigDir()
		if err != nil {
			return Config{}, err
		}
		dir = resolved
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)
	v.SetDefault(ScenariosPathKey, filepath.Join(dir, scenariosFile))
	v.SetDefault(PlayerNameKey, DefaultPlayerName)
	v.SetDefault(WeightsAPizzaKey, domain.DefaultWeightsA.Pizza)
	v.SetDefault(WeightsASodaKey, domain.DefaultWeightsA.Soda)
	v.SetDefault(WeightsBPizzaKey, domain.DefaultWeightsB.Pizza)
	v.SetDefault(WeightsBSodaKey, domain.DefaultWeightsB.Soda)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Dir:           dir,
		ScenariosPath: v.GetString(ScenariosPathKey),
		PlayerName:    v.GetString(PlayerNameKey),
		LogLevel:      overrides.LogLevel,
		WeightsA:      domain.Weights{Pizza: v.GetInt(WeightsAPizzaKey), Soda: v.GetInt(WeightsASodaKey)},
		WeightsB:      domain.Weights{Pizza: v.GetInt(WeightsBPizzaKey), Soda: v.GetInt(WeightsBSodaKey)},
	}
	if overrides.ScenariosPath != "" {
		cfg.ScenariosPath = overrides.ScenariosPath
	}
	if overrides.Player != "" {
		cfg.PlayerName = overrides.Player
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ScenariosPath) == "" {
		return errors.New("scenarios path is empty")
	}
	if err := c.WeightsA.Validate(); err != nil {
		return fmt.Errorf("weights.a: %w", err)
	}
	if err := c.WeightsB.Validate(); err != nil {
		return fmt.Errorf("weights.b: %w", err)
	}

	return nil
}

func defaultConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", appDirName), nil
}
