// Package config resolves graphwalk settings from defaults, an optional
// .env file and GRAPHWALK_* environment variables. Command-line flags are
// bound on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/graphwalk/builder"
	"github.com/katalvlaran/graphwalk/traversal"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GRAPHWALK_"

// DefaultEnvFile is the .env file Load reads when it exists.
const DefaultEnvFile = ".env"

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config controls a graphwalk run.
type Config struct {
	// Scene is a YAML or HCL scene file. When set it takes precedence over Shape.
	Scene string
	// Shape and Size pick a builder fixture when no scene is given.
	Shape string `validate:"shape"`
	Size  int    `validate:"min=1,max=64"`
	// Seed feeds the random shape.
	Seed int64
	// Algorithm is the initial traversal mode.
	Algorithm string `validate:"algorithm"`

	LogFormat string `validate:"oneof=console json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFile   string

	// MetricsAddr serves /metrics when set, e.g. ":9090".
	MetricsAddr string `validate:"omitempty,hostname_port"`
	MetricsPath string `validate:"startswith=/"`
	// MetricsOut receives a text exposition dump when a headless run ends.
	MetricsOut string

	// Watch reloads the scene file on change.
	Watch    bool
	Debounce time.Duration `validate:"gte=0"`

	// Steps caps headless runs; 0 means until finished.
	Steps int `validate:"gte=0"`

	// Width and Height size the canvas in cells.
	Width  int `validate:"min=10,max=400"`
	Height int `validate:"min=5,max=200"`
}

// configValidate checks struct tags of Config.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
	_ = configValidate.RegisterValidation("shape", func(fl validator.FieldLevel) bool {
		_, err := builder.Shape(fl.Field().String(), 1)
		return err == nil
	})
	_ = configValidate.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := traversal.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
}

// Default returns the built-in settings: a 4×4 grid walked with BFS.
func Default() Config {
	return Config{
		Shape:       "grid",
		Size:        4,
		Seed:        1,
		Algorithm:   traversal.BFS.String(),
		LogFormat:   "console",
		LogLevel:    "info",
		MetricsPath: "/metrics",
		Debounce:    100 * time.Millisecond,
		Width:       72,
		Height:      20,
	}
}

// Load returns Default overlaid with envFile (when it exists) and then the
// process environment. An empty envFile means DefaultEnvFile. Variables
// already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: %s: %w", envFile, err)
	}

	cfg := Default()
	cfg.Scene = envOrDefault("SCENE", cfg.Scene)
	cfg.Shape = envOrDefault("SHAPE", cfg.Shape)
	cfg.Size = envOrDefaultInt("SIZE", cfg.Size)
	cfg.Seed = int64(envOrDefaultInt("SEED", int(cfg.Seed)))
	cfg.Algorithm = envOrDefault("ALGORITHM", cfg.Algorithm)
	cfg.LogFormat = envOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = envOrDefault("LOG_FILE", cfg.LogFile)
	cfg.MetricsAddr = envOrDefault("METRICS_ADDR", cfg.MetricsAddr)
	cfg.MetricsPath = envOrDefault("METRICS_PATH", cfg.MetricsPath)
	cfg.MetricsOut = envOrDefault("METRICS_OUT", cfg.MetricsOut)
	cfg.Watch = envOrDefaultBool("WATCH", cfg.Watch)
	cfg.Debounce = envOrDefaultDuration("DEBOUNCE", cfg.Debounce)
	cfg.Steps = envOrDefaultInt("STEPS", cfg.Steps)
	cfg.Width = envOrDefaultInt("WIDTH", cfg.Width)
	cfg.Height = envOrDefaultInt("HEIGHT", cfg.Height)

	return cfg, nil
}

// Validate checks value ranges and cross-field rules.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Watch && c.Scene == "" {
		return fmt.Errorf("%w: watch needs a scene file", ErrInvalidConfig)
	}

	return nil
}

// AlgorithmValue resolves Algorithm; call after Validate.
func (c Config) AlgorithmValue() traversal.Algorithm {
	a, _ := traversal.ParseAlgorithm(c.Algorithm)
	return a
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(EnvPrefix + key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func envOrDefaultInt(key string, fallback int) int {
	if value := envOrDefault(key, ""); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envOrDefaultBool(key string, fallback bool) bool {
	if value := envOrDefault(key, ""); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envOrDefaultDuration(key string, fallback time.Duration) time.Duration {
	if value := envOrDefault(key, ""); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
