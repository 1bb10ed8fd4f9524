package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultSheetKeyword  = "ICP备案"
	DefaultColumnKeyword = "域名"
)

type Config struct {
	TargetsDir string `validate:"required"`
	ResultsDir string `validate:"required"`

	SheetKeyword  string `validate:"required"`
	ColumnKeyword string `validate:"required"`

	LogLevel  string `validate:"loglevel"`
	LogFormat string `validate:"logformat"`

	// Now is read once per run to stamp the report file name.
	Now func() time.Time `validate:"-"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		TargetsDir: getEnv("TARGETS_DIR", filepath.Join(cwd, "targets")),
		ResultsDir: getEnv("RESULTS_DIR", filepath.Join(cwd, "results")),

		SheetKeyword:  getEnv("ICP_SHEET_KEYWORD", DefaultSheetKeyword),
		ColumnKeyword: getEnv("DOMAIN_COLUMN_KEYWORD", DefaultColumnKeyword),

		LogLevel:  strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
		LogFormat: strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", "console"))),

		Now: time.Now,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "trace", "debug", "info", "warn", "error", "disabled":
			return true
		default:
			return false
		}
	})
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "console", "json":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Clock returns c.Now, falling back to time.Now for hand-built configs.
func (c Config) Clock() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}
