package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/grid"
)

// Environment keys read by Load.
const (
	KeySide       = "GRIDPATH_SIDE"
	KeyCellSize   = "GRIDPATH_CELL_SIZE"
	KeyMaxSide    = "GRIDPATH_MAX_SIDE"
	KeyFrameDelay = "GRIDPATH_FRAME_DELAY"
	KeyHTTPAddr   = "GRIDPATH_HTTP_ADDR"
	KeyGinMode    = "GIN_MODE"
	KeyStepBudget = "GRIDPATH_STEP_BUDGET"
)

// ErrInvalid indicates a malformed or out-of-range setting.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Side       int           // Cells per grid edge on startup
	CellSize   int           // Display hint, in pixels
	MaxSide    int           // Largest side accepted from API requests
	FrameDelay time.Duration // Pause between rendered frames in the viewer
	HTTPAddr   string        // Listen address of the API server
	GinMode    string        // Mode for the Gin framework (release, debug, test)
	StepBudget int           // Cells a search may finalise; 0 means unlimited
}

// Default returns the configuration used when no variable is set.
func Default() Config {
	return Config{
		Side:       40,
		CellSize:   20,
		MaxSide:    256,
		FrameDelay: 10 * time.Millisecond,
		HTTPAddr:   ":8080",
		GinMode:    "release",
		StepBudget: 0,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then
// builds a Config from the environment. A missing .env file is not an
// error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	def := Default()
	cfg := Config{
		HTTPAddr: getEnvWithDefault(KeyHTTPAddr, def.HTTPAddr),
		GinMode:  getEnvWithDefault(KeyGinMode, def.GinMode),
	}

	var err error
	if cfg.Side, err = getEnvAsInt(KeySide, def.Side); err != nil {
		return Config{}, err
	}
	if cfg.CellSize, err = getEnvAsInt(KeyCellSize, def.CellSize); err != nil {
		return Config{}, err
	}
	if cfg.MaxSide, err = getEnvAsInt(KeyMaxSide, def.MaxSide); err != nil {
		return Config{}, err
	}
	if cfg.StepBudget, err = getEnvAsInt(KeyStepBudget, def.StepBudget); err != nil {
		return Config{}, err
	}
	if cfg.FrameDelay, err = getEnvAsDuration(KeyFrameDelay, def.FrameDelay); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges across fields.
func (c Config) Validate() error {
	switch {
	case c.MaxSide < 1:
		return fmt.Errorf("%w: %s=%d must be positive", ErrInvalid, KeyMaxSide, c.MaxSide)
	case c.Side < 1 || c.Side > c.MaxSide:
		return fmt.Errorf("%w: %s=%d must be in [1,%d]", ErrInvalid, KeySide, c.Side, c.MaxSide)
	case c.CellSize < 1:
		return fmt.Errorf("%w: %s=%d must be positive", ErrInvalid, KeyCellSize, c.CellSize)
	case c.StepBudget < 0:
		return fmt.Errorf("%w: %s=%d must be non-negative", ErrInvalid, KeyStepBudget, c.StepBudget)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: %s=%s must be non-negative", ErrInvalid, KeyFrameDelay, c.FrameDelay)
	}

	return nil
}

// GridOptions returns grid options carrying the configured cell size.
func (c Config) GridOptions() grid.Options {
	opts := grid.DefaultOptions()
	opts.CellSize = c.CellSize

	return opts
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses key as an integer, falling back to def when unset.
func getEnvAsInt(key string, def int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return def, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %w", ErrInvalid, key, err)
	}
	return value, nil
}

// getEnvAsDuration parses key with time.ParseDuration, falling back to def.
func getEnvAsDuration(key string, def time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return def, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %w", ErrInvalid, key, err)
	}
	return value, nil
}
