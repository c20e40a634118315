// Package config reads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"log"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	engineinput "wraithmaze/pkg/engine/input"
	"wraithmaze/pkg/game/generator"
)

// Renderer backends
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// BindPrefix starts variables that rebind an action to a single key code,
// e.g. WRAITH_BIND_COPY_MAZE=c. An empty value unbinds the action.
const BindPrefix = "WRAITH_BIND_"

// Config holds the settings that can come from the environment.
// Command-line flags override these in main.
type Config struct {
	Seed      int64  // Session seed; 0 picks one from the clock
	Debug     bool   // Start with diagnostics on
	Renderer  string // "ebiten" or "tui"
	Width     int    // Window width in pixels
	Height    int    // Window height in pixels
	OnError   string // "halt" or "restart"
	Lang      string // Catalogue language, e.g. en_GB
	Locales   string // Directory holding <lang>/LC_MESSAGES/default.po
	Generator string // Maze generator name

	Bindings map[engineinput.Action]string // Key overrides from WRAITH_BIND_*
}

// Load reads a .env file if present and then the WRAITH_* variables
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only
func FromEnv() (Config, error) {
	cfg := Config{
		Renderer:  getEnvWithDefault("WRAITH_RENDERER", RendererEbiten),
		OnError:   getEnvWithDefault("WRAITH_ON_ERROR", "halt"),
		Lang:      getEnvWithDefault("WRAITH_LANG", "en_GB"),
		Locales:   getEnvWithDefault("WRAITH_LOCALES", "locales"),
		Generator: getEnvWithDefault("WRAITH_GENERATOR", generator.DefaultName),
	}

	var err error
	if cfg.Seed, err = getEnvAsInt64("WRAITH_SEED", 0); err != nil {
		return cfg, err
	}
	if cfg.Debug, err = getEnvAsBool("WRAITH_DEBUG", false); err != nil {
		return cfg, err
	}
	if cfg.Width, err = getEnvAsInt("WRAITH_WIDTH", 1000); err != nil {
		return cfg, err
	}
	if cfg.Height, err = getEnvAsInt("WRAITH_HEIGHT", 760); err != nil {
		return cfg, err
	}

	if cfg.Renderer != RendererEbiten && cfg.Renderer != RendererTUI {
		return cfg, fmt.Errorf("WRAITH_RENDERER must be %q or %q, got %q", RendererEbiten, RendererTUI, cfg.Renderer)
	}
	if cfg.Bindings, err = getBindings(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyBindings installs the key overrides into the input bindings
func (c Config) ApplyBindings() {
	for _, a := range slices.Sorted(maps.Keys(c.Bindings)) {
		code := c.Bindings[a]
		engineinput.SetSingleBinding(a, code)
		log.Printf("[CONFIG] %s bound to %q", engineinput.ActionName(a), code)
	}
}

// ResolveSeed returns the configured seed, or one derived from the clock when unset
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getBindings() (map[engineinput.Action]string, error) {
	var out map[engineinput.Action]string
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		id, ok := strings.CutPrefix(key, BindPrefix)
		if !ok {
			continue
		}
		a, ok := engineinput.ParseAction(id)
		if !ok {
			return nil, fmt.Errorf("environment variable %s names an unknown action", key)
		}
		if out == nil {
			out = make(map[engineinput.Action]string)
		}
		out[a] = strings.ToLower(strings.TrimSpace(value))
	}
	return out, nil
}
