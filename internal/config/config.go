package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"swatch/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	Seeds struct {
		Single string `yaml:"single"`
		Start  string `yaml:"start"`
		End    string `yaml:"end"`
	}
	Notice struct {
		Duration time.Duration `yaml:"duration"`
	}
	Clipboard struct {
		Mode string `yaml:"mode"`
	}
	UI struct {
		Route string `yaml:"route"`
	}
	Version int
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Seeds.Single = DefaultSeed
	cfg.Seeds.Start = DefaultGradientStart
	cfg.Seeds.End = DefaultGradientEnd

	cfg.Notice.Duration = DefaultNoticeDuration
	cfg.Clipboard.Mode = DefaultClipboardMode
	cfg.UI.Route = RouteSingle

	return cfg
}

// Load reads .env and swatch.yaml from the working directory, applies SWATCH_* overrides and validates
func Load() (*Config, error) {
	return LoadFrom(ConfigFile, EnvFile)
}

// LoadFrom is Load with explicit file locations; both files are optional
func LoadFrom(configPath, envPath string) (*Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.ErrFailedToReadConfig
	}

	cfg := DefaultConfig()
	v := newViper(cfg)

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.ErrFailedToReadConfig
	}

	if err == nil {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper registers every key with its default so SWATCH_* variables apply without a config file
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("seeds.single", cfg.Seeds.Single)
	v.SetDefault("seeds.start", cfg.Seeds.Start)
	v.SetDefault("seeds.end", cfg.Seeds.End)
	v.SetDefault("notice.duration", cfg.Notice.Duration)
	v.SetDefault("clipboard.mode", cfg.Clipboard.Mode)
	v.SetDefault("ui.route", cfg.UI.Route)
	v.SetDefault("version", cfg.Version)

	return v
}

// ApplyDefaults fills values left empty by the config file
func (c *Config) ApplyDefaults() {
	c.Seeds.Single = strings.TrimSpace(c.Seeds.Single)
	c.Seeds.Start = strings.TrimSpace(c.Seeds.Start)
	c.Seeds.End = strings.TrimSpace(c.Seeds.End)

	if c.Seeds.Single == "" {
		c.Seeds.Single = DefaultSeed
	}

	if c.Seeds.Start == "" {
		c.Seeds.Start = DefaultGradientStart
	}

	if c.Seeds.End == "" {
		c.Seeds.End = DefaultGradientEnd
	}

	c.Clipboard.Mode = strings.ToLower(strings.TrimSpace(c.Clipboard.Mode))
	if c.Clipboard.Mode == "" {
		c.Clipboard.Mode = DefaultClipboardMode
	}

	c.UI.Route = strings.TrimSpace(c.UI.Route)
	if c.UI.Route == "" {
		c.UI.Route = RouteSingle
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateNotice(); err != nil {
		return err
	}

	if err := c.validateClipboard(); err != nil {
		return err
	}

	return c.validateRoute()
}

// validateNotice validates notice settings
func (c *Config) validateNotice() error {
	if c.Notice.Duration <= 0 {
		return errors.ErrInvalidNoticeDuration
	}

	return nil
}

// validateClipboard validates the clipboard mode
func (c *Config) validateClipboard() error {
	switch c.Clipboard.Mode {
	case ClipboardSystem, ClipboardOSC52, ClipboardNone:
		return nil
	default:
		return fmt.Errorf("%w: '%s' (must be 'system', 'osc52', or 'none')", errors.ErrUnknownClipboardMode, c.Clipboard.Mode)
	}
}

// validateRoute validates the initial route
func (c *Config) validateRoute() error {
	switch c.UI.Route {
	case RouteSingle, RouteGradient:
		return nil
	default:
		return fmt.Errorf("%w: '%s'", errors.ErrUnknownRoute, c.UI.Route)
	}
}
