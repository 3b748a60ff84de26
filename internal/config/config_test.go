package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatch/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.Equal(t, DefaultSeed, cfg.Seeds.Single)
	assert.Equal(t, DefaultGradientStart, cfg.Seeds.Start)
	assert.Equal(t, DefaultGradientEnd, cfg.Seeds.End)
	assert.Equal(t, DefaultNoticeDuration, cfg.Notice.Duration)
	assert.Equal(t, ClipboardSystem, cfg.Clipboard.Mode)
	assert.Equal(t, RouteSingle, cfg.UI.Route)
	assert.Equal(t, 1, cfg.Version)
	assert.NoError(t, cfg.Validate())
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func Test_LoadFrom(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		expectErr error
		check     func(t *testing.T, cfg *Config)
	}{
		{
			name: "no config file found - uses default",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultConfig(), cfg)
			},
		},
		{
			name: "valid config file",
			content: `version: 1
logging:
  level: debug
  format: json
seeds:
  single: "#ff0000"
  start: teal
  end: "rgb(1, 2, 3)"
notice:
  duration: 500ms
clipboard:
  mode: OSC52
ui:
  route: /gradient
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
				assert.Equal(t, "#ff0000", cfg.Seeds.Single)
				assert.Equal(t, "teal", cfg.Seeds.Start)
				assert.Equal(t, "rgb(1, 2, 3)", cfg.Seeds.End)
				assert.Equal(t, 500*time.Millisecond, cfg.Notice.Duration)
				assert.Equal(t, ClipboardOSC52, cfg.Clipboard.Mode)
				assert.Equal(t, RouteGradient, cfg.UI.Route)
			},
		},
		{
			name: "partial config keeps defaults",
			content: `clipboard:
  mode: none
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ClipboardNone, cfg.Clipboard.Mode)
				assert.Equal(t, DefaultSeed, cfg.Seeds.Single)
				assert.Equal(t, DefaultNoticeDuration, cfg.Notice.Duration)
			},
		},
		{
			name:      "malformed yaml",
			content:   "logging: [unclosed\n",
			expectErr: errors.ErrFailedToParseConfig,
		},
		{
			name: "non-positive notice duration",
			content: `notice:
  duration: 0s
`,
			expectErr: errors.ErrInvalidNoticeDuration,
		},
		{
			name: "unknown clipboard mode",
			content: `clipboard:
  mode: carrier-pigeon
`,
			expectErr: errors.ErrUnknownClipboardMode,
		},
		{
			name: "unknown route",
			content: `ui:
  route: /settings
`,
			expectErr: errors.ErrUnknownRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, ConfigFile)

			if tt.content != "" {
				path = writeFile(t, dir, ConfigFile, tt.content)
			}

			cfg, err := LoadFrom(path, filepath.Join(dir, EnvFile))

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectErr), "got %v", err)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func Test_LoadFrom_InvalidConfigWrapsCause(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ConfigFile, "clipboard:\n  mode: fax\n")

	_, err := LoadFrom(path, filepath.Join(dir, EnvFile))

	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
	assert.True(t, errors.Is(err, errors.ErrUnknownClipboardMode))
}

func Test_LoadFrom_UnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored for root")
	}

	dir := t.TempDir()
	path := writeFile(t, dir, ConfigFile, "version: 1\n")
	require.NoError(t, os.Chmod(path, 0000))

	cfg, err := LoadFrom(path, filepath.Join(dir, EnvFile))

	assert.Equal(t, errors.ErrFailedToReadConfig, err)
	assert.Nil(t, cfg)
}

func Test_LoadFrom_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SWATCH_SEEDS_SINGLE", "navy")
	t.Setenv("SWATCH_NOTICE_DURATION", "3s")

	dir := t.TempDir()
	path := writeFile(t, dir, ConfigFile, "seeds:\n  single: \"#ff0000\"\n")

	cfg, err := LoadFrom(path, filepath.Join(dir, EnvFile))
	require.NoError(t, err)

	assert.Equal(t, "navy", cfg.Seeds.Single)
	assert.Equal(t, 3*time.Second, cfg.Notice.Duration)
}

func Test_LoadFrom_DotEnv(t *testing.T) {
	t.Setenv("SWATCH_CLIPBOARD_MODE", "")
	os.Unsetenv("SWATCH_CLIPBOARD_MODE")

	dir := t.TempDir()
	envPath := writeFile(t, dir, EnvFile, "SWATCH_CLIPBOARD_MODE=none\n")

	cfg, err := LoadFrom(filepath.Join(dir, ConfigFile), envPath)
	require.NoError(t, err)

	assert.Equal(t, ClipboardNone, cfg.Clipboard.Mode)
}

func Test_ApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Seeds.Start = "  teal  "
	cfg.Clipboard.Mode = " OSC52 "

	cfg.ApplyDefaults()

	assert.Equal(t, DefaultSeed, cfg.Seeds.Single)
	assert.Equal(t, "teal", cfg.Seeds.Start)
	assert.Equal(t, DefaultGradientEnd, cfg.Seeds.End)
	assert.Equal(t, ClipboardOSC52, cfg.Clipboard.Mode)
	assert.Equal(t, RouteSingle, cfg.UI.Route)
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		err    error
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}},
		{name: "negative notice", mutate: func(cfg *Config) { cfg.Notice.Duration = -time.Second }, err: errors.ErrInvalidNoticeDuration},
		{name: "bad clipboard", mutate: func(cfg *Config) { cfg.Clipboard.Mode = "x" }, err: errors.ErrUnknownClipboardMode},
		{name: "bad route", mutate: func(cfg *Config) { cfg.UI.Route = "gradient" }, err: errors.ErrUnknownRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, tt.err))
		})
	}
}
