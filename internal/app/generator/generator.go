//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator

package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"go.yaml.in/yaml/v3"

	"swatch/internal/app/errors"
	"swatch/internal/config"
	"swatch/internal/config/logger"
)

const templatePath = "templates/swatch.yaml.tmpl"

//go:embed templates/swatch.yaml.tmpl
var templateFS embed.FS

// Options contains the values written into swatch.yaml
type Options struct {
	Seed           string
	Start          string
	End            string
	Route          string
	NoticeDuration string
	ClipboardMode  string
	LogLevel       string
	LogFormat      string
}

// DefaultOptions returns the built-in defaults
func DefaultOptions() Options {
	return Options{
		Seed:           config.DefaultSeed,
		Start:          config.DefaultGradientStart,
		End:            config.DefaultGradientEnd,
		Route:          config.RouteSingle,
		NoticeDuration: config.DefaultNoticeDuration.String(),
		ClipboardMode:  config.DefaultClipboardMode,
		LogLevel:       config.DefaultLogLevel,
		LogFormat:      config.DefaultLogFormat,
	}
}

// Generator defines the interface for generating swatch.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	path string
	out  io.Writer
	log  logger.Logger
}

// NewGenerator creates a generator writing swatch.yaml in the working directory
func NewGenerator(log logger.Logger) Generator {
	return newGenerator(config.ConfigFile, os.Stdout, log)
}

func newGenerator(path string, out io.Writer, log logger.Logger) *generator {
	return &generator{
		path: path,
		out:  out,
		log:  log.WithComponent("GENERATOR"),
	}
}

// Generate renders the template; dry runs print it instead of writing the file
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(g.path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrFileExists, g.path)
		}
	}

	content, err := render(opts)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(content)
		return err
	}

	if err := os.WriteFile(g.path, content, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Str("path", g.path).Msg("Generated config")

	return nil
}

func render(opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.ConfigFile).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	return buf.Bytes(), nil
}
