package cli

import (
	"github.com/spf13/cobra"

	"swatch/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandUI CommandType = iota
	CommandGenerate
	CommandInit
	CommandVersion
	CommandHelp
)

// Output formats of the generate command
const (
	FormatText = "text"
	FormatCSS  = "css"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options contains the parsed command-line arguments
type Options struct {
	Type   CommandType
	Route  string
	Seed   string
	Start  string
	End    string
	Format string
	Force  bool
	DryRun bool
}

// Interactive reports whether the command takes over the terminal
func (o *Options) Interactive() bool {
	return o.Type == CommandUI
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:   CommandUI,
		Format: FormatText,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildUICommand(result),
		buildGenerateCommand(result),
		buildInitCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Generate color palettes and gradients in the terminal",
		Long: `Swatch derives color harmonies and gradients from seed colors
and copies them as hex values or CSS to the clipboard.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandUI
		},
	}

	cmd.PersistentFlags().StringVarP(&result.Seed, "seed", "s", "", "Seed color for the single color palettes")
	cmd.PersistentFlags().StringVar(&result.Start, "start", "", "Start color for the gradients")
	cmd.PersistentFlags().StringVar(&result.End, "end", "", "End color for the gradients")
	cmd.Flags().StringVarP(&result.Route, "route", "r", "", "Page to open: / or /gradient")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildUICommand creates the ui subcommand
func buildUICommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"u"},
		Short:   "Open the palette generator",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandUI
		},
	}

	cmd.Flags().StringVarP(&result.Route, "route", "r", "", "Page to open: / or /gradient")

	return cmd
}

// buildGenerateCommand creates the generate subcommand
func buildGenerateCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Print palettes for --seed or gradients for --start and --end",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandGenerate
		},
	}

	cmd.Flags().StringVarP(&result.Format, "format", "f", FormatText, "Output format: text, css, json or yaml")

	return cmd
}

// buildInitCommand creates the init subcommand
func buildInitCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Generate swatch.yaml template",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandInit
		},
	}

	cmd.Flags().BoolVar(&result.Force, "force", false, "Overwrite an existing swatch.yaml")
	cmd.Flags().BoolVar(&result.DryRun, "dry-run", false, "Print the template instead of writing it")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
