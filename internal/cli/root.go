// Package cli provides the Cobra command structure for the underline tool.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/underline"
	"github.com/gogpu/underline/internal/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Field names for structured logging.
const (
	FieldError   = "error"
	FieldInput   = "input"
	FieldOutput  = "output"
	FieldConfig  = "config"
	FieldWidth   = "width"
	FieldHeight  = "height"
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	debug      bool
	configPath string
	logger     *log.Logger
}

// loadConfig returns the configuration file named by --config, or the
// defaults when there is none.
func (g *globalOptions) loadConfig() (*config.File, error) {
	if g.configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("loaded configuration", FieldConfig, g.configPath)
	return cfg, nil
}

// NewRootCommand creates the root underline command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "underline",
		Short: "Draw link underlines that skip glyph descenders",
		Long: `underline renders Markdown paragraphs to PNG images, drawing every link
with an underline that is cut where descenders cross it, leaving a small
clearance around the ink.

The underline geometry is configured with ratios of the text size. Use
"underline params" to print the defaults in a form --config accepts.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			g.logger = NewLogger(cmd.ErrOrStderr(), g.debug)
			underline.SetLogger(slog.New(g.logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to a YAML or TOML config file")

	rootCmd.AddCommand(newRenderCommand(g))
	rootCmd.AddCommand(newParamsCommand(g))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// NewLogger returns a charmbracelet logger writing to w, at debug level
// when debug is set and at info level otherwise.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
