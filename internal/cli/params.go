package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/underline/internal/config"
)

func newParamsCommand(g *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the effective configuration",
		Long: `Print the configuration render would use: the defaults, overridden by
the file given with --config. The output is a valid config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			data, err := cfg.Marshal(f)
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or toml")
	return cmd
}

func parseFormat(name string) (config.Format, error) {
	for _, f := range []config.Format{config.FormatYAML, config.FormatTOML} {
		if name == f.String() {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", config.ErrUnsupportedFormat, name)
}
