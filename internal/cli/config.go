package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/petcare/pawpal/internal/app"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Print the merged configuration as TOML.

The effective configuration is the built-in defaults overlaid with
~/.config/pawpal/pawpal.toml and then with ./pawpal.toml.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := toml.Marshal(c.AppConfig)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = cmd.OutOrStdout().Write(content)
			fmt.Fprintf(cmd.OutOrStdout(), "\n# store file: %s\n", c.Paths.StorePath)
			return nil
		},
	})

	return cmd
}
