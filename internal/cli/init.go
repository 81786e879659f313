package cli

import (
	"fmt"

	"github.com/petcare/pawpal/internal/app"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the pawpal store",
		Long: `Create the JSON store file if it does not exist.

The store location defaults to ~/.pawpal/pawpal.json and can be
overridden with the store.path key in pawpal.toml.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.StoreInitializer.IsInitialized() {
				fmt.Fprintf(cmd.OutOrStdout(), "Store already exists at %s\n", c.Paths.StorePath)
				return nil
			}
			if err := c.StoreInitializer.Initialize(); err != nil {
				return fmt.Errorf("initialize store: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty store at %s\n", c.Paths.StorePath)
			return nil
		},
	}
}
