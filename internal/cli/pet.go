package cli

import (
	"fmt"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/usecase"
	"github.com/spf13/cobra"
)

// newPetCommand creates the pet command with its subcommands.
func newPetCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Manage pets",
	}
	cmd.AddCommand(newPetAddCommand(c))
	return cmd
}

func newPetAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner   string
		Species string
	}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a pet to an owner",
		Long: `Add a pet to an owner. Pet names are unique within an owner.

Examples:
  pawpal pet add Ani --owner Amelia --species Dog
  pawpal pet add Haze --owner Amelia --species Cat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.AddPetUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddPetInput{
				Owner:   opts.Owner,
				Name:    args[0],
				Species: opts.Species,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added pet %q (%s) to owner %q\n", out.Pet.Name, out.Pet.Species, opts.Owner)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	cmd.Flags().StringVar(&opts.Species, "species", "Other", "Species (free text)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
