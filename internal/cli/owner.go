package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/usecase"
	"github.com/spf13/cobra"
)

// newOwnerCommand creates the owner command with its subcommands.
func newOwnerCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage owners",
	}
	cmd.AddCommand(newOwnerAddCommand(c), newOwnerListCommand(c))
	return cmd
}

func newOwnerAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Minutes int
	}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new owner",
		Long: `Register an owner with a daily time budget.

Examples:
  # Register with the configured default budget
  pawpal owner add Amelia

  # Register with 55 minutes per day
  pawpal owner add Amelia --minutes 55`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes := opts.Minutes
			if minutes < 0 {
				minutes = c.AppConfig.Owner.DefaultDailyMinutes
			}

			uc := c.AddOwnerUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddOwnerInput{
				Name:         args[0],
				DailyMinutes: minutes,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added owner %q with %d daily minutes\n",
				out.Owner.Name, out.Owner.DailyTimeAvailable)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Minutes, "minutes", -1, "Daily time available in minutes (default from config)")

	return cmd
}

func newOwnerListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List owners",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := c.Registry.Load()
			if err != nil {
				return err
			}

			if len(reg.Owners) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No owners yet. Add one with 'pawpal owner add <name>'.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "OWNER\tDAILY MIN\tPETS\tTASKS")
			for _, o := range reg.Owners {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", o.Name, o.DailyTimeAvailable, len(o.Pets), len(o.AllTasks()))
			}
			return tw.Flush()
		},
	}
}
