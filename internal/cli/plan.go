package cli

import (
	"fmt"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/usecase"
	"github.com/spf13/cobra"
)

// newPlanCommand creates the plan command.
func newPlanCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner   string
		Explain bool
	}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate today's care plan for an owner",
		Long: `Generate today's care plan for an owner.

Incomplete tasks are considered in priority order (highest first, shorter
first on ties) and scheduled greedily until the owner's daily time budget
runs out. The plan itself never changes task state.

Examples:
  pawpal plan --owner Amelia
  pawpal plan --owner Amelia --explain`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.GeneratePlanUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.GeneratePlanInput{Owner: opts.Owner})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Plan for %s (%d of %d min):\n", opts.Owner, out.Scheduled, out.Budget)
			if len(out.Plan) == 0 {
				fmt.Fprintln(w, "  Nothing to schedule.")
			}
			for _, t := range out.Plan {
				fmt.Fprintf(w, "  [#%d] %s %s (%s, %d min, priority %d)\n",
					t.Number, formatClock(t.Time), t.Description, t.PetName,
					t.DurationMinutes, t.Priority)
			}

			if opts.Explain {
				fmt.Fprintln(w, "\nReasoning:")
				for _, line := range out.Explanation {
					fmt.Fprintf(w, "  %s\n", line)
				}
			}

			if len(out.Conflicts) > 0 {
				fmt.Fprintln(w, "\nWarnings:")
				for _, warning := range out.Conflicts {
					fmt.Fprintf(w, "  %s\n", warning)
				}
			}

			fmt.Fprintf(w, "\n%d incomplete, %d completed\n", out.Incomplete, out.Completed)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	cmd.Flags().BoolVar(&opts.Explain, "explain", false, "Show the rationale for each decision")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

// newConflictsCommand creates the conflicts command.
func newConflictsCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner string
	}

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Check an owner's tasks for time overlaps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.GeneratePlanUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.GeneratePlanInput{Owner: opts.Owner})
			if err != nil {
				return err
			}

			if len(out.Conflicts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No time conflicts.")
				return nil
			}
			for _, warning := range out.Conflicts {
				fmt.Fprintln(cmd.OutOrStdout(), warning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
