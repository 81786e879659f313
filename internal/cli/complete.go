package cli

import (
	"fmt"
	"strconv"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/usecase"
	"github.com/spf13/cobra"
)

// newCompleteCommand creates the complete command.
func newCompleteCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner string
	}

	cmd := &cobra.Command{
		Use:   "complete <number>",
		Short: "Mark a task as completed",
		Long: `Mark a task as completed.

Daily and weekly tasks spawn a new occurrence due one day or one week
later. Monthly tasks do not recur.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CompleteTaskInput{
				Owner:  opts.Owner,
				Number: number,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", number, out.Task.Description)
			if out.NextOccurrence != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Next occurrence #%d due %s\n",
					out.NextOccurrence.Number, out.NextOccurrence.DueDate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

// newReopenCommand creates the reopen command.
func newReopenCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner string
	}

	cmd := &cobra.Command{
		Use:   "reopen <number>",
		Short: "Mark a completed task as incomplete again",
		Long: `Mark a completed task as incomplete again.

Reopening only flips the completion flag. Occurrences spawned by an
earlier completion are kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}

			uc := c.ReopenTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.ReopenTaskInput{
				Owner:  opts.Owner,
				Number: number,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reopened task #%d\n", number)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
