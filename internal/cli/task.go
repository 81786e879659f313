package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/usecase"
	"github.com/spf13/cobra"
)

// newTaskCommand creates the task command with its subcommands.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage care tasks",
	}
	cmd.AddCommand(newTaskAddCommand(c), newTaskListCommand(c), newTaskRmCommand(c))
	return cmd
}

func newTaskAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner     string
		Pet       string
		Duration  int
		Priority  int
		Time      string
		Frequency string
		Due       string
	}

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a care task to a pet",
		Long: `Add a care task to a pet.

Start time is given as HH:MM. The due date defaults to today.

Examples:
  pawpal task add "Morning walk" --owner Amelia --pet Ani --duration 20 --priority 5 --time 08:00
  pawpal task add "Clean litter box" --owner Amelia --pet Haze --duration 10 --priority 5 --time 10:00 --frequency weekly`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime, err := parseClock(opts.Time)
			if err != nil {
				return err
			}

			var dueDate domain.Date
			if opts.Due != "" {
				dueDate, err = domain.ParseDate(opts.Due)
				if err != nil {
					return err
				}
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Owner:           opts.Owner,
				Pet:             opts.Pet,
				Description:     args[0],
				DurationMinutes: opts.Duration,
				Priority:        opts.Priority,
				Time:            startTime,
				Frequency:       domain.Frequency(opts.Frequency),
				DueDate:         dueDate,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d for %s (due %s)\n",
				out.Task.Number, out.Task.PetName, out.Task.DueDate)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	cmd.Flags().StringVar(&opts.Pet, "pet", "", "Pet name (required)")
	cmd.Flags().IntVar(&opts.Duration, "duration", 0, "Duration in minutes (required)")
	cmd.Flags().IntVar(&opts.Priority, "priority", 3, "Priority 1-5, 5 highest")
	cmd.Flags().StringVar(&opts.Time, "time", "08:00", "Start time as HH:MM")
	cmd.Flags().StringVar(&opts.Frequency, "frequency", "daily", "Frequency: daily, weekly or monthly")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date as YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("pet")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner     string
		ByPet     bool
		ByTime    bool
		Pending   bool
		Completed bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's tasks",
		Long: `Display the tasks of an owner.

Output is tab-separated with columns:
  #, PET, DESCRIPTION, TIME, MIN, PRI, FREQ, DUE, DONE

Examples:
  # All tasks in pet order
  pawpal task list --owner Amelia

  # Grouped by pet
  pawpal task list --owner Amelia --by-pet

  # Chronological, incomplete only
  pawpal task list --owner Amelia --by-time --pending`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ListTasksInput{
				Owner:  opts.Owner,
				ByPet:  opts.ByPet,
				ByTime: opts.ByTime,
			}
			if opts.Pending {
				completed := false
				input.Completed = &completed
			} else if opts.Completed {
				completed := true
				input.Completed = &completed
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if opts.ByPet {
				for _, group := range out.Groups {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", group.PetName)
					printTaskList(cmd.OutOrStdout(), group.Tasks)
				}
				return nil
			}
			printTaskList(cmd.OutOrStdout(), out.Tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	cmd.Flags().BoolVar(&opts.ByPet, "by-pet", false, "Group tasks by pet")
	cmd.Flags().BoolVar(&opts.ByTime, "by-time", false, "Sort tasks chronologically")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Show only incomplete tasks")
	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "Show only completed tasks")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func newTaskRmCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner string
	}

	cmd := &cobra.Command{
		Use:   "rm <number>",
		Short: "Remove a task by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task number %q", args[0])
			}

			uc := c.RemoveTaskUseCase()
			if err := uc.Execute(cmd.Context(), usecase.RemoveTaskInput{
				Owner:  opts.Owner,
				Number: number,
			}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed task #%d\n", number)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

// printTaskList writes tasks in tab-separated format.
func printTaskList(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "#\tPET\tDESCRIPTION\tTIME\tMIN\tPRI\tFREQ\tDUE\tDONE")
	for _, t := range tasks {
		done := ""
		if t.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\n",
			t.Number, t.PetName, t.Description, formatClock(t.Time),
			t.DurationMinutes, t.Priority, t.Frequency, t.DueDate, done)
	}
	_ = tw.Flush()
}

// formatClock renders minutes-since-midnight as HH:MM.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// parseClock parses HH:MM into minutes-since-midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q (want HH:MM)", s)
	}
	return h*60 + m, nil
}
