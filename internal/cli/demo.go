package cli

import (
	"fmt"
	"io"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/planner"
	"github.com/spf13/cobra"
)

// newDemoCommand creates the demo command. The walkthrough runs entirely
// in memory and never touches the store.
func newDemoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a sample planning walkthrough",
		Long: `Run a sample planning walkthrough.

A household with one owner, two pets and four tasks is built in memory,
then planned, inspected and partially completed. Nothing is saved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runDemo(cmd.OutOrStdout(), c.Clock)
			return nil
		},
	}
}

func runDemo(w io.Writer, clock domain.Clock) {
	numbers := domain.NewSequence()
	today := domain.Today(clock)

	demoTask := func(description string, duration, priority, startTime int, petName string) *domain.Task {
		return &domain.Task{
			Number:          numbers.Next(),
			Description:     description,
			PetName:         petName,
			DurationMinutes: duration,
			Priority:        priority,
			Time:            startTime,
			Frequency:       domain.FrequencyDaily,
			DueDate:         today,
		}
	}

	owner := domain.NewOwner("Amelia", 55)
	ani := domain.NewPet("Ani", "Dog")
	haze := domain.NewPet("Haze", "Cat")

	walk := demoTask("Morning walk", 20, 5, 480, ani.Name)
	feed := demoTask("Feed Haze", 5, 4, 540, ani.Name)
	litter := demoTask("Clean litter box", 10, 5, 600, haze.Name)
	play := demoTask("Playtime with Ani", 15, 3, 450, haze.Name)

	ani.AddTask(walk)
	ani.AddTask(feed)
	haze.AddTask(litter)
	haze.AddTask(play)

	feed.MarkComplete()

	owner.AddPet(ani)
	owner.AddPet(haze)

	scheduler := planner.New(numbers)
	plan, explanation := scheduler.GeneratePlan(owner)

	fmt.Fprintln(w, "=== PawPal Today's Schedule ===")
	total := 0
	for _, t := range plan {
		fmt.Fprintf(w, "[#%d] %s - %d min (priority %d)\n",
			t.Number, t.Description, t.DurationMinutes, t.Priority)
		total += t.DurationMinutes
	}
	fmt.Fprintf(w, "\nTotal scheduled time: %d min (out of %d min)\n\n", total, owner.DailyTimeAvailable)

	fmt.Fprintln(w, "=== Reasoning ===")
	for _, line := range explanation {
		fmt.Fprintf(w, "- %s\n", line)
	}

	fmt.Fprintln(w, "\n=== Tasks by Pet ===")
	for _, group := range owner.TasksByPet() {
		fmt.Fprintf(w, "%s:\n", group.PetName)
		for _, t := range group.Tasks {
			fmt.Fprintf(w, "  [#%d] %s at %d min\n", t.Number, t.Description, t.Time)
		}
	}

	fmt.Fprintln(w, "\n=== Tasks Sorted by Time ===")
	for _, t := range scheduler.SortByTime(owner.AllTasks()) {
		fmt.Fprintf(w, "[#%d] %s at %d min\n", t.Number, t.Description, t.Time)
	}

	fmt.Fprintln(w, "\n=== Incomplete Tasks ===")
	for _, t := range scheduler.FilterByCompleted(owner.AllTasks(), false) {
		fmt.Fprintf(w, "[#%d] %s (incomplete)\n", t.Number, t.Description)
	}

	walk.MarkComplete()

	fmt.Fprintln(w, "\n=== Completed Tasks ===")
	for _, t := range scheduler.FilterByCompleted(owner.AllTasks(), true) {
		fmt.Fprintf(w, "[#%d] %s (completed)\n", t.Number, t.Description)
	}
}
