package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive planner.
func newTUICommand(c *app.Container) *cobra.Command {
	var opts struct {
		Owner string
	}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive planner",
		Long:  `Launch the interactive terminal interface for planning and adding tasks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p := tea.NewProgram(tui.New(c, opts.Owner), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner name (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
