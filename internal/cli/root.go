// Package cli provides the command-line interface for pawpal.
package cli

import (
	"github.com/petcare/pawpal/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupCare     = "care"
	groupPlanning = "planning"
)

// NewRootCommand creates the root command for pawpal.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pawpal",
		Short: "Daily pet care planner",
		Long: `pawpal is a CLI for planning daily pet care.

It keeps owners, their pets and recurring care tasks in a flat JSON
store, selects which tasks fit within an owner's daily time budget,
explains why each task was scheduled or skipped, and warns about
overlapping start times.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupCare, Title: "Owners, Pets & Tasks:"},
		&cobra.Group{ID: groupPlanning, Title: "Planning:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	importCmd := newImportCommand(c)
	importCmd.GroupID = groupSetup

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupSetup

	// Owner/pet/task commands
	ownerCmd := newOwnerCommand(c)
	ownerCmd.GroupID = groupCare

	petCmd := newPetCommand(c)
	petCmd.GroupID = groupCare

	taskCmd := newTaskCommand(c)
	taskCmd.GroupID = groupCare

	// Planning commands
	planCmd := newPlanCommand(c)
	planCmd.GroupID = groupPlanning

	conflictsCmd := newConflictsCommand(c)
	conflictsCmd.GroupID = groupPlanning

	completeCmd := newCompleteCommand(c)
	completeCmd.GroupID = groupPlanning

	reopenCmd := newReopenCommand(c)
	reopenCmd.GroupID = groupPlanning

	demoCmd := newDemoCommand(c)
	demoCmd.GroupID = groupPlanning

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupPlanning

	root.AddCommand(
		initCmd,
		configCmd,
		importCmd,
		exportCmd,
		ownerCmd,
		petCmd,
		taskCmd,
		planCmd,
		conflictsCmd,
		completeCmd,
		reopenCmd,
		demoCmd,
		tuiCmd,
	)

	return root
}
