package cli

import (
	"fmt"
	"os"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/usecase"
	"github.com/spf13/cobra"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import owners, pets and tasks from a seed file",
		Long: `Import owners, pets and tasks from a seed file.

The file may be JSON or YAML, picked by extension. JSON files are
checked against a schema before anything is written. Imported owners
must not already exist in the store.

Examples:
  pawpal import household.json
  pawpal import household.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ImportSeedUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportSeedInput{Path: args[0]})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d owner(s), %d pet(s), %d task(s)\n",
				out.Owners, out.Pets, out.Tasks)
			return nil
		},
	}
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all owners, pets and tasks",
		Long: `Export all owners, pets and tasks.

JSON output matches the store file layout, so it can be inspected or
restored directly. YAML output is for reading.

Examples:
  pawpal export
  pawpal export --format yaml -o backup.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if opts.Output != "" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return fmt.Errorf("create %s: %w", opts.Output, err)
				}
				defer f.Close()
				out = f
			}

			uc := c.ExportDataUseCase()
			return uc.Execute(cmd.Context(), usecase.ExportDataInput{
				Out:    out,
				Format: opts.Format,
			})
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", usecase.ExportFormatJSON, "Output format: json or yaml")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
