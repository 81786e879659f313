package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/petcare/pawpal/internal/domain"
)

// Export formats.
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// ExportDataInput contains the parameters for exporting the registry.
type ExportDataInput struct {
	Out    io.Writer // Destination
	Format string    // "json" or "yaml"
}

// ExportData is the use case for writing the registry to an external
// format. JSON output matches the persisted store layout.
type ExportData struct {
	repo    domain.RegistryRepository
	numbers *domain.Sequence
}

// NewExportData creates a new ExportData use case.
func NewExportData(repo domain.RegistryRepository, numbers *domain.Sequence) *ExportData {
	return &ExportData{repo: repo, numbers: numbers}
}

// Execute writes the registry to the given writer.
func (uc *ExportData) Execute(_ context.Context, in ExportDataInput) error {
	reg, err := loadRegistry(uc.repo, uc.numbers)
	if err != nil {
		return err
	}

	switch in.Format {
	case ExportFormatJSON, "":
		enc := json.NewEncoder(in.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reg); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case ExportFormatYAML:
		enc := yaml.NewEncoder(in.Out)
		if err := enc.Encode(reg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("close yaml encoder: %w", err)
		}
	default:
		return fmt.Errorf("unknown export format %q", in.Format)
	}

	return nil
}
