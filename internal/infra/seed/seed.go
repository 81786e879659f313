// Package seed loads owner data from seed files, used to populate a
// store from a checked-in fixture. JSON seeds are validated against a
// schema before decoding; YAML seeds are decoded directly.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/petcare/pawpal/internal/domain"
)

// seedFile mirrors the persisted owners document, minus task numbers.
type seedFile struct {
	Owners []seedOwner `json:"owners" yaml:"owners"`
}

type seedOwner struct {
	Name               string    `json:"name" yaml:"name"`
	DailyTimeAvailable int       `json:"daily_time_available" yaml:"daily_time_available"`
	Pets               []seedPet `json:"pets" yaml:"pets"`
}

type seedPet struct {
	Name    string     `json:"name" yaml:"name"`
	Species string     `json:"species" yaml:"species"`
	Tasks   []seedTask `json:"tasks" yaml:"tasks"`
}

type seedTask struct {
	Description     string `json:"description" yaml:"description"`
	DurationMinutes int    `json:"duration_minutes" yaml:"duration_minutes"`
	Priority        int    `json:"priority" yaml:"priority"`
	Time            int    `json:"time" yaml:"time"`
	Frequency       string `json:"frequency" yaml:"frequency"`
	Completed       bool   `json:"completed" yaml:"completed"`
	DueDate         string `json:"due_date" yaml:"due_date"`
}

// Load reads a seed file and returns the owners it describes. Tasks get
// numbers from the sequence and a due date of today when the seed omits
// one. The file format is chosen by extension: .yaml/.yml is YAML,
// anything else is schema-validated JSON.
func Load(path string, numbers *domain.Sequence, clock domain.Clock) ([]*domain.Owner, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
	default:
		if err := validateJSON(content); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(content, &file); err != nil {
			return nil, fmt.Errorf("parse seed file: %w", err)
		}
	}

	return toOwners(&file, numbers, clock), nil
}

// validateJSON checks the document against the seed schema so import
// failures point at the offending field instead of a half-built registry.
func validateJSON(content []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("seed.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return fmt.Errorf("add seed schema: %w", err)
	}
	schema, err := compiler.Compile("seed.schema.json")
	if err != nil {
		return fmt.Errorf("compile seed schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid seed file: %w", err)
	}
	return nil
}

func toOwners(file *seedFile, numbers *domain.Sequence, clock domain.Clock) []*domain.Owner {
	today := domain.Today(clock)
	owners := make([]*domain.Owner, 0, len(file.Owners))
	for _, so := range file.Owners {
		owner := domain.NewOwner(so.Name, so.DailyTimeAvailable)
		for _, sp := range so.Pets {
			pet := domain.NewPet(sp.Name, sp.Species)
			for _, st := range sp.Tasks {
				priority := st.Priority
				if priority == 0 {
					priority = 1
				}
				frequency := domain.Frequency(st.Frequency)
				if !frequency.Valid() {
					frequency = domain.FrequencyDaily
				}
				dueDate, err := domain.ParseDate(st.DueDate)
				if err != nil {
					dueDate = today
				}
				pet.AddTask(&domain.Task{
					Number:          numbers.Next(),
					Description:     st.Description,
					DurationMinutes: st.DurationMinutes,
					Priority:        priority,
					Time:            st.Time,
					PetName:         pet.Name,
					Frequency:       frequency,
					Completed:       st.Completed,
					DueDate:         dueDate,
				})
			}
			owner.AddPet(pet)
		}
		owners = append(owners, owner)
	}
	return owners
}
