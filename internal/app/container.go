// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/infra/config"
	"github.com/petcare/pawpal/internal/infra/jsonstore"
	"github.com/petcare/pawpal/internal/infra/logging"
	"github.com/petcare/pawpal/internal/planner"
	"github.com/petcare/pawpal/internal/usecase"
)

// Paths holds the resolved filesystem locations of the application.
type Paths struct {
	DataDir   string // Directory holding the store and logs
	StorePath string // Path to pawpal.json
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Registry         domain.RegistryRepository
	StoreInitializer domain.StoreInitializer
	Clock            domain.Clock
	Logger           domain.Logger

	// Pointer fields
	Numbers   *domain.Sequence
	Scheduler *planner.Scheduler
	AppConfig *domain.Config

	// Configuration
	Paths Paths
}

// New creates a new Container rooted at the user's home directory,
// loading configuration from the working directory and the global
// config dir.
func New(cwd string) (*Container, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.NewLoader(cwd).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dataDir := domain.DataDir(home)
	storePath := cfg.Store.Path
	if storePath == "" {
		storePath = filepath.Join(dataDir, domain.StoreFileName)
	}

	clock := domain.RealClock{}
	store := jsonstore.New(storePath, clock)
	numbers := domain.NewSequence()
	logger := logging.New(dataDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Registry:         store,
		StoreInitializer: store,
		Clock:            clock,
		Logger:           logger,
		Numbers:          numbers,
		Scheduler:        planner.New(numbers),
		AppConfig:        cfg,
		Paths: Paths{
			DataDir:   dataDir,
			StorePath: storePath,
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(paths Paths, registry domain.RegistryRepository, storeInit domain.StoreInitializer, clock domain.Clock, logger domain.Logger) *Container {
	numbers := domain.NewSequence()
	return &Container{
		Registry:         registry,
		StoreInitializer: storeInit,
		Clock:            clock,
		Logger:           logger,
		Numbers:          numbers,
		Scheduler:        planner.New(numbers),
		AppConfig:        domain.NewDefaultConfig(),
		Paths:            paths,
	}
}

// UseCase factory methods

// AddOwnerUseCase returns a new AddOwner use case.
func (c *Container) AddOwnerUseCase() *usecase.AddOwner {
	return usecase.NewAddOwner(c.Registry, c.Numbers, c.Logger)
}

// AddPetUseCase returns a new AddPet use case.
func (c *Container) AddPetUseCase() *usecase.AddPet {
	return usecase.NewAddPet(c.Registry, c.Numbers, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Registry, c.Numbers, c.Clock, c.Logger)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Registry, c.Numbers, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Registry, c.Scheduler, c.Numbers, c.Logger)
}

// ReopenTaskUseCase returns a new ReopenTask use case.
func (c *Container) ReopenTaskUseCase() *usecase.ReopenTask {
	return usecase.NewReopenTask(c.Registry, c.Scheduler, c.Numbers, c.Logger)
}

// GeneratePlanUseCase returns a new GeneratePlan use case.
func (c *Container) GeneratePlanUseCase() *usecase.GeneratePlan {
	return usecase.NewGeneratePlan(c.Registry, c.Scheduler, c.Numbers)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Registry, c.Scheduler, c.Numbers)
}

// ImportSeedUseCase returns a new ImportSeed use case.
func (c *Container) ImportSeedUseCase() *usecase.ImportSeed {
	return usecase.NewImportSeed(c.Registry, c.Numbers, c.Clock, c.Logger)
}

// ExportDataUseCase returns a new ExportData use case.
func (c *Container) ExportDataUseCase() *usecase.ExportData {
	return usecase.NewExportData(c.Registry, c.Numbers)
}
