package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/pawpal/internal/app"
	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/testutil"
)

// newTestContainer creates an app.Container with mock dependencies and a
// registry holding Amelia and her dog Ani.
func newTestContainer() (*app.Container, *testutil.MockRegistryRepository) {
	repo := testutil.NewMockRegistryRepository()
	owner := domain.NewOwner("Amelia", 55)
	owner.AddPet(domain.NewPet("Ani", "Dog"))
	repo.Reg.AddOwner(owner)

	clock := &testutil.MockClock{NowTime: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}
	container := app.NewWithDeps(
		app.Paths{},
		repo,
		&testutil.MockStoreInitializer{},
		clock,
		&testutil.MockLogger{},
	)
	return container, repo
}

func TestNewTaskAddCommand(t *testing.T) {
	container, repo := newTestContainer()

	cmd := newTaskAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Morning walk", "--owner", "Amelia", "--pet", "Ani",
		"--duration", "20", "--priority", "5", "--time", "08:00"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Added task #1 for Ani (due 2026-03-10)")

	pet := repo.Reg.FindOwner("Amelia").FindPet("Ani")
	require.Len(t, pet.Tasks, 1)
	assert.Equal(t, 480, pet.Tasks[0].Time)
	assert.Equal(t, domain.FrequencyDaily, pet.Tasks[0].Frequency)
}

func TestNewTaskAddCommand_BadTime(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newTaskAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"Morning walk", "--owner", "Amelia", "--pet", "Ani",
		"--duration", "20", "--time", "8am"})

	assert.Error(t, cmd.Execute())
}

func TestNewTaskListCommand(t *testing.T) {
	container, repo := newTestContainer()
	pet := repo.Reg.FindOwner("Amelia").FindPet("Ani")
	pet.AddTask(&domain.Task{Number: 1, Description: "Morning walk", PetName: "Ani",
		DurationMinutes: 20, Priority: 5, Time: 480, Frequency: domain.FrequencyDaily,
		DueDate: domain.NewDate(2026, time.March, 10)})

	cmd := newTaskListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--owner", "Amelia"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Morning walk")
	assert.Contains(t, buf.String(), "08:00")
}

func TestNewTaskRmCommand(t *testing.T) {
	container, repo := newTestContainer()
	pet := repo.Reg.FindOwner("Amelia").FindPet("Ani")
	pet.AddTask(&domain.Task{Number: 7, Description: "Morning walk", PetName: "Ani",
		DurationMinutes: 20, Priority: 5, Frequency: domain.FrequencyDaily})

	cmd := newTaskRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"7", "--owner", "Amelia"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Removed task #7")
	assert.Empty(t, pet.Tasks)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "08:00", want: 480},
		{input: "0:00", want: 0},
		{input: "23:59", want: 1439},
		{input: "24:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "08:00", formatClock(480))
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "23:59", formatClock(1439))
}
