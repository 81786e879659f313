package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_RegistersCommands(t *testing.T) {
	container, _ := newTestContainer()
	root := NewRootCommand(container, "test-version")

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{
		"init", "config", "import", "export",
		"owner", "pet", "task",
		"plan", "conflicts", "complete", "reopen", "demo", "tui",
	} {
		assert.Contains(t, names, want)
	}
}

func TestNewRootCommand_Help(t *testing.T) {
	container, _ := newTestContainer()
	root := NewRootCommand(container, "test-version")

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "Planning:")
	assert.Contains(t, buf.String(), "Owners, Pets & Tasks:")
}

func TestNewOwnerAddCommand_UsesConfiguredDefault(t *testing.T) {
	container, repo := newTestContainer()

	cmd := newOwnerAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Ben"})

	require.NoError(t, cmd.Execute())
	owner := repo.Reg.FindOwner("Ben")
	require.NotNil(t, owner)
	assert.Equal(t, container.AppConfig.Owner.DefaultDailyMinutes, owner.DailyTimeAvailable)
}

func TestNewOwnerListCommand(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newOwnerListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Amelia")
}

func TestNewPetAddCommand(t *testing.T) {
	container, repo := newTestContainer()

	cmd := newPetAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Haze", "--owner", "Amelia", "--species", "Cat"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `Added pet "Haze" (Cat) to owner "Amelia"`)
	assert.NotNil(t, repo.Reg.FindOwner("Amelia").FindPet("Haze"))
}

func TestNewInitCommand(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newInitCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Initialized empty store")

	buf.Reset()
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Store already exists")
}
