package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/testutil"
)

func TestAddOwner_Execute(t *testing.T) {
	repo := testutil.NewMockRegistryRepository()
	logger := &testutil.MockLogger{}
	uc := NewAddOwner(repo, domain.NewSequence(), logger)

	out, err := uc.Execute(context.Background(), AddOwnerInput{Name: "Amelia", DailyMinutes: 55})

	require.NoError(t, err)
	assert.Equal(t, "Amelia", out.Owner.Name)
	assert.Equal(t, 55, out.Owner.DailyTimeAvailable)
	assert.Equal(t, 1, repo.Saves)
	require.NotNil(t, repo.Saved)
	assert.NotNil(t, repo.Saved.FindOwner("Amelia"))
	require.Len(t, logger.Entries, 1)
	assert.Equal(t, "owner", logger.Entries[0].Category)
}

func TestAddOwner_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   AddOwnerInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   AddOwnerInput{Name: "", DailyMinutes: 60},
			wantErr: domain.ErrEmptyName,
		},
		{
			name:    "negative budget",
			input:   AddOwnerInput{Name: "Amelia", DailyMinutes: -1},
			wantErr: domain.ErrNegativeBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := testutil.NewMockRegistryRepository()
			uc := NewAddOwner(repo, domain.NewSequence(), nil)

			_, err := uc.Execute(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.Saves)
		})
	}
}

func TestAddOwner_Execute_Duplicate(t *testing.T) {
	repo := testutil.NewMockRegistryRepository()
	repo.Reg.AddOwner(domain.NewOwner("Amelia", 60))
	uc := NewAddOwner(repo, domain.NewSequence(), nil)

	_, err := uc.Execute(context.Background(), AddOwnerInput{Name: "Amelia", DailyMinutes: 55})

	assert.ErrorIs(t, err, domain.ErrOwnerExists)
	assert.Zero(t, repo.Saves)
}

func TestAddPet_Execute(t *testing.T) {
	repo := testutil.NewMockRegistryRepository()
	repo.Reg.AddOwner(domain.NewOwner("Amelia", 60))
	uc := NewAddPet(repo, domain.NewSequence(), nil)

	out, err := uc.Execute(context.Background(), AddPetInput{Owner: "Amelia", Name: "Ani", Species: "Dog"})

	require.NoError(t, err)
	assert.Equal(t, "Ani", out.Pet.Name)
	assert.Equal(t, "Dog", out.Pet.Species)
	assert.NotNil(t, repo.Reg.FindOwner("Amelia").FindPet("Ani"))
}

func TestAddPet_Execute_Errors(t *testing.T) {
	repo := testutil.NewMockRegistryRepository()
	owner := domain.NewOwner("Amelia", 60)
	owner.AddPet(domain.NewPet("Ani", "Dog"))
	repo.Reg.AddOwner(owner)
	uc := NewAddPet(repo, domain.NewSequence(), nil)

	_, err := uc.Execute(context.Background(), AddPetInput{Owner: "Amelia", Name: ""})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = uc.Execute(context.Background(), AddPetInput{Owner: "Ben", Name: "Rex"})
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)

	_, err = uc.Execute(context.Background(), AddPetInput{Owner: "Amelia", Name: "Ani"})
	assert.ErrorIs(t, err, domain.ErrPetExists)
}
