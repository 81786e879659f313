package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petcare/pawpal/internal/domain"
	"github.com/petcare/pawpal/internal/planner"
	"github.com/petcare/pawpal/internal/testutil"
)

// householdRepo builds the reference household: Amelia with a 55 minute
// budget, a dog and a cat, four tasks, one already completed.
func householdRepo() *testutil.MockRegistryRepository {
	repo := testutil.NewMockRegistryRepository()
	owner := domain.NewOwner("Amelia", 55)
	dog := domain.NewPet("Ani", "Dog")
	cat := domain.NewPet("Haze", "Cat")

	due := domain.NewDate(2026, time.March, 10)
	dog.AddTask(&domain.Task{Number: 1, Description: "Morning walk", PetName: "Ani", DurationMinutes: 20, Priority: 5, Time: 480, Frequency: domain.FrequencyDaily, DueDate: due})
	dog.AddTask(&domain.Task{Number: 2, Description: "Feed Haze", PetName: "Ani", DurationMinutes: 5, Priority: 4, Time: 540, Frequency: domain.FrequencyDaily, DueDate: due, Completed: true})
	cat.AddTask(&domain.Task{Number: 3, Description: "Clean litter box", PetName: "Haze", DurationMinutes: 10, Priority: 5, Time: 600, Frequency: domain.FrequencyDaily, DueDate: due})
	cat.AddTask(&domain.Task{Number: 4, Description: "Playtime with Ani", PetName: "Haze", DurationMinutes: 15, Priority: 3, Time: 450, Frequency: domain.FrequencyDaily, DueDate: due})

	owner.AddPet(dog)
	owner.AddPet(cat)
	repo.Reg.AddOwner(owner)
	return repo
}

func newPlanUseCase(repo *testutil.MockRegistryRepository) *GeneratePlan {
	numbers := domain.NewSequence()
	return NewGeneratePlan(repo, planner.New(numbers), numbers)
}

func TestGeneratePlan_Execute(t *testing.T) {
	repo := householdRepo()
	uc := newPlanUseCase(repo)

	out, err := uc.Execute(context.Background(), GeneratePlanInput{Owner: "Amelia"})
	require.NoError(t, err)

	// Priority 5 tasks first (shorter litter box before the walk), then
	// the completed feed is skipped, then playtime fits the remainder.
	require.Len(t, out.Plan, 3)
	assert.Equal(t, "Clean litter box", out.Plan[0].Description)
	assert.Equal(t, "Morning walk", out.Plan[1].Description)
	assert.Equal(t, "Playtime with Ani", out.Plan[2].Description)

	assert.Equal(t, 55, out.Budget)
	assert.Equal(t, 45, out.Scheduled)
	assert.Equal(t, 3, out.Incomplete)
	assert.Equal(t, 1, out.Completed)

	assert.Equal(t, []string{
		"Scheduled 'Clean litter box' (priority 5).",
		"Scheduled 'Morning walk' (priority 5).",
		"Skipped 'Feed Haze' (already completed).",
		"Scheduled 'Playtime with Ani' (priority 3).",
	}, out.Explanation)
}

func TestGeneratePlan_Execute_IsReadOnly(t *testing.T) {
	repo := householdRepo()
	uc := newPlanUseCase(repo)

	_, err := uc.Execute(context.Background(), GeneratePlanInput{Owner: "Amelia"})
	require.NoError(t, err)

	assert.Zero(t, repo.Saves)
	pet := repo.Reg.FindOwner("Amelia").FindPet("Ani")
	assert.False(t, pet.Tasks[0].Completed)
}

func TestGeneratePlan_Execute_Conflicts(t *testing.T) {
	repo := testutil.NewMockRegistryRepository()
	owner := domain.NewOwner("Amelia", 60)
	pet := domain.NewPet("Ani", "Dog")
	pet.AddTask(&domain.Task{Number: 1, Description: "Walk", PetName: "Ani", DurationMinutes: 30, Priority: 5, Time: 480, Frequency: domain.FrequencyDaily})
	pet.AddTask(&domain.Task{Number: 2, Description: "Feed", PetName: "Ani", DurationMinutes: 10, Priority: 4, Time: 500, Frequency: domain.FrequencyDaily})
	owner.AddPet(pet)
	repo.Reg.AddOwner(owner)

	uc := newPlanUseCase(repo)
	out, err := uc.Execute(context.Background(), GeneratePlanInput{Owner: "Amelia"})

	require.NoError(t, err)
	require.Len(t, out.Conflicts, 1)
	assert.True(t, strings.HasPrefix(out.Conflicts[0], "Time conflict: 'Walk' (Ani)"))
}

func TestGeneratePlan_Execute_OwnerNotFound(t *testing.T) {
	uc := newPlanUseCase(testutil.NewMockRegistryRepository())

	_, err := uc.Execute(context.Background(), GeneratePlanInput{Owner: "Ben"})

	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}
