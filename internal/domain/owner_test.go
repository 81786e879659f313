package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwner_AllTasks(t *testing.T) {
	owner := NewOwner("Amelia", 60)
	dog := NewPet("Ani", "Dog")
	cat := NewPet("Haze", "Cat")

	walk := &Task{Number: 1, Description: "Morning walk"}
	feed := &Task{Number: 2, Description: "Feed"}
	litter := &Task{Number: 3, Description: "Clean litter box"}
	dog.AddTask(walk)
	dog.AddTask(feed)
	cat.AddTask(litter)

	owner.AddPet(dog)
	owner.AddPet(cat)

	all := owner.AllTasks()
	require.Len(t, all, 3)
	assert.Equal(t, []*Task{walk, feed, litter}, all)

	// The returned slice is a copy: reordering it must not affect the pets.
	all[0], all[2] = all[2], all[0]
	assert.Equal(t, walk, dog.Tasks[0])
	assert.Equal(t, litter, cat.Tasks[0])
}

func TestOwner_AllTasks_Empty(t *testing.T) {
	owner := NewOwner("Amelia", 60)
	assert.Empty(t, owner.AllTasks())

	owner.AddPet(NewPet("Ani", "Dog"))
	assert.Empty(t, owner.AllTasks())
}

func TestOwner_TasksByPet(t *testing.T) {
	owner := NewOwner("Amelia", 60)
	dog := NewPet("Ani", "Dog")
	cat := NewPet("Haze", "Cat")
	walk := &Task{Number: 1, Description: "Morning walk"}
	dog.AddTask(walk)
	owner.AddPet(dog)
	owner.AddPet(cat)

	groups := owner.TasksByPet()
	require.Len(t, groups, 2)
	assert.Equal(t, "Ani", groups[0].PetName)
	assert.Equal(t, []*Task{walk}, groups[0].Tasks)
	assert.Equal(t, "Haze", groups[1].PetName)
	assert.Empty(t, groups[1].Tasks)
}

func TestOwner_FindPet(t *testing.T) {
	owner := NewOwner("Amelia", 60)
	dog := NewPet("Ani", "Dog")
	owner.AddPet(dog)

	assert.Equal(t, dog, owner.FindPet("Ani"))
	assert.Nil(t, owner.FindPet("Haze"))
}

func TestPet_RemoveTask(t *testing.T) {
	pet := NewPet("Ani", "Dog")
	walk := &Task{Number: 1, Description: "Morning walk"}
	feed := &Task{Number: 2, Description: "Feed"}
	pet.AddTask(walk)
	pet.AddTask(feed)

	assert.True(t, pet.RemoveTask(1))
	assert.Equal(t, []*Task{feed}, pet.Tasks)
	assert.False(t, pet.RemoveTask(1))
}

func TestPet_FindTask(t *testing.T) {
	pet := NewPet("Ani", "Dog")
	walk := &Task{Number: 7, Description: "Morning walk"}
	pet.AddTask(walk)

	assert.Equal(t, walk, pet.FindTask(7))
	assert.Nil(t, pet.FindTask(8))
}

func TestRegistry_FindOwner(t *testing.T) {
	reg := NewRegistry()
	owner := NewOwner("Amelia", 60)
	reg.AddOwner(owner)

	assert.Equal(t, owner, reg.FindOwner("Amelia"))
	assert.Nil(t, reg.FindOwner("Ben"))
}

func TestRegistry_MaxTaskNumber(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, 0, reg.MaxTaskNumber())

	owner := NewOwner("Amelia", 60)
	dog := NewPet("Ani", "Dog")
	dog.AddTask(&Task{Number: 3})
	dog.AddTask(&Task{Number: 12})
	cat := NewPet("Haze", "Cat")
	cat.AddTask(&Task{Number: 7})
	owner.AddPet(dog)
	owner.AddPet(cat)
	reg.AddOwner(owner)

	assert.Equal(t, 12, reg.MaxTaskNumber())
}
