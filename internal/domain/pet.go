package domain

// Pet owns an ordered sequence of tasks. Insertion order is display order.
type Pet struct {
	Name    string  `json:"name" yaml:"name"` // Unique within its owner (enforced at the usecase layer)
	Species string  `json:"species" yaml:"species"`
	Tasks   []*Task `json:"tasks" yaml:"tasks"`
}

// NewPet creates a pet with no tasks.
func NewPet(name, species string) *Pet {
	return &Pet{Name: name, Species: species}
}

// AddTask appends a task to the pet's task list.
func (p *Pet) AddTask(t *Task) {
	p.Tasks = append(p.Tasks, t)
}

// RemoveTask removes the first task with the given number.
// Returns false if no task matched.
func (p *Pet) RemoveTask(number int) bool {
	for i, t := range p.Tasks {
		if t.Number == number {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// FindTask returns the first task with the given number, or nil.
func (p *Pet) FindTask(number int) *Task {
	for _, t := range p.Tasks {
		if t.Number == number {
			return t
		}
	}
	return nil
}
