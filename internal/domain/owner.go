package domain

// Owner is the aggregate root: it exclusively owns its pets and, through
// them, their tasks. Ownership is strictly tree-shaped.
// Fields are ordered to minimize memory padding.
type Owner struct {
	Name               string `json:"name" yaml:"name"`
	Pets               []*Pet `json:"pets" yaml:"pets"`
	DailyTimeAvailable int    `json:"daily_time_available" yaml:"daily_time_available"` // Minutes per day
}

// NewOwner creates an owner with no pets.
func NewOwner(name string, dailyTimeAvailable int) *Owner {
	return &Owner{Name: name, DailyTimeAvailable: dailyTimeAvailable}
}

// AddPet appends a pet to the owner.
func (o *Owner) AddPet(p *Pet) {
	o.Pets = append(o.Pets, p)
}

// FindPet returns the pet with the given name, or nil.
func (o *Owner) FindPet(name string) *Pet {
	for _, p := range o.Pets {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AllTasks returns a fresh slice of every task across all pets, in pet
// insertion order then per-pet task insertion order. Callers may reorder
// the slice freely without affecting the aggregate.
func (o *Owner) AllTasks() []*Task {
	var tasks []*Task
	for _, p := range o.Pets {
		tasks = append(tasks, p.Tasks...)
	}
	return tasks
}

// PetTasks groups the tasks of one pet for display.
type PetTasks struct {
	PetName string
	Tasks   []*Task
}

// TasksByPet returns the owner's tasks grouped by pet, in pet insertion
// order. The grouping is built by traversal, not stored.
func (o *Owner) TasksByPet() []PetTasks {
	groups := make([]PetTasks, 0, len(o.Pets))
	for _, p := range o.Pets {
		groups = append(groups, PetTasks{PetName: p.Name, Tasks: p.Tasks})
	}
	return groups
}

// Registry is the collection of all owners known to the application.
type Registry struct {
	Owners []*Owner `json:"owners" yaml:"owners"`
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddOwner appends an owner to the registry.
func (r *Registry) AddOwner(o *Owner) {
	r.Owners = append(r.Owners, o)
}

// FindOwner returns the owner with the given name, or nil.
func (r *Registry) FindOwner(name string) *Owner {
	for _, o := range r.Owners {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// MaxTaskNumber returns the highest task number present in the registry.
// Used to advance the number sequence after loading persisted state so
// freshly allocated numbers never collide with restored ones.
func (r *Registry) MaxTaskNumber() int {
	maxNumber := 0
	for _, o := range r.Owners {
		for _, t := range o.AllTasks() {
			if t.Number > maxNumber {
				maxNumber = t.Number
			}
		}
	}
	return maxNumber
}
