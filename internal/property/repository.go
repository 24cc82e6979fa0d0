package property

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("property not found")

// Repository provides access to the property catalog.
type Repository interface {
	List() []Property
	ListAvailable() []Property
	GetByID(id string) (Property, error)
	Create(p Property) (Property, error)
	Update(id string, p Property) (Property, error)
	SetAvailability(id string, available bool) (Property, error)
	Delete(id string) error
}

// InMemoryRepository is used for tests and the DB-free dev server.
type InMemoryRepository struct {
	mu         sync.RWMutex
	properties []Property
}

func NewInMemoryRepository(seed []Property) *InMemoryRepository {
	repo := &InMemoryRepository{properties: make([]Property, 0, len(seed))}
	repo.properties = append(repo.properties, seed...)
	return repo
}

func (r *InMemoryRepository) List() []Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Property, len(r.properties))
	copy(out, r.properties)
	return out
}

func (r *InMemoryRepository) ListAvailable() []Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Property, 0, len(r.properties))
	for _, p := range r.properties {
		if p.IsAvailable {
			out = append(out, p)
		}
	}
	return out
}

func (r *InMemoryRepository) GetByID(id string) (Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return Property{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Property) (Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.properties = append(r.properties, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id string, update Property) (Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.properties {
		if p.ID == id {
			update.ID = id
			r.properties[i] = update
			return update, nil
		}
	}
	return Property{}, ErrNotFound
}

func (r *InMemoryRepository) SetAvailability(id string, available bool) (Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.properties {
		if p.ID == id {
			p.IsAvailable = available
			r.properties[i] = p
			return p, nil
		}
	}
	return Property{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.properties {
		if p.ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
