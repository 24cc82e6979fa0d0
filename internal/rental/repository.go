package rental

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("rental not found")

// Repository provides access to rental rows.
type Repository interface {
	ListByUser(userID string) ([]Rental, error)
	Create(r Rental) (Rental, error)
}

// InMemoryRepository is used for tests and the DB-free dev server. The
// optional lookup supplies joined property display fields.
type InMemoryRepository struct {
	mu      sync.RWMutex
	rentals []Rental
	lookup  func(propertyID string) *PropertyInfo
}

func NewInMemoryRepository(seed []Rental, lookup func(propertyID string) *PropertyInfo) *InMemoryRepository {
	repo := &InMemoryRepository{
		rentals: make([]Rental, 0, len(seed)),
		lookup:  lookup,
	}
	repo.rentals = append(repo.rentals, seed...)
	return repo
}

func (r *InMemoryRepository) ListByUser(userID string) ([]Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rental, 0)
	for _, rental := range r.rentals {
		if rental.UserID != userID {
			continue
		}
		if rental.Property == nil && r.lookup != nil {
			rental.Property = r.lookup(rental.PropertyID)
		}
		out = append(out, rental)
	}
	return out, nil
}

func (r *InMemoryRepository) Create(rental Rental) (Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rentals = append(r.rentals, rental)
	return rental, nil
}
