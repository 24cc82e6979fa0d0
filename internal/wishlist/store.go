package wishlist

import (
	"log"
	"sync"
)

// Storage persists the wishlist as one document under a well-known key.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// Store holds the wishlist for this installation. One instance is
// constructed at startup and injected into consumers; every mutation is
// immediately visible to all of them and written through to storage.
// Persistence is best-effort: a failed write is logged and the in-memory
// state stays authoritative for the session.
type Store struct {
	mu      sync.RWMutex
	items   []Item
	storage Storage
}

// NewStore hydrates the store from storage once. Corrupt or missing stored
// data is treated as an empty wishlist, never a fatal error.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	if storage != nil {
		items, err := storage.Load()
		if err != nil {
			log.Printf("wishlist: discarding stored data: %v", err)
		} else {
			s.items = items
		}
	}
	if s.items == nil {
		s.items = []Item{}
	}
	return s
}

// Items returns the saved items in insertion order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) IsInWishlist(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// AddItem inserts the item if absent. Adding an already-saved id is a
// no-op.
func (s *Store) AddItem(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return
		}
	}
	s.items = append(s.items, item)
	s.persistLocked()
}

// RemoveItem removes the item if present. Removing an absent id is a
// no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Toggle removes the item if its id is saved, otherwise adds it. Reports
// whether the item is in the wishlist afterwards.
func (s *Store) Toggle(item Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return false
		}
	}
	s.items = append(s.items, item)
	s.persistLocked()
	return true
}

// Clear empties the wishlist.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []Item{}
	s.persistLocked()
}

func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(s.items); err != nil {
		// in-memory state stays authoritative; the write is retried on the
		// next mutation
		log.Printf("wishlist: persist failed: %v", err)
	}
}
