package property

import (
	"sort"
	"time"
)

type Service struct {
	repo Repository

	// onChange is invoked after every successful catalog mutation so
	// derived caches (the map coordinate memo) can drop stale entries.
	onChange func()
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// OnChange registers a hook fired after Create, Update, SetAvailability
// and Delete. Set once during wiring, before the server starts.
func (s *Service) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Service) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

// ListSummaries returns catalog cards for every available listing, in
// repository order. The availability restriction happens here, server side;
// the filter engine never re-applies it.
func (s *Service) ListSummaries() []Summary {
	props := s.repo.ListAvailable()
	out := make([]Summary, 0, len(props))
	for _, p := range props {
		out = append(out, p.Summary())
	}
	return out
}

// Search runs the filter engine over the available listings.
func (s *Service) Search(c Criteria) []Summary {
	return Filter(s.ListSummaries(), c)
}

// Recent returns up to limit of the newest available listings. RFC 3339
// timestamps order lexicographically; ties keep repository order.
func (s *Service) Recent(limit int) []Summary {
	props := s.repo.ListAvailable()
	sort.SliceStable(props, func(i, j int) bool {
		return props[i].CreatedAt > props[j].CreatedAt
	})
	if limit > 0 && len(props) > limit {
		props = props[:limit]
	}
	out := make([]Summary, 0, len(props))
	for _, p := range props {
		out = append(out, p.Summary())
	}
	return out
}

func (s *Service) List() []Property {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Property, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Property) (Property, error) {
	now := nowRFC3339()
	if p.CreatedAt == "" {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	created, err := s.repo.Create(p)
	if err != nil {
		return Property{}, err
	}
	s.notifyChange()
	return created, nil
}

func (s *Service) Update(id string, p Property) (Property, error) {
	p.UpdatedAt = nowRFC3339()
	updated, err := s.repo.Update(id, p)
	if err != nil {
		return Property{}, err
	}
	s.notifyChange()
	return updated, nil
}

func (s *Service) SetAvailability(id string, available bool) (Property, error) {
	updated, err := s.repo.SetAvailability(id, available)
	if err != nil {
		return Property{}, err
	}
	s.notifyChange()
	return updated, nil
}

func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.notifyChange()
	return nil
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}
