package inventory

import (
	"fmt"
	"strings"
)

// MemStore keeps records in insertion order and scans linearly. It is meant
// for a single interactive session and is not safe for concurrent use.
type MemStore struct {
	records []Record
}

func NewMemStore() *MemStore {
	return &MemStore{records: make([]Record, 0, 16)}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Len() int { return len(s.records) }

func (s *MemStore) Add(r Record) error {
	if s.indexOf(r.ID) >= 0 {
		return fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
	}
	s.records = append(s.records, r)
	return nil
}

func (s *MemStore) IsIDUnique(id string) bool {
	return s.indexOf(id) < 0
}

func (s *MemStore) Remove(id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

func (s *MemStore) Update(id string, p Patch) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	if p.Quantity != nil {
		s.records[i].Quantity = *p.Quantity
	}
	if p.Price != nil {
		s.records[i].Price = *p.Price
	}
	return nil
}

func (s *MemStore) ListAll() ([]Record, error) {
	if len(s.records) == 0 {
		return nil, ErrEmpty
	}

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemStore) ListIDs() ([]IDName, error) {
	if len(s.records) == 0 {
		return nil, ErrEmpty
	}

	out := make([]IDName, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, IDName{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (s *MemStore) FindByName(sub string) ([]Record, error) {
	needle := strings.ToLower(sub)

	var out []Record
	for _, r := range s.records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, sub)
	}
	return out, nil
}

func (s *MemStore) indexOf(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}
