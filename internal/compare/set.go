package compare

import "github.com/google/uuid"

// Set is the working selection of bikes a user is comparing. Adds past
// the cap and duplicate adds are silent no-ops, matching how the
// selection behaves in the storefront.
type Set struct {
	ids []uuid.UUID
}

// NewSet builds a working set seeded with the given ids, applying the
// same dedup and cap rules as Add.
func NewSet(ids ...uuid.UUID) *Set {
	s := &Set{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts the id unless it is already present or the set is full.
// It reports whether the set changed.
func (s *Set) Add(id uuid.UUID) bool {
	if id == uuid.Nil {
		return false
	}
	if len(s.ids) >= MaxCompareBikes {
		return false
	}
	for _, existing := range s.ids {
		if existing == id {
			return false
		}
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove drops the id if present, keeping the remaining order.
func (s *Set) Remove(id uuid.UUID) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// IDs returns the selection in insertion order.
func (s *Set) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len reports the current selection size.
func (s *Set) Len() int {
	return len(s.ids)
}
