package selection

// Set is an insertion-ordered set of records keyed by RecordID.
type Set[T Item] struct {
	order []T
	index map[int64]int
}

// NewSet creates an empty set.
func NewSet[T Item]() *Set[T] {
	return &Set[T]{index: make(map[int64]int)}
}

// Add inserts r unless a record with the same id is present.
func (s *Set[T]) Add(r T) bool {
	id := r.RecordID()
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, r)
	return true
}

// Delete removes the record with id, preserving the order of the rest.
func (s *Set[T]) Delete(id int64) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i].RecordID()] = i
	}
	return true
}

// Has reports membership by id.
func (s *Set[T]) Has(id int64) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of records.
func (s *Set[T]) Len() int { return len(s.order) }

// Clear empties the set.
func (s *Set[T]) Clear() {
	s.order = nil
	clear(s.index)
}

// Items returns a copy in insertion order.
func (s *Set[T]) Items() []T {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}
