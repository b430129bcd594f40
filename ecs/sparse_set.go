package ecs

// store is the type-erased view the world keeps of every component set.
type store interface {
	has(id int) bool
	remove(id int) bool
	ids() []int
}

// SparseSet is a cache-friendly storage for one component type keyed by entity id.
// Values are held by pointer so systems mutate components in place.
type SparseSet[T any] struct {
	denseEntities []int
	denseValues   []*T
	sparse        []int
}

func (s *SparseSet[T]) has(id int) bool {
	if id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == id
}

func (s *SparseSet[T]) get(id int) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.denseValues[s.sparse[id-1]], true
}

func (s *SparseSet[T]) set(id int, v *T) {
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

func (s *SparseSet[T]) remove(id int) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastID := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseValues[last] = nil
	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

// ids returns a copy of the dense id list so callers may mutate the set while iterating.
func (s *SparseSet[T]) ids() []int {
	return append([]int(nil), s.denseEntities...)
}

// Len returns the number of stored components.
func (s *SparseSet[T]) Len() int {
	return len(s.denseEntities)
}
