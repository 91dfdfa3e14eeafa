package ecs

import "slices"

// sparseSet stores one component kind keyed by entity ID. index[id] is the
// dense slot for id, or -1. Values are held as `any`; the typed helpers in
// world.go do the casting.
type sparseSet struct {
	index  []int
	ids    []int
	values []any
}

func (s *sparseSet) slot(id int) (int, bool) {
	if s == nil || id <= 0 || id >= len(s.index) {
		return 0, false
	}
	i := s.index[id]
	return i, i >= 0
}

func (s *sparseSet) has(id int) bool {
	_, ok := s.slot(id)
	return ok
}

func (s *sparseSet) get(id int) any {
	i, ok := s.slot(id)
	if !ok {
		return nil
	}
	return s.values[i]
}

// set inserts or replaces the value for id.
func (s *sparseSet) set(id int, v any) {
	if i, ok := s.slot(id); ok {
		s.values[i] = v
		return
	}
	for len(s.index) <= id {
		s.index = append(s.index, -1)
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
}

// remove swaps the last dense slot into id's slot and reports whether id was
// present.
func (s *sparseSet) remove(id int) bool {
	i, ok := s.slot(id)
	if !ok {
		return false
	}
	last := len(s.ids) - 1
	moved := s.ids[last]
	s.ids[i] = moved
	s.values[i] = s.values[last]
	s.index[moved] = i

	s.values[last] = nil
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	s.index[id] = -1
	return true
}

// sortedIDs returns a copy of the stored IDs in ascending order.
func (s *sparseSet) sortedIDs() []int {
	if s == nil {
		return nil
	}
	out := slices.Clone(s.ids)
	slices.Sort(out)
	return out
}

func (s *sparseSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}
