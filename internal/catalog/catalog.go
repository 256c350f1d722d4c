// Package catalog holds the four keyed, read-only lookup tables built once
// from loaded config and shared by reference with every downstream
// component.
package catalog

import (
	"fmt"
	"sort"

	"github.com/campusforge/timetable/pkg/model"
)

// Store is immutable after New returns. Lookups are by exact key; missing
// keys are errors the caller handles.
type Store struct {
	subjects map[string]model.Subject
	teachers map[string]model.Teacher
	places   map[string]model.Place
	groups   map[string]model.Group

	buildingOrder []string
}

// New freezes the four catalogs into a Store. It does not validate
// cross-references (e.g. a group listing an unknown subject) — that
// tolerance is delegated to the workload generator and the placer's
// unknown-group fatal path.
func New(subjects map[string]model.Subject, teachers map[string]model.Teacher, places map[string]model.Place, groups map[string]model.Group) *Store {
	order := make([]string, 0, len(places))
	for name := range places {
		order = append(order, name)
	}
	sort.Strings(order)

	return &Store{
		subjects:      subjects,
		teachers:      teachers,
		places:        places,
		groups:        groups,
		buildingOrder: order,
	}
}

func (s *Store) Subject(name string) (model.Subject, bool) {
	sub, ok := s.subjects[name]
	return sub, ok
}

func (s *Store) Teacher(name string) (model.Teacher, bool) {
	t, ok := s.teachers[name]
	return t, ok
}

func (s *Store) Place(name string) (model.Place, bool) {
	p, ok := s.places[name]
	return p, ok
}

func (s *Store) Group(id string) (model.Group, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// RequireGroup returns the group or a fatal error — an unknown group
// during placement means the search cannot compute an effective size, so
// there is no recovery short of aborting the placement attempt.
func (s *Store) RequireGroup(id string) (model.Group, error) {
	g, ok := s.groups[id]
	if !ok {
		return model.Group{}, fmt.Errorf("catalog: unknown group %q", id)
	}
	return g, nil
}

// Buildings returns building names in fixed sorted order, the deterministic
// enumeration order the placer relies on for reproducible search.
func (s *Store) Buildings() []string {
	return s.buildingOrder
}

// Rooms returns a building's room names in fixed sorted order.
func (s *Store) Rooms(building string) []string {
	place, ok := s.places[building]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(place.Rooms))
	for name := range place.Rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupIds returns all group ids in fixed sorted order, used by
// WorkloadGenerator to iterate groups deterministically.
func (s *Store) GroupIds() []string {
	ids := make([]string, 0, len(s.groups))
	for id := range s.groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
