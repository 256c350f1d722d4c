// Package placer implements a fixed, deterministic, depth-first
// enumeration over building x day x hour x room that returns the first
// feasible placement for a candidate session.
package placer

import (
	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/internal/timeutil"
	"github.com/campusforge/timetable/internal/verify"
	"github.com/campusforge/timetable/pkg/model"
)

const (
	dayStartHour = 8
	dayEndHour   = 20
	// defaultDurationHours is substituted when a subject is unknown or its
	// catalog length is zero, a silent repair rather than a rejection.
	defaultDurationHours = 2
)

// TryPlace searches for a feasible slot for candidate against scheduled,
// mutating candidate in place on success. It returns false, leaving
// candidate unmodified in spirit (its tentative fields are left at
// whatever the last failed attempt set — callers must not use a rejected
// candidate), if no slot exists anywhere in the catalog.
func TryPlace(store *catalog.Store, candidate *model.ClassSession, scheduled []model.ClassSession) (bool, error) {
	group, err := store.RequireGroup(candidate.GroupId)
	if err != nil {
		return false, err
	}

	duration := resolveDuration(store, candidate.SubjectName, candidate.Type)
	effectiveSize := group.EffectiveSize(candidate.SubGroup)

	for _, building := range store.Buildings() {
		for _, day := range model.Weekdays {
			for h := dayStartHour; h <= dayEndHour-1; h++ {
				if h+duration > dayEndHour {
					continue
				}
				start := timeutil.FromMinutes(h * 60)
				end := timeutil.FromMinutes((h + duration) * 60)

				for _, roomName := range store.Rooms(building) {
					place, _ := store.Place(building)
					room := place.Rooms[roomName]

					if !verify.IsRoomSuitable(*candidate, room) {
						continue
					}
					if room.Capacity < effectiveSize {
						continue
					}

					candidate.BuildingName = building
					candidate.RoomName = roomName
					candidate.Day = day
					candidate.StartTime = start
					candidate.EndTime = end

					if verify.IsSlotFree(store, scheduled, *candidate, day, start, end) {
						return true, nil
					}
				}
			}
		}
	}

	return false, nil
}

// resolveDuration resolves the catalog length for subjectName/sessionType,
// falling back to defaultDurationHours when the subject is unknown or its
// length is zero.
func resolveDuration(store *catalog.Store, subjectName string, sessionType model.SessionType) int {
	subject, ok := store.Subject(subjectName)
	if !ok {
		return defaultDurationHours
	}
	length := subject.LengthHours(sessionType)
	if length == 0 {
		return defaultDurationHours
	}
	return length
}
