// Package verify implements two pure predicates over (catalog,
// scheduled-so-far, candidate) that the placer consults on every tentative
// assignment.
package verify

import (
	"github.com/samber/lo"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/internal/timeutil"
	"github.com/campusforge/timetable/pkg/model"
)

// IsRoomSuitable is true iff room's flags do not forbid candidate's type.
// Capacity is checked by the placer, not here.
func IsRoomSuitable(candidate model.ClassSession, room model.Room) bool {
	return !room.Forbids(candidate.Type)
}

// IsSlotFree evaluates the instructor-availability gate and the pairwise
// conflict scan for candidate occupying [day, start, end) in room/building.
// start and end are assumed already written onto candidate by the
// placer's tentative assignment.
func IsSlotFree(store *catalog.Store, scheduled []model.ClassSession, candidate model.ClassSession, day, start, end string) bool {
	if !teacherAvailable(store, candidate, day, start, end) {
		return false
	}
	return !lo.SomeBy(scheduled, func(existing model.ClassSession) bool {
		return conflicts(existing, candidate, day, start, end)
	})
}

// teacherAvailable implements the pre-check gate: unknown teacher names
// bypass it entirely (treated as externally managed).
func teacherAvailable(store *catalog.Store, candidate model.ClassSession, day, start, end string) bool {
	if candidate.TeacherName == "" {
		return true
	}
	teacher, ok := store.Teacher(candidate.TeacherName)
	if !ok {
		return true
	}

	intervals, ok := teacher.HasDay(day)
	if !ok {
		return false
	}

	startMin, err := timeutil.ToMinutes(start)
	if err != nil {
		return false
	}
	endMin, err := timeutil.ToMinutes(end)
	if err != nil {
		return false
	}

	return lo.SomeBy(intervals, func(iv model.Interval) bool {
		avStart, err1 := timeutil.ToMinutes(iv.Start)
		avEnd, err2 := timeutil.ToMinutes(iv.End)
		if err1 != nil || err2 != nil {
			return false
		}
		return timeutil.Contains(avStart, avEnd, startMin, endMin)
	})
}

// conflicts implements the pairwise conflict scan for one existing
// session: it first rules out a different day, disjoint week masks and
// non-overlapping times, then reports whether the co-occurring pair clashes
// on room, teacher or group.
func conflicts(existing, candidate model.ClassSession, day, start, end string) bool {
	if existing.Day != day {
		return false
	}
	if !existing.WeekMask.Overlaps(candidate.WeekMask) {
		return false
	}

	existingStart, err1 := timeutil.ToMinutes(existing.StartTime)
	existingEnd, err2 := timeutil.ToMinutes(existing.EndTime)
	startMin, err3 := timeutil.ToMinutes(start)
	endMin, err4 := timeutil.ToMinutes(end)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return false
	}
	if !timeutil.Overlap(startMin, endMin, existingStart, existingEnd) {
		return false
	}

	if existing.RoomName == candidate.RoomName {
		return true
	}
	if candidate.TeacherName != "" && existing.TeacherName == candidate.TeacherName {
		return true
	}
	if existing.GroupId == candidate.GroupId {
		// A whole-group session (SubGroup == "") always blocks, regardless
		// of the other side's subgroup label. Only two genuinely distinct
		// non-empty subgroups may coexist.
		if existing.SubGroup == "" || candidate.SubGroup == "" {
			return true
		}
		if existing.SubGroup == candidate.SubGroup {
			return true
		}
	}
	return false
}
