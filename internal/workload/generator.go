// Package workload expands a catalog's group x subject x
// (course/seminar/lab) entries into the ordered list of unplaced
// ClassSessions the solver must place.
package workload

import (
	"math"
	"strconv"

	"github.com/samber/lo"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/pkg/model"
)

// Generate builds the ordered, unplaced session list for every group listed
// in the catalog. Unknown subjects referenced by a group are silently
// skipped.
func Generate(store *catalog.Store) []model.ClassSession {
	var sessions []model.ClassSession

	for _, groupId := range store.GroupIds() {
		group, _ := store.Group(groupId)
		for _, subjectName := range group.Subjects {
			subject, ok := store.Subject(subjectName)
			if !ok {
				continue // unknown subject referenced by a group: silently skipped
			}
			sessions = append(sessions, courses(group, subject)...)
			sessions = append(sessions, seminars(group, subject)...)
			sessions = append(sessions, laboratories(group, subject)...)
		}
	}

	return sessions
}

func courses(group model.Group, subject model.Subject) []model.ClassSession {
	count := ceilFrequency(subject.CourseActivity.PerWeek)
	return lo.Times(count, func(_ int) model.ClassSession {
		return model.ClassSession{
			SubjectName: subject.Name,
			Type:        model.Course,
			GroupId:     group.Id,
			SubGroup:    "",
			TeacherName: subject.MainTeacher,
			WeekMask:    model.EveryWeek,
		}
	})
}

func seminars(group model.Group, subject model.Subject) []model.ClassSession {
	return split(group, subject, model.Seminary, group.SeminarySplit, subject.SeminarActivity)
}

func laboratories(group model.Group, subject model.Subject) []model.ClassSession {
	splits := subject.LabSplitOverride
	if splits <= 0 {
		splits = group.LaboratorySplit
	}
	return split(group, subject, model.Laboratory, splits, subject.LabActivity)
}

// split emits sessions for an activity that may be partitioned into
// subgroups, applying the biweekly alternation rule: when the activity is
// biweekly and there are at least two subgroups, odd-numbered
// subgroups get the odd-week mask and even-numbered subgroups the
// even-week mask, so two half-group sessions can legally share a
// room/time on alternating weeks.
func split(group model.Group, subject model.Subject, sessionType model.SessionType, splits int, activity model.Activity) []model.ClassSession {
	if activity.PerWeek <= 0 {
		return nil
	}
	if splits <= 0 {
		splits = 1
	}
	biweekly := activity.PerWeek.IsBiweekly()
	count := ceilFrequency(activity.PerWeek)

	var sessions []model.ClassSession
	for s := 1; s <= splits; s++ {
		subGroup := ""
		if splits > 1 {
			subGroup = strconv.Itoa(s)
		}

		weekMask := model.EveryWeek
		switch {
		case biweekly && splits >= 2:
			if s%2 == 1 {
				weekMask = model.OddWeeks
			} else {
				weekMask = model.EvenWeeks
			}
		case biweekly && splits == 1:
			weekMask = model.OddWeeks
		}

		sessions = append(sessions, lo.Times(count, func(_ int) model.ClassSession {
			return model.ClassSession{
				SubjectName: subject.Name,
				Type:        sessionType,
				GroupId:     group.Id,
				SubGroup:    subGroup,
				TeacherName: subject.MainTeacher,
				WeekMask:    weekMask,
			}
		})...)
	}
	return sessions
}

func ceilFrequency(f model.Frequency) int {
	return int(math.Ceil(float64(f)))
}
