package localsolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/pkg/model"
)

func TestSolveSucceedsWhenFeasible(t *testing.T) {
	store := catalog.New(
		map[string]model.Subject{
			"Math": {Name: "Math", MainTeacher: "T1", CourseActivity: model.Activity{PerWeek: 1, Hours: 2}},
		},
		map[string]model.Teacher{
			"T1": {Name: "T1", Availability: map[string][]model.Interval{"Monday": {{Start: "08:00", End: "20:00"}}}},
		},
		map[string]model.Place{
			"B": {Name: "B", Rooms: map[string]model.Room{"R": {Name: "R", Capacity: 50}}},
		},
		map[string]model.Group{
			"911": {Id: "911", Size: 30},
			"912": {Id: "912", Size: 30},
		},
	)
	pending := []model.ClassSession{
		{SubjectName: "Math", Type: model.Course, GroupId: "911", TeacherName: "T1", WeekMask: model.EveryWeek},
		{SubjectName: "Math", Type: model.Course, GroupId: "912", TeacherName: "T1", WeekMask: model.EveryWeek},
	}

	scheduled, ok := Solve(store, pending, 0)
	require.True(t, ok)
	require.Len(t, scheduled, 2)
	for _, s := range scheduled {
		assert.True(t, s.Placed())
	}
}

func TestSolveFailsOnFirstUnplaceableSession(t *testing.T) {
	store := catalog.New(
		map[string]model.Subject{
			"Lab": {Name: "Lab", LabActivity: model.Activity{PerWeek: 1, Hours: 2}},
		},
		map[string]model.Teacher{},
		map[string]model.Place{
			"B": {Name: "B", Rooms: map[string]model.Room{
				"R": {Name: "R", Capacity: 50, Flags: map[model.RoomFlag]bool{model.NoLaboratory: true}},
			}},
		},
		map[string]model.Group{"911": {Id: "911", Size: 30}},
	)
	pending := []model.ClassSession{
		{SubjectName: "Lab", Type: model.Laboratory, GroupId: "911", WeekMask: model.EveryWeek},
	}

	scheduled, ok := Solve(store, pending, 0)
	assert.False(t, ok)
	assert.Nil(t, scheduled)
}

func TestSolveDifferentRanksProduceDifferentOrder(t *testing.T) {
	pending := make([]model.ClassSession, 0, 20)
	for i := 0; i < 20; i++ {
		pending = append(pending, model.ClassSession{SubjectName: "X", GroupId: string(rune('a' + i))})
	}
	a := shuffle(pending, seedForRank(0))
	b := shuffle(pending, seedForRank(1))
	assert.NotEqual(t, a, b)
}
