package verify

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/pkg/model"
)

func TestIsRoomSuitable(t *testing.T) {
	g := NewWithT(t)

	lab := model.ClassSession{Type: model.Laboratory}
	plainRoom := model.Room{Flags: map[model.RoomFlag]bool{}}
	noLabRoom := model.Room{Flags: map[model.RoomFlag]bool{model.NoLaboratory: true}}

	g.Expect(IsRoomSuitable(lab, plainRoom)).To(BeTrue())
	g.Expect(IsRoomSuitable(lab, noLabRoom)).To(BeFalse())
}

func TestTeacherAvailabilityGate(t *testing.T) {
	g := NewWithT(t)

	store := catalog.New(
		map[string]model.Subject{},
		map[string]model.Teacher{
			"T1": {Name: "T1", Availability: map[string][]model.Interval{
				"Monday": {{Start: "10:00", End: "12:00"}},
			}},
		},
		map[string]model.Place{},
		map[string]model.Group{},
	)

	inside := model.ClassSession{TeacherName: "T1"}
	g.Expect(IsSlotFree(store, nil, inside, "Monday", "10:00", "12:00")).To(BeTrue())

	outside := model.ClassSession{TeacherName: "T1"}
	g.Expect(IsSlotFree(store, nil, outside, "Monday", "08:00", "10:00")).To(BeFalse())

	wrongDay := model.ClassSession{TeacherName: "T1"}
	g.Expect(IsSlotFree(store, nil, wrongDay, "Tuesday", "10:00", "12:00")).To(BeFalse())
}

func TestUnknownTeacherBypassesGate(t *testing.T) {
	g := NewWithT(t)
	store := catalog.New(nil, nil, nil, nil)
	candidate := model.ClassSession{TeacherName: "Ghost"}
	g.Expect(IsSlotFree(store, nil, candidate, "Monday", "08:00", "10:00")).To(BeTrue())
}

func TestSameRoomConflicts(t *testing.T) {
	g := NewWithT(t)
	store := catalog.New(nil, nil, nil, nil)

	existing := model.ClassSession{RoomName: "R", Day: "Monday", StartTime: "08:00", EndTime: "10:00", WeekMask: model.EveryWeek}
	candidate := model.ClassSession{RoomName: "R", WeekMask: model.EveryWeek}

	g.Expect(IsSlotFree(store, []model.ClassSession{existing}, candidate, "Monday", "09:00", "11:00")).To(BeFalse())
}

func TestDisjointWeekMasksNeverConflict(t *testing.T) {
	g := NewWithT(t)
	store := catalog.New(nil, nil, nil, nil)

	existing := model.ClassSession{RoomName: "R", Day: "Monday", StartTime: "08:00", EndTime: "10:00", WeekMask: model.OddWeeks}
	candidate := model.ClassSession{RoomName: "R", WeekMask: model.EvenWeeks}

	g.Expect(IsSlotFree(store, []model.ClassSession{existing}, candidate, "Monday", "08:00", "10:00")).To(BeTrue())
}

func TestSubgroupExclusionRule(t *testing.T) {
	g := NewWithT(t)
	store := catalog.New(nil, nil, nil, nil)

	wholeGroup := model.ClassSession{GroupId: "911", SubGroup: "", RoomName: "R1", Day: "Monday", StartTime: "08:00", EndTime: "10:00", WeekMask: model.EveryWeek}
	subgroupCandidate := model.ClassSession{GroupId: "911", SubGroup: "1", RoomName: "R2", WeekMask: model.EveryWeek}

	// A whole-group session blocks a subgroup session even in a different room.
	g.Expect(IsSlotFree(store, []model.ClassSession{wholeGroup}, subgroupCandidate, "Monday", "08:00", "10:00")).To(BeFalse())

	distinctSubgroups := model.ClassSession{GroupId: "911", SubGroup: "1", RoomName: "R1", Day: "Monday", StartTime: "08:00", EndTime: "10:00", WeekMask: model.EveryWeek}
	otherSubgroup := model.ClassSession{GroupId: "911", SubGroup: "2", RoomName: "R2", WeekMask: model.EveryWeek}

	// Two distinct non-empty subgroups in different rooms do not conflict.
	g.Expect(IsSlotFree(store, []model.ClassSession{distinctSubgroups}, otherSubgroup, "Monday", "08:00", "10:00")).To(BeTrue())
}
