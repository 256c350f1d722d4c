// Package configio reads the four config documents from a directory and
// builds a catalog.Store, accumulating every file's error into one report
// instead of bailing on the first bad file.
package configio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/pkg/model"
)

const (
	subjectsFile = "subjects-config"
	teachersFile = "teachers-config"
	placesFile   = "places-config"
	groupsFile   = "groups-config"
)

// Load reads subjects-config, teachers-config, places-config and
// groups-config from dir and builds a catalog.Store. All four files are
// attempted even if earlier ones fail, and every problem is folded into a
// single returned error instead of failing on the first bad file.
func Load(dir string) (*catalog.Store, error) {
	var report string
	failed := false

	var rawSubjects map[string]rawSubject
	if err := readInto(dir, subjectsFile, &rawSubjects); err != nil {
		failed = true
		report += err.Error() + "\n"
	}

	var rawTeachers map[string]rawTeacher
	if err := readInto(dir, teachersFile, &rawTeachers); err != nil {
		failed = true
		report += err.Error() + "\n"
	}

	var rawPlaces map[string]rawPlace
	if err := readInto(dir, placesFile, &rawPlaces); err != nil {
		failed = true
		report += err.Error() + "\n"
	}

	var rawGroups map[string]rawGroup
	if err := readInto(dir, groupsFile, &rawGroups); err != nil {
		failed = true
		report += err.Error() + "\n"
	}

	if failed {
		return nil, fmt.Errorf("configio: failed to load config directory %q:\n%s", dir, report)
	}

	subjects := make(map[string]model.Subject, len(rawSubjects))
	for name, rs := range rawSubjects {
		subjects[name] = model.Subject{
			Name:             name,
			MainTeacher:      rs.MainTeacher,
			Language:         rs.Language,
			CourseActivity:   toActivity(rs.Course),
			SeminarActivity:  toActivity(rs.Seminar),
			LabActivity:      toActivity(rs.Laboratory),
			LabSplitOverride: rs.LabSplitOverride,
		}
	}

	teachers := make(map[string]model.Teacher, len(rawTeachers))
	for name, rt := range rawTeachers {
		caps := make(map[string]model.SubjectCapability, len(rt.Capabilities))
		for subj, c := range rt.Capabilities {
			caps[subj] = model.SubjectCapability{CanSeminar: c.CanSeminar, CanLaborator: c.CanLaborator}
		}
		avail := make(map[string][]model.Interval, len(rt.Availability))
		for day, intervals := range rt.Availability {
			avail[day] = toIntervals(intervals)
		}
		teachers[name] = model.Teacher{
			Name:              name,
			WeeklyMaxHours:    rt.MaxHours,
			PreferredBuilding: rt.PreferredBuildings,
			Languages:         rt.Languages,
			Capabilities:      caps,
			Availability:      avail,
		}
	}

	places := make(map[string]model.Place, len(rawPlaces))
	for name, rp := range rawPlaces {
		rooms := make(map[string]model.Room, len(rp.Rooms))
		for roomName, rr := range rp.Rooms {
			flags := make(map[model.RoomFlag]bool, len(rr.Flags))
			for _, f := range rr.Flags {
				flags[model.RoomFlag(f)] = true
			}
			rooms[roomName] = model.Room{Name: roomName, Capacity: rr.Capacity, Flags: flags}
		}
		opening := make(map[string][]model.Interval, len(rp.OpeningHours))
		for day, intervals := range rp.OpeningHours {
			opening[day] = toIntervals(intervals)
		}
		places[name] = model.Place{Name: name, OpeningHours: opening, Rooms: rooms}
	}

	groups := make(map[string]model.Group, len(rawGroups))
	for id, rg := range rawGroups {
		size := rg.Size
		if size == 0 {
			size = model.DefaultGroupSize
		}
		seminarySplit := rg.SeminarySplit
		if seminarySplit == 0 {
			seminarySplit = 1
		}
		labSplit := rg.LaboratorySplit
		if labSplit == 0 {
			labSplit = 1
		}
		groups[id] = model.Group{
			Id:              id,
			Size:            size,
			Language:        rg.Language,
			Subjects:        rg.Subjects,
			SeminarySplit:   seminarySplit,
			LaboratorySplit: labSplit,
		}
	}

	return catalog.New(subjects, teachers, places, groups), nil
}

func toActivity(r rawActivity) model.Activity {
	return model.Activity{PerWeek: model.Frequency(r.PerWeek), Hours: r.Length}
}

func toIntervals(raw []rawInterval) []model.Interval {
	out := make([]model.Interval, len(raw))
	for i, r := range raw {
		out[i] = model.Interval{Start: r.Start, End: r.End}
	}
	return out
}

// readInto reads "<dir>/<name>.json" (falling back to "<dir>/<name>" with
// no extension) and mapstructure-decodes it into dest.
func readInto(dir, name string, dest any) error {
	path := filepath.Join(dir, name+".json")
	bytes, err := os.ReadFile(path)
	if err != nil {
		path = filepath.Join(dir, name)
		bytes, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("configio: failed to open %s (.json or bare): please make sure the file exists", filepath.Join(dir, name))
		}
	}

	var generic map[string]any
	if err := json.Unmarshal(bytes, &generic); err != nil {
		return fmt.Errorf("configio: failed to parse %s as JSON: %w", path, err)
	}

	if err := mapstructure.Decode(generic, dest); err != nil {
		return fmt.Errorf("configio: failed to decode %s: %w", path, err)
	}
	return nil
}
