// Package output shapes scheduled[] into JSON placed-session records and
// writes schedule_output_0.json, via a collect-then-shape-then-marshal
// split.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/campusforge/timetable/pkg/model"
)

const fileName = "schedule_output_0.json"

// Record is one placed session shaped for the output contract.
type Record struct {
	Day       string `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Type      string `json:"type"`
	Group     string `json:"group"`
	SubGroup  string `json:"subgroup"`
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Room      string `json:"room"`
	Frequency string `json:"frequency"`
}

// Shape converts scheduled sessions into their output record form.
func Shape(scheduled []model.ClassSession) []Record {
	records := make([]Record, 0, len(scheduled))
	for _, s := range scheduled {
		records = append(records, Record{
			Day:       s.Day,
			Start:     s.StartTime,
			End:       s.EndTime,
			Type:      s.Type.String(),
			Group:     s.GroupId,
			SubGroup:  s.SubGroup,
			Subject:   s.SubjectName,
			Teacher:   s.TeacherName,
			Room:      s.RoomName,
			Frequency: s.WeekMask.Frequency(),
		})
	}
	return records
}

// Write shapes scheduled and writes it as a JSON array to dir/schedule_output_0.json.
func Write(dir string, scheduled []model.ClassSession) (string, error) {
	records := Shape(scheduled)

	encoded, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("output: marshal: %w", err)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("output: write %s: %w", path, err)
	}

	return path, nil
}
