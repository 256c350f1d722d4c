// Package wire implements a fixed-field-order, length-prefixed binary
// framing for a single ClassSession, used on every Fabric transfer between
// coordinator and worker.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/campusforge/timetable/pkg/model"
)

// Encode serializes session in a fixed field order: each string as [int32
// length little-endian][raw bytes], the type enum as one byte, week_mask
// as an int32. There is no outer length prefix — the transport layer
// supplies the total byte count.
func Encode(session model.ClassSession) []byte {
	var buf bytes.Buffer
	writeString(&buf, session.SubjectName)
	buf.WriteByte(byte(session.Type))
	writeString(&buf, session.GroupId)
	writeString(&buf, session.SubGroup)
	writeString(&buf, session.TeacherName)
	writeString(&buf, session.BuildingName)
	writeString(&buf, session.RoomName)
	writeString(&buf, session.Day)
	writeString(&buf, session.StartTime)
	writeString(&buf, session.EndTime)
	writeInt32(&buf, int32(session.WeekMask))
	return buf.Bytes()
}

// Decode is Encode's inverse.
func Decode(data []byte) (model.ClassSession, error) {
	r := bytes.NewReader(data)

	subjectName, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: subject_name: %w", err)
	}
	typeByte, err := r.ReadByte()
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: type: %w", err)
	}
	groupId, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: group_id: %w", err)
	}
	subGroup, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: sub_group: %w", err)
	}
	teacherName, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: teacher_name: %w", err)
	}
	buildingName, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: building_name: %w", err)
	}
	roomName, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: room_name: %w", err)
	}
	day, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: day: %w", err)
	}
	startTime, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: start_time: %w", err)
	}
	endTime, err := readString(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: end_time: %w", err)
	}
	weekMask, err := readInt32(r)
	if err != nil {
		return model.ClassSession{}, fmt.Errorf("wire: week_mask: %w", err)
	}

	return model.ClassSession{
		SubjectName:  subjectName,
		Type:         model.SessionType(typeByte),
		GroupId:      groupId,
		SubGroup:     subGroup,
		TeacherName:  teacherName,
		BuildingName: buildingName,
		RoomName:     roomName,
		Day:          day,
		StartTime:    startTime,
		EndTime:      endTime,
		WeekMask:     model.WeekMask(weekMask),
	}, nil
}

func writeString(buf *bytes.Buffer, s string) {
	writeInt32(buf, int32(len(s)))
	buf.WriteString(s)
}

func writeInt32(buf *bytes.Buffer, v int32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	buf.Write(tmp[:])
}

func readInt32(r *bytes.Reader) (int32, error) {
	var tmp [4]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(tmp[:])), nil
}

func readString(r *bytes.Reader) (string, error) {
	length, err := readInt32(r)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", fmt.Errorf("wire: negative string length %d", length)
	}
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}
