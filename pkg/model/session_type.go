package model

// SessionType identifies the kind of class meeting. The byte values match
// the one-byte encoding the wire codec writes.
type SessionType byte

const (
	Course SessionType = iota
	Seminary
	Laboratory
)

func (t SessionType) String() string {
	switch t {
	case Course:
		return "Course"
	case Seminary:
		return "Seminar"
	case Laboratory:
		return "Laboratory"
	default:
		return "Unknown"
	}
}

// ForbiddenFlag is the RoomFlag that rules a room out for this session type.
func (t SessionType) ForbiddenFlag() RoomFlag {
	switch t {
	case Course:
		return NoCourse
	case Seminary:
		return NoSeminar
	case Laboratory:
		return NoLaboratory
	default:
		return ""
	}
}
