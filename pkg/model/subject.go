package model

// Frequency is a fractional weekly count. A value in (0, 0.501] means the
// session recurs only every other week (biweekly); anything else recurs
// every week. Zero means the activity does not occur for this subject.
type Frequency float64

// IsBiweekly reports whether this frequency resolves to an odd/even
// alternating session rather than a weekly one.
func (f Frequency) IsBiweekly() bool {
	return f > 0 && f <= 0.501
}

// Activity bundles the weekly frequency and session length for one of a
// subject's three possible meeting kinds (course, seminar, laboratory).
type Activity struct {
	PerWeek Frequency
	Hours   int
}

// Subject is an immutable catalog record keyed by Name.
type Subject struct {
	Name            string
	MainTeacher     string
	Language        string
	CourseActivity  Activity
	SeminarActivity Activity
	LabActivity     Activity
	// LabSplitOverride, when positive, overrides the owning Group's
	// LaboratorySplit for this subject's laboratories.
	LabSplitOverride int
}

// activityFor returns the Activity governing the given session type.
func (s Subject) activityFor(t SessionType) Activity {
	switch t {
	case Course:
		return s.CourseActivity
	case Seminary:
		return s.SeminarActivity
	case Laboratory:
		return s.LabActivity
	default:
		return Activity{}
	}
}

// LengthHours returns the catalog session length for the given type, or 0
// if the subject does not offer that type.
func (s Subject) LengthHours(t SessionType) int {
	return s.activityFor(t).Hours
}

// PerWeekFrequency returns the catalog weekly frequency for the given type.
func (s Subject) PerWeekFrequency(t SessionType) Frequency {
	return s.activityFor(t).PerWeek
}

// Valid checks the subject's own invariant: any non-zero frequency must
// carry a non-zero length.
func (s Subject) Valid() bool {
	for _, a := range []Activity{s.CourseActivity, s.SeminarActivity, s.LabActivity} {
		if a.PerWeek > 0 && a.Hours == 0 {
			return false
		}
	}
	return true
}
