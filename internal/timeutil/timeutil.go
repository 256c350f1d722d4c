// Package timeutil parses "HH:MM" wall-clock strings and tests half-open
// interval overlap.
package timeutil

import (
	"fmt"
	"strconv"
)

// ToMinutes parses "HH:MM" and returns minutes since 00:00. It fails unless
// the string is exactly five characters with a colon at index 2.
func ToMinutes(hhmm string) (int, error) {
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, fmt.Errorf("timeutil: %q is not a valid HH:MM time", hhmm)
	}
	hours, err := strconv.Atoi(hhmm[0:2])
	if err != nil {
		return 0, fmt.Errorf("timeutil: %q has a non-numeric hour: %w", hhmm, err)
	}
	minutes, err := strconv.Atoi(hhmm[3:5])
	if err != nil {
		return 0, fmt.Errorf("timeutil: %q has a non-numeric minute: %w", hhmm, err)
	}
	return hours*60 + minutes, nil
}

// FromMinutes formats minutes since 00:00 back into "HH:MM".
func FromMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlap reports whether half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Touching intervals (aEnd == bStart, say) do not.
func Overlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// Contains reports whether [start, end) fits entirely inside
// [containerStart, containerEnd].
func Contains(containerStart, containerEnd, start, end int) bool {
	return containerStart <= start && end <= containerEnd
}
