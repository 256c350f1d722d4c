// Package localsolver implements the single-process fallback: a shuffled
// sequential pass over the placer against a locally growing scheduled[] —
// the serial reference semantics the distributed protocol must agree with
// on successful schedules.
package localsolver

import (
	"math/rand"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/internal/placer"
	"github.com/campusforge/timetable/pkg/model"
)

// Solve shuffles pending with a seed derived from rank, then places each
// session in turn against the growing scheduled[]. It returns the fully
// placed schedule and true on complete success, or nil and false on the
// first unplaceable session.
func Solve(store *catalog.Store, pending []model.ClassSession, rank int) ([]model.ClassSession, bool) {
	order := shuffle(pending, seedForRank(rank))

	scheduled := make([]model.ClassSession, 0, len(order))
	for i := range order {
		candidate := order[i]
		ok, err := placer.TryPlace(store, &candidate, scheduled)
		if err != nil || !ok {
			return nil, false
		}
		scheduled = append(scheduled, candidate)
	}

	return scheduled, true
}

// seedForRank derives a deterministic shuffle seed from rank, so a
// single-process run (rank 0) and repeated fallback invocations are
// individually reproducible without colliding with each other's order.
func seedForRank(rank int) int64 {
	return int64(rank)*1_000_003 + 7
}

func shuffle(sessions []model.ClassSession, seed int64) []model.ClassSession {
	out := make([]model.ClassSession, len(sessions))
	copy(out, sessions)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
