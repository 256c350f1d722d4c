// Package coordinator implements the master side of the distributed
// dispatch protocol. It owns pending[] and scheduled[] exclusively and is
// the only writer of either.
package coordinator

import (
	"log"
	"math/rand"

	"github.com/campusforge/timetable/internal/fabric"
	"github.com/campusforge/timetable/internal/wire"
	"github.com/campusforge/timetable/pkg/model"
)

// shuffleSeed is a fixed constant so pending[] dispatch order is
// reproducible per catalog across runs.
const shuffleSeed = 1

// Result is the coordinator's outcome: either the full grown schedule on
// success, or Failed set to true. It does not record which worker failed;
// that is only written to the log.
type Result struct {
	Scheduled []model.ClassSession
	Failed    bool
}

// Run drives the coordinator loop against fab until either every pending
// session has been accepted into scheduled[] or a worker reports failure.
// workerCount is the number of live worker ranks 1..workerCount.
func Run(fab *fabric.Fabric, pending []model.ClassSession, workerCount int, logger *log.Logger) Result {
	shuffled := shuffle(pending, shuffleSeed)

	scheduled := make([]model.ClassSession, 0, len(shuffled))
	nextIdx := 0
	inFlight := 0
	completed := 0
	total := len(shuffled)
	live := workerCount

	for completed < total {
		if env, ok := fab.ProbeWorkResult(); ok {
			success := env.Body[0] == 1
			inFlight--
			if !success {
				logger.Printf("coordinator: worker %d reported failure, terminating", env.From)
				broadcastTerminate(fab, live)
				return Result{Failed: true}
			}
			session, err := wire.Decode(env.Body[1:])
			if err != nil {
				logger.Printf("coordinator: undecodable result from worker %d: %v", env.From, err)
				broadcastTerminate(fab, live)
				return Result{Failed: true}
			}
			scheduled = append(scheduled, session)
			completed++
			logger.Printf("coordinator: accepted session %d/%d from worker %d", completed, total, env.From)
			continue
		}

		req := fab.RecvWorkRequest()

		switch {
		case nextIdx < len(shuffled):
			task := shuffled[nextIdx]
			nextIdx++
			inFlight++
			fab.SendAssign(req.From, wire.EncodeBatch(scheduled, task))
		case inFlight > 0:
			fab.SendAssign(req.From, wire.EncodeSentinel(wire.SentinelWait))
		default:
			fab.SendAssign(req.From, wire.EncodeSentinel(wire.SentinelTerminate))
			live--
		}
	}

	broadcastTerminate(fab, live)
	return Result{Scheduled: scheduled}
}

func broadcastTerminate(fab *fabric.Fabric, live int) {
	for i := 0; i < live; i++ {
		req := fab.RecvWorkRequest()
		fab.SendAssign(req.From, wire.EncodeSentinel(wire.SentinelTerminate))
	}
}

// shuffle returns a reproducibly permuted copy of sessions, never mutating
// the input (pending[] is treated as the workload generator's canonical
// order until the coordinator commits to a dispatch order).
func shuffle(sessions []model.ClassSession, seed int64) []model.ClassSession {
	out := make([]model.ClassSession, len(sessions))
	copy(out, sessions)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
