// Package worker implements the request/assign/result loop run from a
// worker rank's point of view.
package worker

import (
	"log"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/internal/fabric"
	"github.com/campusforge/timetable/internal/placer"
	"github.com/campusforge/timetable/internal/wire"
)

// Run drives rank's worker loop against fab until the coordinator replies
// with the terminate sentinel. store is read-only and shared by reference
// with every other rank.
func Run(fab *fabric.Fabric, store *catalog.Store, rank int, logger *log.Logger) {
	for {
		fab.SendWorkRequest(rank)
		reply := fab.RecvAssign(rank)

		numScheduled, err := wire.PeekNumScheduled(reply.Body)
		if err != nil {
			logger.Printf("worker %d: undecodable assignment: %v", rank, err)
			return
		}

		switch numScheduled {
		case wire.SentinelTerminate:
			return
		case wire.SentinelWait:
			continue
		}

		snapshot, task, err := wire.DecodeBatch(reply.Body)
		if err != nil {
			logger.Printf("worker %d: undecodable dispatch: %v", rank, err)
			return
		}

		placed, err := placer.TryPlace(store, &task, snapshot)
		if err != nil {
			logger.Printf("worker %d: %v", rank, err)
			fab.SendWorkResult(rank, false, nil)
			continue
		}
		if !placed {
			fab.SendWorkResult(rank, false, nil)
			continue
		}

		fab.SendWorkResult(rank, true, wire.Encode(task))
	}
}
