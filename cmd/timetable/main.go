// Command timetable builds a weekly schedule from a config directory and
// writes schedule_output_0.json. Usage: timetable [config-dir].
package main

import (
	"context"
	"log"
	"os"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/campusforge/timetable/internal/catalog"
	"github.com/campusforge/timetable/internal/configio"
	"github.com/campusforge/timetable/internal/coordinator"
	"github.com/campusforge/timetable/internal/fabric"
	"github.com/campusforge/timetable/internal/localsolver"
	"github.com/campusforge/timetable/internal/output"
	"github.com/campusforge/timetable/internal/worker"
	"github.com/campusforge/timetable/internal/workload"
	"github.com/campusforge/timetable/pkg/model"
)

const defaultConfigDir = "config"

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.New(os.Stderr, "timetable: ", log.LstdFlags)

	configDir := defaultConfigDir
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	store, err := configio.Load(configDir)
	if err != nil {
		logger.Println(err)
		return 1
	}

	pending := workload.Generate(store)
	logger.Printf("generated %d required sessions", len(pending))

	var scheduled []model.ClassSession
	var ok bool
	if runtime.NumCPU() > 1 {
		scheduled, ok = runDistributed(store, pending, logger)
	} else {
		scheduled, ok = localsolver.Solve(store, pending, 0)
	}

	if !ok {
		logger.Println("no feasible schedule found")
		return 1
	}

	path, err := output.Write(".", scheduled)
	if err != nil {
		logger.Println(err)
		return 1
	}
	logger.Printf("wrote %s (%d sessions)", path, len(scheduled))
	return 0
}

// runDistributed launches one coordinator goroutine and runtime.NumCPU()
// worker goroutines over a shared Fabric. The run is tagged with one opaque
// trace token, logged once at start purely for log correlation, not domain
// identity; the coordinator and worker log lines do not carry it.
func runDistributed(store *catalog.Store, pending []model.ClassSession, logger *log.Logger) ([]model.ClassSession, bool) {
	workerCount := runtime.NumCPU()
	fab := fabric.New(workerCount)

	traceToken := uuid.New().String()
	logger.Printf("dispatch %s: %d workers", traceToken, workerCount)

	group, _ := errgroup.WithContext(context.Background())

	var result coordinator.Result
	group.Go(func() error {
		result = coordinator.Run(fab, pending, workerCount, logger)
		return nil
	})
	for rank := 1; rank <= workerCount; rank++ {
		rank := rank
		group.Go(func() error {
			worker.Run(fab, store, rank, logger)
			return nil
		})
	}

	_ = group.Wait()
	if result.Failed {
		return nil, false
	}
	return result.Scheduled, true
}
