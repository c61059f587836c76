package startup

import (
	"context"
	"fmt"

	"taskrouter/internal/logging"

	"golang.org/x/sync/errgroup"
)

// Task is one unit of initialization work.
type Task struct {
	Name string
	Run  func(context.Context) error
}

// Run executes the given initialization tasks concurrently, recording the
// transition through MarkInitializing and the final Result on the state
// record. The first task error cancels the remaining tasks' context.
func (s *State) Run(ctx context.Context, tasks ...Task) Snapshot {
	runID := s.MarkInitializing()
	log := logging.Get(logging.CategoryBoot)
	log.Info("Initialization run %s started (%d tasks)", runID, len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			if err := task.Run(gctx); err != nil {
				log.Error("Task %q failed: %v", task.Name, err)
				return fmt.Errorf("%s: %w", task.Name, err)
			}
			log.Info("Task %q completed", task.Name)
			return nil
		})
	}

	err := g.Wait()
	s.RecordResult(Result{
		Success: err == nil,
		Err:     err,
		Summary: fmt.Sprintf("%d initialization tasks", len(tasks)),
	})

	snap := s.Snapshot()
	log.Info("Initialization run %s finished: status=%s", runID, snap.Status)
	return snap
}
