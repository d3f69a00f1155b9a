// Package battery runs a set of independently-constructed hypothesis tests
// concurrently. Test construction is pure over its own inputs, so cases can
// be fitted in parallel without any locking discipline.
package battery

import (
	"context"

	"golang.org/x/sync/errgroup"

	"hypotest/domain/core"
	"hypotest/domain/stats"
	"hypotest/internal"
)

// Test is any fitted hypothesis test exposing its named-field summary.
type Test interface {
	Summary() stats.Summary
}

// Case is one deferred test construction. Fit runs when the battery does,
// so a failing construction surfaces as the battery error rather than a
// panic at case-definition time.
type Case struct {
	Name string
	Fit  func() (Test, error)
}

// Result pairs a case name with its fitted summary, in case order.
type Result struct {
	Name    string
	Summary stats.Summary
}

// RunResult is one complete battery run.
type RunResult struct {
	ID        core.RunID
	StartedAt core.Timestamp
	Results   []Result
}

// Runner fits batteries of test cases.
type Runner struct {
	log *internal.Logger
}

// NewRunner creates a battery runner with the given logger.
func NewRunner(logger *internal.Logger) *Runner {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &Runner{log: logger}
}

// Run fits every case concurrently and returns the summaries in case order.
// The first construction error cancels the run and is returned.
func (r *Runner) Run(ctx context.Context, cases []Case) (*RunResult, error) {
	run := &RunResult{
		ID:        core.RunID(core.NewID()),
		StartedAt: core.Now(),
		Results:   make([]Result, len(cases)),
	}

	r.log.Info("battery %s: fitting %d cases", run.ID, len(cases))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fitted, err := c.Fit()
			if err != nil {
				r.log.Error("battery %s: case %q failed: %v", run.ID, c.Name, err)
				return err
			}

			run.Results[i] = Result{Name: c.Name, Summary: fitted.Summary()}
			r.log.Debug("battery %s: case %q fitted", run.ID, c.Name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return run, nil
}
