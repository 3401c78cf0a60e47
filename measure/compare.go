package measure

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/katalvlaran/primes/sieve"
)

// Run is the outcome of one algorithm over the compared range.
type Run struct {
	Algorithm sieve.Algorithm
	Primes    []int
	Elapsed   time.Duration
	Err       error
}

// Measurement labels the run with the algorithm description.
func (r Run) Measurement() Measurement {
	return Measurement{Label: r.Algorithm.Description(), Elapsed: r.Elapsed}
}

// Mismatch records a run whose sequence differs from the reference run.
type Mismatch struct {
	Reference sieve.Algorithm
	Algorithm sieve.Algorithm
	// Diff is a cmp.Diff of reference (-) against algorithm (+).
	Diff string
}

// Comparison holds one Run per algorithm, in the requested order.
type Comparison struct {
	Start, End int
	Runs       []Run
}

// Mismatches compares every successful run with the first successful one.
// No algorithm is trusted over another: the first run is only the point of
// comparison, and any disagreement at all is reported.
func (c *Comparison) Mismatches() []Mismatch {
	var (
		ref   *Run
		found []Mismatch
	)
	for i := range c.Runs {
		run := &c.Runs[i]
		if run.Err != nil {
			continue
		}
		if ref == nil {
			ref = run

			continue
		}
		if diff := cmp.Diff(ref.Primes, run.Primes); diff != "" {
			found = append(found, Mismatch{Reference: ref.Algorithm, Algorithm: run.Algorithm, Diff: diff})
		}
	}

	return found
}

// Agree reports whether every run succeeded with the same sequence.
func (c *Comparison) Agree() bool {
	return c.Err() == nil
}

// Err returns the first run error, or an error wrapping ErrMismatch when
// runs disagree, or nil.
func (c *Comparison) Err() error {
	for _, run := range c.Runs {
		if run.Err != nil {
			return errors.Wrapf(run.Err, "measure: %s", run.Algorithm)
		}
	}
	if mm := c.Mismatches(); len(mm) > 0 {
		names := make([]string, len(mm))
		for i, m := range mm {
			names[i] = m.Algorithm.String()
		}

		return errors.Wrapf(ErrMismatch, "on [%d,%d] vs %s: %v", c.Start, c.End, mm[0].Reference, names)
	}

	return nil
}

// Count returns the number of primes found, taken from the first
// successful run, or -1 when every run failed.
func (c *Comparison) Count() int {
	for _, run := range c.Runs {
		if run.Err == nil {
			return len(run.Primes)
		}
	}

	return -1
}

// Compare runs the selected algorithms over [start, end] on a bounded
// worker pool and collects one timed Run each.
//
// The range is validated once up front, so a negative bound returns
// ErrInvalidRange without starting any run. ctx is checked before each
// submission; on cancellation Compare waits for runs already submitted and
// returns ctx's error.
func Compare(ctx context.Context, start, end int, opts ...Option) (*Comparison, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := sieve.ValidateRange(start, end); err != nil {
		return nil, err
	}
	if len(o.algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}

	pool, err := ants.NewPool(o.workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, errors.Wrap(err, "measure: create worker pool")
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		runs     = make([]Run, len(o.algorithms))
		finished = atomic.NewInt32(0)
		total    = len(o.algorithms)
	)
	for i, alg := range o.algorithms {
		if err := ctx.Err(); err != nil {
			wg.Wait()

			return nil, errors.Wrap(err, "measure: compare canceled")
		}

		i, alg := i, alg
		wg.Add(1)
		task := func() {
			defer wg.Done()

			var primes []int
			m, err := Time(alg.Description(), func() (err error) {
				primes, err = alg.Generate(start, end)

				return err
			})
			runs[i] = Run{Algorithm: alg, Primes: primes, Elapsed: m.Elapsed, Err: err}

			o.log.Debugw("run finished",
				"algorithm", alg.String(),
				"elapsed", m.Elapsed,
				"primes", len(primes),
				"progress", fmt.Sprintf("%d/%d", finished.Inc(), total),
			)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()

			return nil, errors.Wrapf(err, "measure: submit %s", alg)
		}
	}
	wg.Wait()

	return &Comparison{Start: start, End: end, Runs: runs}, nil
}
