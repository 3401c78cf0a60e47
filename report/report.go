// Package report renders generation results as plain text.
//
// Verbosity is a field of the Printer, chosen by the caller, never global
// state. Write errors are sticky: after the first failure every later call
// is a no-op and Err returns that failure.
package report

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/primes/measure"
	"github.com/katalvlaran/primes/sieve"
)

// Printer writes human-readable result lines to w.
type Printer struct {
	w       io.Writer
	verbose bool
	err     error
}

// New returns a Printer. verbose makes Found dump the whole sequence.
func New(w io.Writer, verbose bool) *Printer {
	return &Printer{w: w, verbose: verbose}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = errors.Wrap(err, "report: write")
	}
}

// Header announces the range and the algorithm about to run.
func (p *Printer) Header(start, end int, alg sieve.Algorithm) {
	p.printf("Finding all primes between %d and %d, using %s algorithm...\n", start, end, alg.Description())
}

// Timing prints one measurement.
func (p *Printer) Timing(m measure.Measurement) {
	p.printf("%s\n", m)
}

// Found prints the count and, when verbose, the sequence itself.
func (p *Printer) Found(primes []int) {
	p.printf("Found %d primes\n", len(primes))
	if p.verbose {
		p.printf("%v\n", primes)
	}
}

// Nth prints the prime selected by position.
func (p *Printer) Nth(prime int) {
	p.printf("%d\n", prime)
}

// Comparison prints one line per run, then whether the runs agree. Diffs
// are shown only when verbose.
func (p *Printer) Comparison(c *measure.Comparison) {
	p.printf("Comparing %d algorithms between %d and %d...\n", len(c.Runs), c.Start, c.End)
	for _, run := range c.Runs {
		if run.Err != nil {
			p.printf("%-22s failed: %v\n", run.Algorithm.Description(), run.Err)

			continue
		}
		p.printf("%-22s %8d primes %10.3f seconds\n", run.Algorithm.Description(), len(run.Primes), run.Elapsed.Seconds())
	}

	mm := c.Mismatches()
	if len(mm) == 0 && c.Err() == nil {
		p.printf("All %d algorithms agree: %d primes\n", len(c.Runs), c.Count())
		if p.verbose && len(c.Runs) > 0 {
			p.printf("%v\n", c.Runs[0].Primes)
		}

		return
	}
	for _, m := range mm {
		p.printf("MISMATCH %s vs %s\n", m.Algorithm, m.Reference)
		if p.verbose {
			p.printf("%s\n", m.Diff)
		}
	}
}
