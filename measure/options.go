package measure

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/primes/sieve"
)

// Option customizes Compare. Option constructors panic on meaningless
// values; Compare itself never panics.
type Option func(*options)

type options struct {
	workers    int
	log        *zap.SugaredLogger
	algorithms []sieve.Algorithm
}

// defaultOptions runs every algorithm, one worker each, without logging.
func defaultOptions() options {
	algs := sieve.Algorithms()

	return options{
		workers:    len(algs),
		log:        zap.NewNop().Sugar(),
		algorithms: algs,
	}
}

// WithWorkers bounds the pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("measure: WithWorkers(n < 1)")
	}

	return func(o *options) {
		o.workers = n
	}
}

// WithLogger sets the logger used for per-run debug lines. Panics on nil.
func WithLogger(log *zap.SugaredLogger) Option {
	if log == nil {
		panic("measure: WithLogger(nil)")
	}

	return func(o *options) {
		o.log = log
	}
}

// WithAlgorithms restricts the comparison to algs, in the given order.
// Panics on an invalid Algorithm value. An empty list makes Compare
// return ErrNoAlgorithms.
func WithAlgorithms(algs ...sieve.Algorithm) Option {
	for _, a := range algs {
		if !a.Valid() {
			panic("measure: WithAlgorithms(invalid algorithm)")
		}
	}
	picked := append([]sieve.Algorithm(nil), algs...)

	return func(o *options) {
		o.algorithms = picked
	}
}
