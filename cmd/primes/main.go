// Command primes lists the primes of a range with one of five sieve
// algorithms, or runs them all and checks that they agree.
//
//	primes --start 2 --end 100 --algorithm eratosthenes --verbose
//	primes --nth 5
//	primes --compare --end 1000000
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/primes/config"
	"github.com/katalvlaran/primes/measure"
	"github.com/katalvlaran/primes/report"
	"github.com/katalvlaran/primes/sieve"
)

// version is reported by --version.
const version = "0.3"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "primes:", err)

		return exitUsage
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "primes version %s\n", version)

		return exitOK
	}

	lvl, _ := cfg.Level() // validated by config.Load
	log := newLogger(stderr, lvl)
	defer func() { _ = log.Sync() }()

	alg, known := cfg.ResolvedAlgorithm()
	if !known {
		log.Warnw("unknown algorithm, using default", "requested", cfg.Algorithm, "algorithm", alg.String())
	}
	end := cfg.EffectiveEnd()
	log.Debugw("resolved configuration",
		"start", cfg.Start,
		"end", end,
		"nth", cfg.Nth,
		"algorithm", alg.String(),
		"verbose", cfg.Verbose,
		"compare", cfg.Compare,
	)

	out := report.New(stdout, cfg.Verbose)
	if cfg.Compare {
		return runCompare(cfg, end, out, log)
	}

	out.Header(cfg.Start, end, alg)
	var primes []int
	m, err := measure.Time(alg.Description(), func() (err error) {
		primes, err = alg.Generate(cfg.Start, end)

		return err
	})
	out.Timing(m)
	if err != nil {
		log.Errorw("generation failed", "error", err)

		return exitFailure
	}
	out.Found(primes)

	if cfg.Nth != 0 {
		p, err := sieve.Nth(primes, cfg.Nth)
		if err != nil {
			log.Errorw("nth prime unavailable", "nth", cfg.Nth, "error", err)

			return exitFailure
		}
		out.Nth(p)
	}

	if err := out.Err(); err != nil {
		log.Errorw("write output", "error", err)

		return exitFailure
	}

	return exitOK
}

// runCompare runs every algorithm over [cfg.Start, end] and reports agreement.
func runCompare(cfg *config.Config, end int, out *report.Printer, log *zap.SugaredLogger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmp, err := measure.Compare(ctx, cfg.Start, end,
		measure.WithWorkers(cfg.Workers),
		measure.WithLogger(log),
	)
	if err != nil {
		log.Errorw("comparison failed", "error", err)

		return exitFailure
	}
	out.Comparison(cmp)
	if err := cmp.Err(); err != nil {
		log.Errorw("algorithms disagree", "error", err)

		return exitFailure
	}
	if err := out.Err(); err != nil {
		log.Errorw("write output", "error", err)

		return exitFailure
	}

	return exitOK
}

// newLogger builds a console logger on w at lvl.
func newLogger(w io.Writer, lvl zapcore.Level) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zap.New(core).Named("primes").Sugar()
}
