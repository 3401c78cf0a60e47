// Package measure wraps prime generation with wall-clock timing and runs
// every algorithm side by side to check that they agree.
//
// The sieve package never measures itself. Timing lives here as an explicit
// value: a Timer is started, the call runs, and the Timer is stopped on
// every exit path, yielding one Measurement.
//
// Compare fans the algorithms out over a bounded ants worker pool. Each
// algorithm still sieves the whole range on its own; only independent calls
// run concurrently.
//
//	cmp, err := measure.Compare(ctx, 2, 100000, measure.WithWorkers(3))
//	if err != nil {
//		return err
//	}
//	for _, run := range cmp.Runs {
//		fmt.Println(run.Measurement())
//	}
//	if !cmp.Agree() {
//		fmt.Println(cmp.Mismatches())
//	}
package measure
