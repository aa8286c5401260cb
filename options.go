package pixsort

import "context"

// Option configures a single Sort call.
// Use functional options to attach a progress sink, a cancellation
// context, or scanline parallelism.
//
// Example:
//
//	out, err := pixsort.Sort(pm, cfg,
//	    pixsort.WithContext(ctx),
//	    pixsort.WithProgress(func(pct int, label string) {
//	        fmt.Printf("\r%3d%% %s", pct, label)
//	    }))
type Option func(*sortOptions)

// sortOptions holds optional configuration for a Sort call.
type sortOptions struct {
	progress ProgressFunc
	ctx      context.Context
	workers  int
}

// defaultSortOptions returns the default sort options: no progress sink,
// no cancellation, sequential scanline processing.
func defaultSortOptions() sortOptions {
	return sortOptions{
		ctx:     context.Background(),
		workers: 1,
	}
}

// WithProgress attaches a progress sink to the sort. The sink receives
// a monotonically non-decreasing percentage in [0,100] and a short phase
// label roughly every 10 scanlines, with a guaranteed final call at 100%.
// Supplying a sink never changes the sorted output.
func WithProgress(fn ProgressFunc) Option {
	return func(o *sortOptions) {
		o.progress = fn
	}
}

// WithContext attaches a cancellation context to the sort. The context
// is polled at scanline granularity; once it is canceled, Sort returns
// an error wrapping ErrCanceled and no pixmap. A partially sorted buffer
// is never returned.
func WithContext(ctx context.Context) Option {
	return func(o *sortOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines used to process scanlines
// within a phase. Scanlines are independent, so the output is
// byte-identical to the sequential result. n <= 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *sortOptions) {
		o.workers = n
	}
}
