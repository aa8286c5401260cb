package pixsort

import "sync"

// ProgressFunc receives sort progress: a percentage in [0,100] and a
// short phase label. Reported percentages never decrease, and the final
// call is always (100, "complete"). A progress sink is purely
// informational; it never affects the sorted output.
type ProgressFunc func(percent int, label string)

// progressStride is how many finished scanlines pass between reports.
const progressStride = 10

// progressTracker turns per-scanline completion events into throttled,
// monotonically non-decreasing percentage reports. All reporting is
// serialized behind one mutex so concurrent scanline workers can share
// a single tracker.
type progressTracker struct {
	fn    ProgressFunc
	total int

	mu   sync.Mutex
	done int
	last int
}

func newProgressTracker(fn ProgressFunc, total int) *progressTracker {
	return &progressTracker{fn: fn, total: total}
}

// step records one finished scanline and reports every progressStride
// lines. Intermediate reports are capped at 99 so that 100 is reserved
// for the final complete call.
func (t *progressTracker) step(label string) {
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.done++
	if t.done%progressStride != 0 && t.done != t.total {
		return
	}
	pct := 99
	if t.total > 0 && t.done < t.total {
		pct = t.done * 100 / t.total
		if pct > 99 {
			pct = 99
		}
	}
	if pct < t.last {
		pct = t.last
	}
	t.last = pct
	t.fn(pct, label)
}

// finish emits the guaranteed final report.
func (t *progressTracker) finish() {
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = 100
	t.fn(100, "complete")
}
