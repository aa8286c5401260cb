package pixsort

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/glitchfx/pixsort/internal/parallel"
)

// Phase labels passed to progress sinks.
const (
	labelColumns = "sorting columns"
	labelRows    = "sorting rows"
)

// Sort applies the pixel-sorting filter to src and returns a new pixmap
// of identical dimensions. RGB values are permuted only within runs
// detected by cfg's mode and thresholds; alpha is copied through from
// src untouched. src itself is never modified.
//
// Two passes run over the same working buffer: columns first, then rows,
// so the row pass sees column-sorted data. Sort is deterministic: the
// same (src, cfg) always yields a byte-identical result, regardless of
// progress sinks or WithWorkers parallelism.
//
// Sort returns an error wrapping ErrInvalidDimensions or ErrBufferSize
// for malformed input (checked before any pixel is touched), or one
// wrapping ErrCanceled when the WithContext context is canceled
// mid-sort. On error no pixmap is returned.
func Sort(src *Pixmap, cfg Config, opts ...Option) (*Pixmap, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}

	o := defaultSortOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, cont := cfg.predicates()
	e := &engine{
		width:    src.width,
		height:   src.height,
		packed:   make([]int32, src.width*src.height),
		start:    start,
		cont:     cont,
		ctx:      o.ctx,
		workers:  o.workers,
		progress: newProgressTracker(o.progress, (src.width-1)+(src.height-1)),
	}

	for i := range e.packed {
		d := src.data[i*4:]
		e.packed[i] = Pack(d[0], d[1], d[2])
	}

	began := time.Now()
	if err := e.runPhase(labelColumns, e.width-1, e.sortColumn); err != nil {
		return nil, err
	}
	if err := e.runPhase(labelRows, e.height-1, e.sortRow); err != nil {
		return nil, err
	}
	e.progress.finish()

	Logger().Debug("pixel sort finished",
		"mode", cfg.Mode.String(),
		"width", e.width,
		"height", e.height,
		"workers", e.workers,
		"elapsed", time.Since(began))

	out := &Pixmap{
		width:  src.width,
		height: src.height,
		data:   make([]uint8, len(src.data)),
	}
	for i, p := range e.packed {
		r, g, b := Unpack(p)
		j := i * 4
		out.data[j] = r
		out.data[j+1] = g
		out.data[j+2] = b
		out.data[j+3] = src.data[j+3]
	}
	return out, nil
}

// engine holds the working state of one Sort call.
type engine struct {
	width  int
	height int
	packed []int32

	start predicate
	cont  predicate

	ctx      context.Context
	workers  int
	progress *progressTracker
}

// runPhase processes the scanlines of one phase, sequentially or across
// workers. Scanlines within a phase touch disjoint pixels, so parallel
// execution yields the same buffer as sequential.
func (e *engine) runPhase(label string, lines int, sortLine func(i int)) error {
	if lines > 0 {
		if e.workers == 1 {
			for i := range lines {
				if err := e.checkCanceled(); err != nil {
					return err
				}
				sortLine(i)
				e.progress.step(label)
			}
		} else {
			parallel.For(e.workers, lines, func(i int) {
				if e.ctx.Err() != nil {
					return
				}
				sortLine(i)
				e.progress.step(label)
			})
		}
	}
	return e.checkCanceled()
}

func (e *engine) checkCanceled() error {
	if err := e.ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	return nil
}

// sortColumn sorts the runs of column x. The column phase covers columns
// [0, width-1): the last column is never scanned.
func (e *engine) sortColumn(x int) {
	e.scanLine(x, e.width, e.height)
}

// sortRow sorts the runs of row y. The row phase covers rows
// [0, height-1): the last row is never scanned.
func (e *engine) sortRow(y int) {
	e.scanLine(y*e.width, 1, e.width)
}

// scanLine finds runs along one scanline and sorts each one in place.
// base is the packed index of the line's first pixel, stride the
// distance between neighbors (1 for rows, width for columns), n the
// line length.
//
// The scan alternates between seeking a run start (first pixel passing
// the start predicate) and extending the run from start+1 while pixels
// keep passing the continuation predicate. The start pixel is always
// part of its run. A run never starts on the line's final pixel, and
// only runs longer than one pixel are sorted.
func (e *engine) scanLine(base, stride, n int) {
	pos := 0
	for pos < n-1 {
		for pos < n && !e.start(e.packed[base+pos*stride]) {
			pos++
		}
		if pos >= n {
			return
		}
		first := pos
		last := first
		for last+1 < n && e.cont(e.packed[base+(last+1)*stride]) {
			last++
		}
		if last > first {
			e.sortRun(base, stride, first, last)
		}
		pos = last + 1
	}
}

// sortRun sorts packed values at line positions [first, last] ascending.
// Row runs are contiguous and sort in place; column runs gather through
// the stride first.
func (e *engine) sortRun(base, stride, first, last int) {
	if stride == 1 {
		slices.Sort(e.packed[base+first : base+last+1])
		return
	}
	run := make([]int32, last-first+1)
	for i := range run {
		run[i] = e.packed[base+(first+i)*stride]
	}
	slices.Sort(run)
	for i, p := range run {
		e.packed[base+(first+i)*stride] = p
	}
}
