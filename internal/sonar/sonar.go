// Package sonar counts depth increases in a sonar sweep report.
//
// A report is one depth measurement per line. Trend counts measurements
// deeper than the one before; WindowTrend counts sliding-window sums larger
// than the previous sum.
package sonar

import (
	"io"

	"github.com/boshu2/aoc2021/internal/lines"
)

// DefaultWidth is the number of measurements summed by a sliding window.
const DefaultWidth = 3

// Trend counts values strictly greater than their predecessor.
type Trend struct {
	prev  int
	seen  bool
	count int
}

// Push records the next measurement. The first measurement has nothing to
// compare against and is never counted.
func (t *Trend) Push(v int) {
	if t.seen && v > t.prev {
		t.count++
	}
	t.prev = v
	t.seen = true
}

// Count returns the number of increases seen so far.
func (t *Trend) Count() int { return t.count }

// WindowTrend counts increases of a width-wide sliding sum.
//
// Consecutive windows share width-1 measurements, so sum(a[i+1..i+width])
// exceeds sum(a[i..i+width-1]) exactly when a[i+width] > a[i]. WindowTrend
// buffers width+1 values and only compares the two ends.
type WindowTrend struct {
	window *Window
	count  int
}

// NewWindowTrend creates a counter for windows of width measurements.
func NewWindowTrend(width int) (*WindowTrend, error) {
	if width < 1 {
		return nil, ErrInvalidWidth
	}
	return &WindowTrend{window: NewWindow(width + 1)}, nil
}

// Push records the next measurement.
func (wt *WindowTrend) Push(v int) {
	wt.window.Push(v)
	if !wt.window.Full() {
		return
	}
	newest, _ := wt.window.Newest()
	oldest, _ := wt.window.Oldest()
	if newest > oldest {
		wt.count++
	}
	wt.window.Pop()
}

// Count returns the number of increases seen so far.
func (wt *WindowTrend) Count() int { return wt.count }

// CountIncreases reads one measurement per line from r and counts the
// measurements larger than the previous one.
func CountIncreases(r io.Reader) (int, error) {
	var t Trend
	_, err := lines.ScanInts(r, func(v int) error {
		t.Push(v)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return t.Count(), nil
}

// CountWindowIncreases reads one measurement per line from r and counts the
// width-wide sums larger than the previous sum.
func CountWindowIncreases(r io.Reader, width int) (int, error) {
	wt, err := NewWindowTrend(width)
	if err != nil {
		return 0, err
	}
	_, err = lines.ScanInts(r, func(v int) error {
		wt.Push(v)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return wt.Count(), nil
}
