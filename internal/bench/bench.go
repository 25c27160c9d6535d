// Package bench times repeated sorts of the same input and verifies their
// results.
package bench

import (
	"fmt"
	"io"
	stdsort "sort"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A PerfTimer times events. It can be reused to collect one measurement per
// round: Record saves the current measurement and begins a new one.
type PerfTimer struct {
	// Vals holds the recorded measurements in nanoseconds.
	Vals  []float64
	cur   time.Duration
	start time.Time
}

// Start begins or resumes the timer.
func (t *PerfTimer) Start() {
	t.start = time.Now()
}

// Stop pauses the timer.
func (t *PerfTimer) Stop() {
	t.cur += time.Since(t.start)
}

// Record stops the timer, saves the current measurement, and resets the
// timer to 0. It returns the saved measurement.
func (t *PerfTimer) Record() time.Duration {
	t.Stop()
	d := t.cur
	t.Vals = append(t.Vals, float64(d))
	t.cur = 0
	return d
}

// Update adds the measurements of other to t.
func (t *PerfTimer) Update(other *PerfTimer) {
	t.Vals = append(t.Vals, other.Vals...)
}

// Summary holds statistics over the measurements of a PerfTimer, in
// seconds.
type Summary struct {
	Rounds              int
	Mean, Std, Min, Max float64
}

// Summary computes statistics over the recorded measurements.
func (t *PerfTimer) Summary() Summary {
	if len(t.Vals) == 0 {
		return Summary{}
	}
	mean, std := stat.MeanStdDev(t.Vals, nil)
	if len(t.Vals) == 1 {
		std = 0
	}
	return Summary{
		Rounds: len(t.Vals),
		Mean:   mean / 1e9,
		Std:    std / 1e9,
		Min:    floats.Min(t.Vals) / 1e9,
		Max:    floats.Max(t.Vals) / 1e9,
	}
}

// SortStats collects the timers of a benchmark by name.
type SortStats map[string]*PerfTimer

// Timer returns the timer with the given name, creating it if necessary.
func (s SortStats) Timer(name string) *PerfTimer {
	t, ok := s[name]
	if !ok {
		t = &PerfTimer{}
		s[name] = t
	}
	return t
}

// ReportStats writes a summary of each timer to w, in order of name.
func ReportStats(stats SortStats, w io.Writer) error {
	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	stdsort.Strings(names)
	for _, name := range names {
		s := stats[name].Summary()
		if _, err := fmt.Fprintf(w, "%v (rounds):\t%v\n%v (mean):\t%.6fs\n%v (std):\t%.6fs\n%v (min):\t%.6fs\n%v (max):\t%.6fs\n",
			name, s.Rounds, name, s.Mean, name, s.Std, name, s.Min, name, s.Max); err != nil {
			return err
		}
	}
	return nil
}

// Run sorts a copy of control rounds times with sortFn, recording each
// sort's duration in the timer named name. It returns the result of the
// last round.
func Run[E any](name string, control []E, rounds int, stats SortStats, sortFn func([]E)) []E {
	timer := stats.Timer(name)
	data := make([]E, len(control))
	for round := 0; round < rounds; round++ {
		copy(data, control)
		timer.Start()
		sortFn(data)
		d := timer.Record()
		logrus.WithFields(logrus.Fields{
			"name":  name,
			"round": round,
			"n":     len(data),
		}).Infof("radix sort time: %v ms", d.Milliseconds())
	}
	return data
}
