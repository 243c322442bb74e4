package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Timer records how long each pipeline step of one file took: reading,
// lexing plus parsing, encoding. A nil *Timer is a no-op.
type Timer struct {
	mu    sync.Mutex
	steps []step
}

type step struct {
	name    string
	started time.Time
	took    time.Duration
	note    string
}

func NewTimer() *Timer { return &Timer{} }

// Begin opens a step and returns the handle End expects.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.mu.Lock()
	t.steps = append(t.steps, step{name: name, started: time.Now()})
	n := len(t.steps) - 1
	t.mu.Unlock()
	return n
}

// End closes step idx with an optional note. Unknown handles are ignored.
func (t *Timer) End(idx int, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if idx >= 0 && idx < len(t.steps) {
		s := &t.steps[idx]
		s.took, s.note = time.Since(s.started), note
	}
}

func (t *Timer) Summary() string { return t.Report().Summary() }

// PhaseReport is one step of a Report.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report is a snapshot of a Timer, safe to store and encode.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	var r Report
	if t == nil {
		return r
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range t.steps {
		ms := millis(s.took)
		r.Phases = append(r.Phases, PhaseReport{Name: s.name, DurationMS: ms, Note: s.note})
		r.TotalMS += ms
	}
	return r
}

// Summary lays the phases out one per line followed by the total.
func (r Report) Summary() string {
	var b strings.Builder
	b.WriteString("timings:\n")
	row := func(name string, ms float64, note string) {
		fmt.Fprintf(&b, "  %-20s %7.2f ms", name, ms)
		if note != "" {
			fmt.Fprintf(&b, "  // %s", note)
		}
		b.WriteByte('\n')
	}
	for _, p := range r.Phases {
		row(p.Name, p.DurationMS, p.Note)
	}
	row("total", r.TotalMS, "")
	return b.String()
}

func millis(d time.Duration) float64 {
	return d.Seconds() * 1000
}
