// Package report renders a validation run's accumulated results as text or
// JSON.
package report

import (
	"io"
	"time"

	"github.com/rdapconformance/rdapcv/internal/results"
)

// Report is the outcome of one validation run: every Result the engine's
// schema pass and profile checks appended to its accumulator, plus the
// bookkeeping needed to correlate a run across log lines and CI output.
type Report struct {
	RunID     string
	QueryURI  string
	StartTime time.Time
	EndTime   time.Time
	Results   []results.Result
}

// Passed reports whether the run produced no findings at all.
func (r *Report) Passed() bool { return len(r.Results) == 0 }

// Reporter renders a Report to w in some output format.
type Reporter interface {
	Write(w io.Writer, r *Report) error
}
