// SPDX-License-Identifier: MIT

package report

import (
	"sync"
	"time"

	"github.com/katalvlaran/parlab/matrix"
)

// Kind classifies a Record for presentation.
type Kind int

const (
	// KindInfo marks informational records (inputs, progress).
	KindInfo Kind = iota
	// KindResult marks a computed formula result.
	KindResult
	// KindError marks a failure or an alert (e.g. elapsed time).
	KindError
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindResult:
		return "result"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Record is one presentable event. Only the fields relevant to the event
// are set; a record with neither Matrix, Scalar nor Err prints Message.
type Record struct {
	Kind    Kind
	Name    string        // variable or formula name, may be empty
	Matrix  *matrix.Dense // matrix payload, optional
	Scalar  *float64      // scalar payload, optional
	Message string        // free text, optional
	Elapsed time.Duration // timing payload, used when > 0
	Err     error         // failure payload, optional
}

// Reporter consumes records. Implementations must be safe for concurrent use.
type Reporter interface {
	Report(r Record)
}

// Compile-time assertions.
var (
	_ Reporter = Nop{}
	_ Reporter = (*Recorder)(nil)
	_ Reporter = (*Console)(nil)
)

// Nop discards every record.
type Nop struct{}

// Report implements Reporter.
func (Nop) Report(Record) {}

// Recorder keeps every record in arrival order.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

// Report implements Reporter.
func (r *Recorder) Report(rec Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.mu.Unlock()
}

// Records returns a copy of the records received so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)

	return out
}

// ByName returns the records whose Name equals name, in arrival order.
func (r *Recorder) ByName(name string) []Record {
	var out []Record
	for _, rec := range r.Records() {
		if rec.Name == name {
			out = append(out, rec)
		}
	}

	return out
}
