// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Defaults for Console.
const (
	// DefaultFullRows and DefaultFullCols bound the matrices printed in full
	// when full output is off; larger ones print as "Matrix RxC".
	DefaultFullRows = 10
	DefaultFullCols = 10
)

// ANSI colors per kind: inputs blue, results green, alerts red.
const (
	colorInfo   = lipgloss.Color("4")
	colorResult = lipgloss.Color("2")
	colorError  = lipgloss.Color("1")
)

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithFullOutput prints every matrix in full regardless of its shape.
func WithFullOutput(full bool) ConsoleOption {
	return func(c *Console) { c.full = full }
}

// WithFullThreshold sets the largest shape printed in full when full
// output is off. Panics on non-positive bounds.
func WithFullThreshold(rows, cols int) ConsoleOption {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("report: WithFullThreshold: bounds must be >= 1, got %dx%d", rows, cols))
	}
	return func(c *Console) { c.maxRows, c.maxCols = rows, cols }
}

// Console writes styled records to an io.Writer.
type Console struct {
	mu      sync.Mutex // one record at a time: style selection + write
	w       io.Writer
	styles  map[Kind]lipgloss.Style
	full    bool
	maxRows int
	maxCols int
}

// NewConsole builds a Console writing to w. Colors are emitted only when w
// is a terminal that supports them.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	r := lipgloss.NewRenderer(w)
	c := &Console{
		w: w,
		styles: map[Kind]lipgloss.Style{
			KindInfo:   r.NewStyle().Foreground(colorInfo),
			KindResult: r.NewStyle().Foreground(colorResult),
			KindError:  r.NewStyle().Foreground(colorError).Bold(true),
		},
		maxRows: DefaultFullRows,
		maxCols: DefaultFullCols,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Report implements Reporter. Write errors are dropped; presentation must
// never fail a computation.
func (c *Console) Report(rec Record) {
	text := c.format(rec)

	c.mu.Lock()
	defer c.mu.Unlock()

	style, ok := c.styles[rec.Kind]
	if !ok {
		style = c.styles[KindInfo]
	}
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		sb.WriteString(style.Render(line))
		sb.WriteByte('\n')
	}
	_, _ = io.WriteString(c.w, sb.String())
}

// format renders the record body without styling.
func (c *Console) format(rec Record) string {
	label := rec.Name
	switch {
	case rec.Err != nil:
		if label == "" {
			return rec.Err.Error()
		}
		return label + ": " + rec.Err.Error()

	case rec.Elapsed > 0:
		if label == "" {
			label = rec.Message
		}
		if label == "" {
			label = "Run time"
		}
		return fmt.Sprintf("%s: %d ms", label, rec.Elapsed.Milliseconds())

	case rec.Matrix != nil:
		if c.full || (rec.Matrix.Rows() <= c.maxRows && rec.Matrix.Cols() <= c.maxCols) {
			return label + " =\n" + rec.Matrix.String()
		}
		return label + " = " + rec.Matrix.Summary()

	case rec.Scalar != nil:
		return label + " = " + strconv.FormatFloat(*rec.Scalar, 'g', -1, 64)

	default:
		if label == "" {
			return rec.Message
		}
		return label + ": " + rec.Message
	}
}
