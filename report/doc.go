// Package report turns evaluation events into structured records and
// presents them.
//
// The numeric packages never print. They emit Record values tagged with a
// Kind (info, result, error) to a Reporter. Presentation state lives only in
// the reporter: Console holds one mutex around "pick the style for the
// record's kind, write the record", so records produced by concurrently
// running formulas never interleave or bleed styles into each other.
//
// Implementations:
//
//   - Console writes lipgloss-styled text to an io.Writer.
//   - Recorder keeps records in memory (tests, post-processing).
//   - Nop discards everything.
package report
