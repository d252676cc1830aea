// Package trace provides the depth-indented, pluggable diagnostic stream
// used by every engine (spec.md §4 component 3). Rather than branching on a
// textual mode string, engines record events through a *Recorder, which
// implements the small Sink capability (spec.md §9 REDESIGN FLAG "Trace
// pluggability") and renders them as plain text, HTML or console output.
package trace

import (
	"fmt"
	"strings"
)

// Sink receives trace events as an engine runs. Implementations must not
// block the engine: buffer in memory and render on Render (spec.md §5).
type Sink interface {
	Enter(depth int, msg string)
	Stats(stats Stats)
}

// Stats is the terminal one-line statistics record every trace ends with
// (spec.md §6).
type Stats struct {
	Selected     int // clauses selected as given clause (resolution engines)
	Generated    int // resolvents generated
	Kept         int // resolvents kept in usable
	Propagations int // unit propagations performed
	UnitsDerived int
	PureDerived  int
	MaxDepth     int
	Evaluations  int // truth-value evaluations (truth-table engine)
	Leaves       int // leaves visited (truth-table engine)
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"selected=%d generated=%d kept=%d propagations=%d units=%d pure=%d maxdepth=%d evals=%d leaves=%d",
		s.Selected, s.Generated, s.Kept, s.Propagations, s.UnitsDerived, s.PureDerived, s.MaxDepth, s.Evaluations, s.Leaves,
	)
}

// Mode selects a rendering for events handed to a Recorder.
type Mode int

const (
	// Plain renders one indented line of plain text per event.
	Plain Mode = iota
	// HTML renders each event as an indented <div>.
	HTML
	// Console renders each event prefixed by a depth-proportional marker,
	// suited for a terminal.
	Console
)

type event struct {
	depth int
	msg   string
}

// Recorder is the Sink implementation used by every engine in this module.
// It buffers events in memory and renders them only when asked, so a slow
// consumer of the final string never stalls the engine mid-run.
type Recorder struct {
	mode   Mode
	events []event
	stats  Stats
}

// NewRecorder returns a Recorder rendering in the given Mode. A nil
// *Recorder is a valid no-op Sink (Enter/Stats become cheap no-ops), so
// callers that don't want tracing can pass one without a nil check.
func NewRecorder(mode Mode) *Recorder {
	return &Recorder{mode: mode}
}

// Enter records a message at the given recursion/search depth.
func (r *Recorder) Enter(depth int, msg string) {
	if r == nil {
		return
	}
	r.events = append(r.events, event{depth: depth, msg: msg})
}

// Stats records the final statistics line.
func (r *Recorder) Stats(stats Stats) {
	if r == nil {
		return
	}
	r.stats = stats
}

// Render assembles the buffered events into a single string in the
// Recorder's Mode, ending with the one-line statistics record.
func (r *Recorder) Render() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, e := range r.events {
		switch r.mode {
		case HTML:
			fmt.Fprintf(&b, "<div style=\"margin-left:%dem\">%s</div>\n", e.depth, escapeHTML(e.msg))
		case Console:
			fmt.Fprintf(&b, "%s[%d] %s\n", strings.Repeat("> ", e.depth), e.depth, e.msg)
		default:
			fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", e.depth), e.msg)
		}
	}
	b.WriteString(r.stats.String())
	return b.String()
}

func escapeHTML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
