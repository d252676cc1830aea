package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderNilIsNoOp(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Enter(0, "ignored")
		r.Stats(Stats{Selected: 1})
	})
	assert.Equal(t, "", r.Render())
}

func TestRecorderPlainRendersIndentedLines(t *testing.T) {
	r := NewRecorder(Plain)
	r.Enter(0, "root")
	r.Enter(1, "child")
	r.Stats(Stats{Selected: 2})
	out := r.Render()
	assert.True(t, strings.Contains(out, "root"))
	assert.True(t, strings.Contains(out, "  child"))
	assert.True(t, strings.Contains(out, "selected=2"))
}

func TestRecorderHTMLEscapes(t *testing.T) {
	r := NewRecorder(HTML)
	r.Enter(0, "a < b & c")
	out := r.Render()
	assert.True(t, strings.Contains(out, "a &lt; b &amp; c"))
	assert.True(t, strings.Contains(out, "<div"))
}

func TestRecorderConsoleMarksDepth(t *testing.T) {
	r := NewRecorder(Console)
	r.Enter(2, "split")
	out := r.Render()
	assert.True(t, strings.Contains(out, "> > [2] split"))
}

func TestStatsString(t *testing.T) {
	s := Stats{Selected: 1, Generated: 2, Kept: 3}
	assert.Equal(t, "selected=1 generated=2 kept=3 propagations=0 units=0 pure=0 maxdepth=0 evals=0 leaves=0", s.String())
}
