package status

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_String(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomePlanned, "planned"},
		{OutcomeRenamed, "renamed"},
		{OutcomeSkipped, "skipped"},
		{OutcomeConflict, "conflict"},
		{OutcomeError, "error"},
		{OutcomeUnknown, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.String())
		})
	}
}

func TestManager_Track(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	m := NewManager(NewWriterSink(&buf, NewDefaultFileFormatter()))

	m.Track(context.Background(), Result{
		Source:  filepath.Join("tex", "wall_BaseColor.png"),
		Target:  filepath.Join("tex", "wall_albedo.png"),
		Outcome: OutcomeRenamed,
		Reason:  "rule _BaseColor",
	})
	m.Track(context.Background(), Result{
		Source:  filepath.Join("tex", "wall_Unknown.png"),
		Target:  filepath.Join("tex", "wall_Unknown.png"),
		Outcome: OutcomeSkipped,
	})

	output := buf.String()
	assert.Contains(t, output, "wall_BaseColor.png")
	assert.Contains(t, output, "renamed to wall_albedo.png")
	assert.Contains(t, output, "skipped")

	require.Len(t, m.Results(), 2)
}

func TestManager_Summary(t *testing.T) {
	m := NewManager(nil)

	for _, o := range []Outcome{
		OutcomeRenamed, OutcomeRenamed, OutcomeSkipped,
		OutcomeConflict, OutcomeError, OutcomePlanned,
	} {
		m.Track(context.Background(), Result{Source: "f.png", Target: "g.png", Outcome: o})
	}

	s := m.Summary()
	assert.Equal(t, 2, s.Renamed)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Conflicts)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, 1, s.Planned)
	assert.Equal(t, 6, s.Total())
}

func TestManager_Directories(t *testing.T) {
	m := NewManager(nil)

	m.Track(context.Background(), Result{Source: filepath.Join("b", "x.png"), Outcome: OutcomeRenamed})
	m.Track(context.Background(), Result{Source: filepath.Join("a", "y.png"), Outcome: OutcomeRenamed})
	m.Track(context.Background(), Result{Source: filepath.Join("b", "z.png"), Outcome: OutcomeSkipped})

	assert.Equal(t, []string{"a", "b"}, m.Directories())
}
