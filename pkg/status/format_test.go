package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestDefaultFileFormatter_FormatResult(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	f := NewDefaultFileFormatter()

	tests := []struct {
		name   string
		result Result
		want   []string
	}{
		{
			name: "renamed",
			result: Result{
				Source:  "wall_BaseColor.png",
				Target:  "wall_albedo.png",
				Outcome: OutcomeRenamed,
				Reason:  "rule _BaseColor",
			},
			want: []string{"wall_BaseColor.png", "✓ renamed to wall_albedo.png", "(rule _BaseColor)"},
		},
		{
			name: "planned",
			result: Result{
				Source:  "wall_BaseColor.png",
				Target:  "wall_albedo.png",
				Outcome: OutcomePlanned,
			},
			want: []string{"→ rename to wall_albedo.png"},
		},
		{
			name: "skipped",
			result: Result{
				Source:  "wall_Unknown.png",
				Target:  "wall_Unknown.png",
				Outcome: OutcomeSkipped,
				Reason:  "no rule matched",
			},
			want: []string{"- skipped (no rule matched)"},
		},
		{
			name: "conflict",
			result: Result{
				Source:  "wall_BaseColor.png",
				Target:  "wall_albedo.png",
				Outcome: OutcomeConflict,
			},
			want: []string{"✗ conflict: target exists"},
		},
		{
			name: "error",
			result: Result{
				Source:  "wall_BaseColor.png",
				Target:  "wall_albedo.png",
				Outcome: OutcomeError,
				Err:     errors.New("permission denied"),
			},
			want: []string{"✗ failed: permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.FormatResult(tt.result)
			for _, want := range tt.want {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestDefaultFileFormatter_FormatSummary(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	f := NewDefaultFileFormatter()

	got := f.FormatSummary(Summary{Renamed: 3, Skipped: 2})
	assert.Contains(t, got, "5 files")
	assert.Contains(t, got, "3 renamed")
	assert.Contains(t, got, "2 skipped")
	assert.NotContains(t, got, "conflicts")

	got = f.FormatSummary(Summary{Renamed: 1, Conflicts: 1, Errors: 2})
	assert.Contains(t, got, "1 conflicts")
	assert.Contains(t, got, "2 errors")
}

func TestPlainFileFormatter_NoColorCodes(t *testing.T) {
	// Force color on to prove the plain formatter never emits escapes
	color.NoColor = false
	defer func() { color.NoColor = false }()

	f := NewPlainFileFormatter()
	got := f.FormatResult(Result{
		Source:  "wall_BaseColor.png",
		Target:  "wall_albedo.png",
		Outcome: OutcomeRenamed,
	})
	assert.NotContains(t, got, "\x1b[")
	assert.Contains(t, got, "renamed to wall_albedo.png")
}
