package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/rules"
	"github.com/walteh/renamerc/pkg/status"
)

func testOptions(t *testing.T, source string) Options {
	t.Helper()
	recursive := true
	cfg := &config.Config{
		Source:    source,
		Recursive: &recursive,
		Include:   []string{"**/*.png"},
		Rules: []rules.Rule{
			{Match: "_BaseColor", Replace: "_albedo"},
			{Match: "_Roughness", Replace: "_rough"},
		},
	}
	rs, err := rules.New(cfg.Rules)
	require.NoError(t, err)
	return Options{
		Config:    cfg,
		Rules:     rs,
		StatusMgr: status.NewManager(nil),
	}
}

func TestRenameOperation_Execute(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wall_BaseColor.png", "a")
	writeFile(t, dir, "wall_Roughness.png", "b")
	writeFile(t, dir, "wall_Unknown.png", "c")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "brick"), 0755))
	writeFile(t, filepath.Join(dir, "brick"), "brick_BaseColor.png", "d")

	opts := testOptions(t, dir)
	op, err := NewRenameOperation(opts)
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	summary := opts.StatusMgr.Summary()
	assert.Equal(t, 3, summary.Renamed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Conflicts)
	assert.Equal(t, 0, summary.Errors)

	assert.FileExists(t, filepath.Join(dir, "wall_albedo.png"))
	assert.FileExists(t, filepath.Join(dir, "wall_rough.png"))
	assert.FileExists(t, filepath.Join(dir, "wall_Unknown.png"))
	assert.FileExists(t, filepath.Join(dir, "brick", "brick_albedo.png"))
}

func TestPreviewOperation_Execute(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wall_BaseColor.png", "a")
	writeFile(t, dir, "wall_Unknown.png", "b")
	// Pre-existing target makes the first file a predicted conflict
	writeFile(t, dir, "floor_BaseColor.png", "c")
	writeFile(t, dir, "floor_albedo.png", "already here")

	opts := testOptions(t, dir)
	op, err := NewPreviewOperation(opts)
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	summary := opts.StatusMgr.Summary()
	assert.Equal(t, 1, summary.Planned)
	assert.Equal(t, 2, summary.Skipped) // wall_Unknown + floor_albedo (no rule)
	assert.Equal(t, 1, summary.Conflicts)

	// Nothing on disk changed
	assert.FileExists(t, filepath.Join(dir, "wall_BaseColor.png"))
	assert.FileExists(t, filepath.Join(dir, "floor_BaseColor.png"))
	assert.NoFileExists(t, filepath.Join(dir, "wall_albedo.png"))
}

func TestPreviewOperation_DuplicateTargets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wall_BaseColor.png", "a")
	writeFile(t, dir, "wall_basecolor.png", "b")

	opts := testOptions(t, dir)
	op, err := NewPreviewOperation(opts)
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	summary := opts.StatusMgr.Summary()
	assert.Equal(t, 1, summary.Planned)
	assert.Equal(t, 1, summary.Conflicts)
}

func TestPreviewOperation_TargetVacatedByEarlierRename(t *testing.T) {
	dir := t.TempDir()
	// x_albedo.png occupies the second job's target, but sorts first and is
	// itself renamed away, so apply would succeed for both
	writeFile(t, dir, "x_albedo.png", "a")
	writeFile(t, dir, "x_basecolor.png", "b")

	recursive := true
	cfg := &config.Config{
		Source:    dir,
		Recursive: &recursive,
		Include:   []string{"**/*.png"},
		Rules: []rules.Rule{
			{Match: "_BaseColor", Replace: "_albedo"},
			{Match: "x_", Replace: "y_", Substring: true},
		},
	}
	rs, err := rules.New(cfg.Rules)
	require.NoError(t, err)

	opts := Options{Config: cfg, Rules: rs, StatusMgr: status.NewManager(nil)}
	op, err := NewPreviewOperation(opts)
	require.NoError(t, err)

	require.NoError(t, op.Execute(context.Background()))

	summary := opts.StatusMgr.Summary()
	assert.Equal(t, 2, summary.Planned)
	assert.Equal(t, 0, summary.Conflicts)
}

func TestNewBaseOperation_Validation(t *testing.T) {
	opts := testOptions(t, t.TempDir())

	_, err := NewRenameOperation(Options{Rules: opts.Rules, StatusMgr: opts.StatusMgr})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config is required")

	_, err = NewRenameOperation(Options{Config: opts.Config, StatusMgr: opts.StatusMgr})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules are required")

	_, err = NewRenameOperation(Options{Config: opts.Config, Rules: opts.Rules})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status manager is required")
}
