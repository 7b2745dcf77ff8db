// Package operation provides the plan and apply core for batch renames.
package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/rules"
	"github.com/walteh/renamerc/pkg/scan"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a runnable unit of work over one batch of files.
type Operation interface {
	// Execute runs the operation
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for an operation
type Options struct {
	// Config is the renamerc configuration
	Config *config.Config
	// Rules is the merged, ordered rule set
	Rules *rules.RuleSet
	// StatusMgr tracks and reports per-file outcomes
	StatusMgr *status.Manager
}

// 🏗️ BaseOperation provides common functionality for operations
type BaseOperation struct {
	Config    *config.Config
	Rules     *rules.RuleSet
	StatusMgr *status.Manager
}

// 🏭 NewBaseOperation creates a new base operation, validating the options.
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Rules == nil {
		return BaseOperation{}, errors.Errorf("rules are required")
	}
	if opts.StatusMgr == nil {
		return BaseOperation{}, errors.Errorf("status manager is required")
	}
	return BaseOperation{
		Config:    opts.Config,
		Rules:     opts.Rules,
		StatusMgr: opts.StatusMgr,
	}, nil
}

// 📋 buildJobs scans the source tree and plans the batch.
func (op *BaseOperation) buildJobs(ctx context.Context) ([]Job, error) {
	scanner := &scan.Scanner{
		Include:   op.Config.Include,
		Ignore:    op.Config.Ignore,
		Recursive: op.Config.Recursive == nil || *op.Config.Recursive,
	}

	files, err := scanner.Scan(ctx, op.Config.Source)
	if err != nil {
		return nil, errors.Errorf("scanning source: %w", err)
	}

	return Plan(ctx, files, op.Rules), nil
}

// 📦 NewRenameOperation creates the operation that plans and applies a batch.
func NewRenameOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &renameOperation{BaseOperation: base}, nil
}

// 📦 renameOperation implements the rename operation
type renameOperation struct {
	BaseOperation
}

// 🏃 Execute runs the rename operation
func (op *renameOperation) Execute(ctx context.Context) error {
	jobs, err := op.buildJobs(ctx)
	if err != nil {
		return err
	}

	results, applyErr := Apply(ctx, jobs)
	for _, r := range results {
		op.StatusMgr.Track(ctx, r)
	}
	if applyErr != nil {
		return applyErr
	}
	return nil
}

// 📦 NewPreviewOperation creates the dry-run operation: it plans the batch
// and predicts outcomes without touching the filesystem.
func NewPreviewOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	return &previewOperation{BaseOperation: base}, nil
}

// 🔎 previewOperation implements the dry-run operation
type previewOperation struct {
	BaseOperation
}

// 🏃 Execute plans the batch and tracks predicted outcomes.
func (op *previewOperation) Execute(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	jobs, err := op.buildJobs(ctx)
	if err != nil {
		return err
	}

	// Replay the batch in apply order. A planned rename vacates its source
	// and claims its target, so a later job conflicts exactly when apply
	// would find its target occupied: claimed earlier in the batch, or on
	// disk and not renamed away first.
	vacated := map[string]struct{}{}
	claimed := map[string]struct{}{}

	for _, job := range jobs {
		r := status.Result{
			Source: job.SourcePath,
			Target: job.TargetPath,
		}
		if job.Rule != nil {
			r.Reason = "rule " + job.Rule.Match
		}

		_, wasClaimed := claimed[job.TargetPath]
		_, wasVacated := vacated[job.TargetPath]

		switch {
		case job.Skip():
			r.Outcome = status.OutcomeSkipped
			if job.Rule == nil {
				r.Reason = "no rule matched"
			}
		case wasClaimed || (targetExists(job.TargetPath) && !wasVacated):
			r.Outcome = status.OutcomeConflict
		default:
			vacated[job.SourcePath] = struct{}{}
			claimed[job.TargetPath] = struct{}{}
			r.Outcome = status.OutcomePlanned
		}

		op.StatusMgr.Track(ctx, r)
	}

	logger.Debug().Int("jobs", len(jobs)).Msg("preview complete")
	return nil
}

func targetExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
