package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(newOpts func(ctx context.Context) (*opts.RootOpts, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what apply would rename, without touching any file",
		Long: `Plan enumerates the source directory and prints the rename each rule
would produce, flagging targets that already exist as conflicts. Nothing on
disk is modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}

			return runPreview(ctx, o)
		},
	}

	return cmd
}

// runPreview executes the dry-run operation and prints the summary. Shared
// by plan and by apply's --dry-run path.
func runPreview(ctx context.Context, o *opts.RootOpts) error {
	cfg := o.Config

	ruleSet, err := cfg.RuleSet()
	if err != nil {
		return errors.Errorf("loading rules: %w", err)
	}

	o.UserLogger.LogBatchStart(fmt.Sprintf("Planning renames in %s", cfg.Source))

	statusMgr := status.NewManager(o.UserLogger)
	op, err := operation.NewPreviewOperation(operation.Options{
		Config:    cfg,
		Rules:     ruleSet,
		StatusMgr: statusMgr,
	})
	if err != nil {
		return errors.Errorf("creating preview operation: %w", err)
	}

	if err := op.Execute(ctx); err != nil {
		return errors.Errorf("running preview: %w", err)
	}

	summary := statusMgr.Summary()
	o.Logger.LogNewline()
	if summary.Conflicts > 0 {
		o.Logger.Warningf("%d to rename, %d to skip, %d conflicts",
			summary.Planned, summary.Skipped, summary.Conflicts)
	} else {
		o.Logger.Infof("%d to rename, %d to skip", summary.Planned, summary.Skipped)
	}

	return nil
}
