package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(newOpts func(ctx context.Context) (*opts.RootOpts, error)) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Rename files according to the configured rules",
		Long: `Apply scans the source directory, plans a rename for every file a
rule matches, and executes the renames sequentially. It will:
1. Load the rule table
2. Enumerate matching files
3. Rename each file, never overwriting an existing target
4. Report the outcome for every file and write the run log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}
			cfg := o.Config

			ruleSet, err := cfg.RuleSet()
			if err != nil {
				return errors.Errorf("loading rules: %w", err)
			}

			if dryRun || cfg.DryRun {
				o.Logger.Warning("dry run: no files will be renamed")
				return runPreview(ctx, o)
			}

			o.Logger.Header(fmt.Sprintf("renaming files in %s", cfg.Source))

			ctx = log.NewContext(ctx, o.Logger)
			statusMgr := status.NewManager(newFileOperationSink(ctx))
			op, err := operation.NewRenameOperation(operation.Options{
				Config:    cfg,
				Rules:     ruleSet,
				StatusMgr: statusMgr,
			})
			if err != nil {
				return errors.Errorf("creating rename operation: %w", err)
			}

			runner := operation.NewRunner(zerolog.Ctx(ctx), false)
			if err := runner.Run(ctx, op); err != nil {
				return errors.Errorf("running rename operation: %w", err)
			}

			summary := statusMgr.Summary()
			o.Logger.LogNewline()
			line := status.NewDefaultFileFormatter().FormatSummary(summary)
			if summary.Conflicts > 0 || summary.Errors > 0 {
				o.Logger.Warning(line)
			} else {
				o.Logger.Success(line)
			}

			if cfg.LogDir != "" {
				logPath, err := statusMgr.WriteRunLog(ctx, cfg.LogDir, status.RunLogLocations{
					ConfigFile: o.ConfigPath,
					RuleFile:   cfg.RuleFile,
				})
				if err != nil {
					return errors.Errorf("writing run log: %w", err)
				}
				o.Logger.Infof("run log: %s", logPath)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "plan only, rename nothing")

	return cmd
}
