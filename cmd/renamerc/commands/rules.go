package commands

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates a new rules command
func NewRulesCmd(newOpts func(ctx context.Context) (*opts.RootOpts, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Validate the rule table and print it in priority order",
		Long: `Rules loads the configured rule table (inline rules plus the rule_file,
when set), validates it, and prints the rules in the order they are
evaluated: longest match first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}

			ruleSet, err := o.Config.RuleSet()
			if err != nil {
				o.UserLogger.LogValidation(false, "Rule table is invalid", err)
				return errors.Errorf("loading rules: %w", err)
			}

			all := ruleSet.Rules()
			o.UserLogger.LogValidation(true, fmt.Sprintf("Rule table is valid (%d rules)", len(all)), nil)

			data := pterm.TableData{{"#", "Match", "Replace", "Kind"}}
			for i, r := range all {
				kind := "suffix"
				if r.Substring {
					kind = "substring"
				}
				data = append(data, []string{
					fmt.Sprintf("%d", i+1),
					r.Match,
					r.Replace,
					kind,
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
		},
	}

	return cmd
}
