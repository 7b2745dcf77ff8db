// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Apply executes jobs sequentially in input order and returns one result
// per processed job. Each job is independent: a conflict or I/O failure is
// recorded and the batch continues. Cancellation stops before the next job;
// completed renames stay in place and the results so far are returned with
// the context error.
func Apply(ctx context.Context, jobs []Job) ([]status.Result, error) {
	logger := zerolog.Ctx(ctx)

	results := make([]status.Result, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return results, errors.Errorf("batch cancelled: %w", err)
		}
		results = append(results, applyOne(job))
	}

	logger.Debug().Int("results", len(results)).Msg("apply complete")
	return results, nil
}

// applyOne renames a single file, never overwriting an existing target.
func applyOne(job Job) status.Result {
	r := status.Result{
		Source: job.SourcePath,
		Target: job.TargetPath,
	}
	if job.Rule != nil {
		r.Reason = "rule " + job.Rule.Match
	}

	if job.Skip() {
		r.Outcome = status.OutcomeSkipped
		if job.Rule == nil {
			r.Reason = "no rule matched"
		}
		return r
	}

	// Never overwrite: a silent clobber would destroy the file already at
	// the target. Single-instance interactive tool, so stat-then-rename is
	// an acceptable existence check.
	if _, err := os.Lstat(job.TargetPath); err == nil {
		r.Outcome = status.OutcomeConflict
		return r
	} else if !os.IsNotExist(err) {
		r.Outcome = status.OutcomeError
		r.Err = errors.Errorf("checking target: %w", err)
		return r
	}

	if err := os.Rename(job.SourcePath, job.TargetPath); err != nil {
		r.Outcome = status.OutcomeError
		r.Err = errors.Errorf("renaming: %w", err)
		return r
	}

	r.Outcome = status.OutcomeRenamed
	return r
}
