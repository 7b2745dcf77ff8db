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
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rules"
)

// 🎯 Job pairs a source path with the target path a rule produced for it.
// Jobs are transient: built per invocation, executed, discarded.
type Job struct {
	SourcePath string
	TargetPath string
	Rule       *rules.Rule // rule that matched, nil for skips
}

// Skip reports whether the job leaves the file untouched.
func (j Job) Skip() bool {
	return j.SourcePath == j.TargetPath
}

// 📋 Plan maps each filename to a rename job by applying the first matching
// rule to its stem. The extension is never touched. Files no rule matches
// become skip jobs (source == target) rather than failing the batch.
func Plan(ctx context.Context, filenames []string, rs *rules.RuleSet) []Job {
	logger := zerolog.Ctx(ctx)

	jobs := make([]Job, 0, len(filenames))
	for _, path := range filenames {
		dir := filepath.Dir(path)
		base := filepath.Base(path)
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)

		newStem, rule := rs.Apply(stem)
		if rule == nil || newStem == stem {
			jobs = append(jobs, Job{SourcePath: path, TargetPath: path})
			continue
		}

		jobs = append(jobs, Job{
			SourcePath: path,
			TargetPath: filepath.Join(dir, newStem+ext),
			Rule:       rule,
		})
	}

	logger.Debug().Int("jobs", len(jobs)).Msg("plan built")
	return jobs
}
