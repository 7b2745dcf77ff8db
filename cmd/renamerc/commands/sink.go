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

package commands

import (
	"context"
	"path/filepath"

	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/status"
)

// 🔌 fileOperationSink echoes tracked results through the console logger.
type fileOperationSink struct {
	ctx context.Context
}

// 🏭 newFileOperationSink creates a sink backed by the logger in ctx
func newFileOperationSink(ctx context.Context) *fileOperationSink {
	// Resolve eagerly so a missing logger fails at wiring time, not mid-run
	log.FromContext(ctx)
	return &fileOperationSink{ctx: ctx}
}

// 📝 LogResult formats one result as a file operation line
func (s *fileOperationSink) LogResult(r status.Result) {
	op := log.FileOperation{
		Name:    filepath.Base(r.Source),
		Outcome: r.Outcome.String(),
		Reason:  r.Reason,
	}
	if r.Target != "" && r.Target != r.Source {
		op.Target = filepath.Base(r.Target)
	}
	log.FromContext(s.ctx).LogFileOperation(s.ctx, op)
}
