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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes operations. Detached mode runs the operation in a
// single goroutine so the caller can react to cancellation; the renames
// themselves stay sequential either way.
type Runner struct {
	logger   *zerolog.Logger
	detached bool
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger, detached bool) *Runner {
	return &Runner{
		logger:   logger,
		detached: detached,
	}
}

// 🏃 Run executes an operation
func (r *Runner) Run(ctx context.Context, op Operation) error {
	if !r.detached {
		return op.Execute(ctx)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := op.Execute(gctx); err != nil {
			return errors.Errorf("executing operation: %w", err)
		}
		return nil
	})

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case <-ctx.Done():
		// Apply checks the context between jobs, so the goroutine winds
		// down after the in-flight rename.
		err := <-done
		if err != nil {
			return err
		}
		return errors.Errorf("operation cancelled: %w", ctx.Err())
	case err := <-done:
		return err
	}
}
