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

// Package scan enumerates the files a rename batch operates on.
package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔭 Scanner walks a source tree and collects candidate files. Include and
// ignore patterns are doublestar globs matched against the path relative to
// the root, with / separators on every platform.
type Scanner struct {
	Include   []string
	Ignore    []string
	Recursive bool
}

// 🏃 Scan returns the matching file paths under root, sorted, so rename
// order is deterministic. Failure to enumerate the root is the only fatal
// error; an unreadable subdirectory is logged and skipped.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return errors.Errorf("enumerating %s: %w", root, walkErr)
			}
			logger.Warn().Err(walkErr).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}

		if d.IsDir() {
			if !s.Recursive && path != root {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if s.matches(rel) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	logger.Debug().Int("files", len(files)).Str("root", root).Msg("scan complete")
	return files, nil
}

// 🔍 matches checks rel against the include and ignore patterns. A file is
// a candidate when some include pattern matches and no ignore pattern does.
func (s *Scanner) matches(rel string) bool {
	included := len(s.Include) == 0
	for _, pattern := range s.Include {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			included = true
			break
		}
		// A plain extension pattern like *.png should match in subdirs too
		if !strings.Contains(pattern, "/") {
			if ok, err := doublestar.Match(pattern, filepath.Base(rel)); err == nil && ok {
				included = true
				break
			}
		}
	}
	if !included {
		return false
	}

	for _, pattern := range s.Ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return false
		}
	}
	return true
}
