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

package status

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// 📊 Outcome represents what happened (or will happen) to one file.
type Outcome int

const (
	OutcomeUnknown  Outcome = iota
	OutcomePlanned          // dry run: file would be renamed
	OutcomeRenamed          // rename applied
	OutcomeSkipped          // no rule matched, file untouched
	OutcomeConflict         // target already exists, file untouched
	OutcomeError            // rename failed, file untouched
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomePlanned:
		return "planned"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeConflict:
		return "conflict"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 Result records the outcome for a single file in the batch.
type Result struct {
	Source  string  // Source path
	Target  string  // Target path (== Source for skips)
	Outcome Outcome // What happened
	Reason  string  // Human-readable detail, e.g. which rule matched
	Err     error   // Underlying error for OutcomeError
}

// 📈 Summary aggregates a batch's outcomes.
type Summary struct {
	Planned   int
	Renamed   int
	Skipped   int
	Conflicts int
	Errors    int
}

// Total returns the number of files in the batch.
func (s Summary) Total() int {
	return s.Planned + s.Renamed + s.Skipped + s.Conflicts + s.Errors
}

// 📣 ResultSink receives each result as it is tracked, for user-facing
// echo. UserLogger satisfies it, as does any adapter over a console logger.
type ResultSink interface {
	LogResult(r Result)
}

// 🖥️ WriterSink is a ResultSink that writes formatted lines to a writer.
type WriterSink struct {
	w         io.Writer
	formatter FileFormatter
}

// 🏭 NewWriterSink creates a sink rendering through the given formatter.
func NewWriterSink(w io.Writer, formatter FileFormatter) *WriterSink {
	return &WriterSink{w: w, formatter: formatter}
}

// LogResult implements ResultSink.
func (s *WriterSink) LogResult(r Result) {
	io.WriteString(s.w, s.formatter.FormatResult(r)+"\n")
}

// 🔧 Manager tracks per-file results as a batch runs and echoes them to its
// sink. Tracking is append-only; results are never mutated after the fact,
// matching the one-shot lifecycle of a rename batch.
type Manager struct {
	sink ResultSink

	mu      sync.Mutex
	results []Result
	started time.Time
}

// 🏭 NewManager creates a new status manager. sink may be nil to track
// silently (tests, preview plumbing).
func NewManager(sink ResultSink) *Manager {
	return &Manager{
		sink:    sink,
		started: time.Now(),
	}
}

// 📝 Track records one result and echoes it to the sink.
func (m *Manager) Track(ctx context.Context, r Result) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.results = append(m.results, r)

	if m.sink != nil {
		m.sink.LogResult(r)
	}

	logger := zerolog.Ctx(ctx)
	evt := logger.Info()
	if r.Outcome == OutcomeError {
		evt = logger.Error().Err(r.Err)
	}
	evt.
		Str("source", r.Source).
		Str("target", r.Target).
		Str("outcome", r.Outcome.String()).
		Str("reason", r.Reason).
		Msg("file result")
}

// 📝 Results returns a copy of everything tracked so far.
func (m *Manager) Results() []Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Result, len(m.results))
	copy(out, m.results)
	return out
}

// 📈 Summary tallies the tracked outcomes.
func (m *Manager) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	var s Summary
	for _, r := range m.results {
		switch r.Outcome {
		case OutcomePlanned:
			s.Planned++
		case OutcomeRenamed:
			s.Renamed++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeConflict:
			s.Conflicts++
		case OutcomeError:
			s.Errors++
		}
	}
	return s
}

// 📂 Directories returns the sorted, de-duplicated set of directories the
// batch touched.
func (m *Manager) Directories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := map[string]struct{}{}
	for _, r := range m.results {
		seen[filepath.Dir(r.Source)] = struct{}{}
	}

	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// ⏱️ Started returns when the batch began.
func (m *Manager) Started() time.Time {
	return m.started
}
