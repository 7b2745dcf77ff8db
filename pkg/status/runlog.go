package status

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🗂️ RunLogLocations names the files involved in a run, echoed at the end
// of the run log so a log can be traced back to its inputs.
type RunLogLocations struct {
	ConfigFile string
	RuleFile   string
}

// 📝 WriteRunLog writes a timestamped log of the batch into logDir and
// returns the log file's path. The layout follows the per-file report:
// header, one line per file, summary, processed directories, file
// locations.
func (m *Manager) WriteRunLog(ctx context.Context, logDir string, loc RunLogLocations) (string, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", errors.Errorf("creating log directory: %w", err)
	}

	f, path, err := openRunLogFile(logDir, m.started)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	sink := NewWriterSink(&b, NewPlainFileFormatter())

	fmt.Fprintf(&b, "=== Rename process started at %s ===\n\n", m.started.Format("2006-01-02 15:04:05"))

	for _, r := range m.Results() {
		sink.LogResult(r)
	}

	summary := m.Summary()
	fmt.Fprintf(&b, "\n=== Rename process finished at %s ===\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Total files renamed: %d\n", summary.Renamed)
	fmt.Fprintf(&b, "Total files skipped: %d\n", summary.Skipped)
	if summary.Conflicts > 0 {
		fmt.Fprintf(&b, "Total conflicts: %d\n", summary.Conflicts)
	}
	if summary.Errors > 0 {
		fmt.Fprintf(&b, "Total errors: %d\n", summary.Errors)
	}

	fmt.Fprintf(&b, "\nProcessed directories:\n")
	for _, dir := range m.Directories() {
		fmt.Fprintf(&b, "%s\n", dir)
	}

	fmt.Fprintf(&b, "\n=== File locations ===\n")
	if loc.ConfigFile != "" {
		fmt.Fprintf(&b, "Config file: %s\n", loc.ConfigFile)
	}
	if loc.RuleFile != "" {
		fmt.Fprintf(&b, "Rule table: %s\n", loc.RuleFile)
	}
	fmt.Fprintf(&b, "Log file: %s\n", path)

	if _, err := f.WriteString(b.String()); err != nil {
		return "", errors.Errorf("writing run log: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("run log written")
	return path, nil
}

// 🏭 openRunLogFile creates the log file, never reusing an existing name.
// Runs that start within the same second get a numbered suffix.
func openRunLogFile(logDir string, started time.Time) (*os.File, string, error) {
	base := started.Format("2006_01_02_15_04_05") + "_rename"
	for n := 1; ; n++ {
		name := base
		if n > 1 {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		path := filepath.Join(logDir, name+".log")

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, path, nil
		}
		if !os.IsExist(err) {
			return nil, "", errors.Errorf("creating run log: %w", err)
		}
	}
}
