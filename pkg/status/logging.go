package status

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func init() {
	// Skipped files log through the debug printer; show them by default
	pterm.EnableDebugMessages()
}

// 📢 UserLogger provides user-friendly feedback about a rename run.
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// 🎯 NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// 📝 LogResult logs a file result with appropriate emoji and formatting
func (u *UserLogger) LogResult(r Result) {
	relPath := filepath.Base(r.Source)

	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch r.Outcome {
	case OutcomePlanned:
		prefix = "🔎"
		action = "Would rename"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeRenamed:
		prefix = "✨"
		action = "Renamed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeConflict:
		prefix = "⚠️"
		action = "Conflict"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: prefix})
	case OutcomeError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "❓"
		action = "Unknown"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, relPath)
	if r.Outcome == OutcomePlanned || r.Outcome == OutcomeRenamed {
		msg += fmt.Sprintf(" → %s", filepath.Base(r.Target))
	}
	if r.Reason != "" {
		msg += fmt.Sprintf(" (%s)", r.Reason)
	}

	if r.Err != nil {
		printer.Println(msg)
		pterm.Error.Println(r.Err)
		u.log.Error().Err(r.Err).Msg(msg) // Also log to zerolog for debugging
	} else {
		printer.Println(msg)
		u.log.Info().Msg(msg)
	}
}

// 📊 LogBatchStart logs the start of a batch
func (u *UserLogger) LogBatchStart(description string) {
	printer := pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"})
	printer.Println(description)
	u.log.Info().Msg(description)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(ok bool, description string, err error) {
	if ok {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
	if err != nil {
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
	}
}
