package config

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/walteh/renamerc/pkg/rules"
	"gitlab.com/tozd/go/errors"
)

// 📋 LoadRuleTable parses a semicolon-delimited rule table file. Each line
// holds a match pattern and its replacement:
//
//	_BaseColor.png;_COL.png
//	_Metallic.png;_METAL.png
//
// Blank lines and lines starting with # are ignored. When both columns
// carry the same filename extension it is stripped, since rules operate on
// the stem; this keeps tables written for the whole filename working.
func LoadRuleTable(path string) ([]rules.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("opening rule table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Errorf("parsing rule table: %w", err)
	}

	var out []rules.Rule
	for i, record := range records {
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) != 2 {
			return nil, errors.Errorf("rule table line %d: expected 2 fields, got %d", i+1, len(record))
		}

		match := strings.TrimSpace(record[0])
		replace := strings.TrimSpace(record[1])
		if match == "" {
			return nil, errors.Errorf("rule table line %d: match is empty", i+1)
		}

		// Strip a shared extension so the rule applies to stems
		if ext := filepath.Ext(match); ext != "" && strings.EqualFold(ext, filepath.Ext(replace)) {
			match = strings.TrimSuffix(match, filepath.Ext(match))
			replace = strings.TrimSuffix(replace, filepath.Ext(replace))
		}

		out = append(out, rules.Rule{Match: match, Replace: replace})
	}

	if err := rules.Validate(out); err != nil {
		return nil, errors.Errorf("validating rule table: %w", err)
	}

	return out, nil
}
