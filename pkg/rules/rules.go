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

// Package rules implements the suffix rewrite table that drives renaming.
package rules

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule maps a recognized filename pattern to its replacement. A suffix
// rule matches only at the end of the stem; a substring rule matches
// anywhere in it.
type Rule struct {
	Match     string `json:"match" yaml:"match" hcl:"match"`
	Replace   string `json:"replace" yaml:"replace" hcl:"replace,optional"`
	Substring bool   `json:"substring,omitempty" yaml:"substring,omitempty" hcl:"substring,optional"`
}

// 📚 RuleSet is an ordered collection of rules. Rules are evaluated
// longest-match-first so overlapping suffixes resolve deterministically,
// and matching is case-insensitive (texture exports are mixed-case).
type RuleSet struct {
	rules []Rule
}

// 🏭 New validates the given rules and builds a RuleSet. The sort is
// stable, so rules with equal match length keep their declared order.
func New(rs []Rule) (*RuleSet, error) {
	if err := Validate(rs); err != nil {
		return nil, err
	}

	ordered := make([]Rule, len(rs))
	copy(ordered, rs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Match) > len(ordered[j].Match)
	})

	return &RuleSet{rules: ordered}, nil
}

// 🔍 Validate checks that every rule is well-formed and that no replacement
// is itself matchable. A replacement ending in a match suffix would be
// renamed again on the next run, breaking idempotence.
func Validate(rs []Rule) error {
	for i, r := range rs {
		if r.Match == "" {
			return errors.Errorf("rule %d: match is required", i)
		}
		if strings.EqualFold(r.Match, r.Replace) {
			return errors.Errorf("rule %d: match and replace are identical: %q", i, r.Match)
		}
	}

	for i, r := range rs {
		if r.Replace == "" {
			continue
		}
		for j, q := range rs {
			if q.Substring {
				if containsFold(r.Replace, q.Match) {
					return errors.Errorf("rule %d: replacement %q contains match of rule %d (%q)", i, r.Replace, j, q.Match)
				}
				continue
			}
			if hasSuffixFold(r.Replace, q.Match) {
				return errors.Errorf("rule %d: replacement %q is matchable by rule %d (%q)", i, r.Replace, j, q.Match)
			}
		}
	}

	return nil
}

// 📝 Rules returns the rules in evaluation order.
func (s *RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// 🎯 Apply rewrites stem using the first matching rule. The unmatched
// portion of the stem is preserved exactly. The second return value is the
// rule that matched, nil when no rule did.
func (s *RuleSet) Apply(stem string) (string, *Rule) {
	for i := range s.rules {
		r := &s.rules[i]
		if r.Substring {
			if rewritten, ok := replaceFold(stem, r.Match, r.Replace); ok {
				return rewritten, r
			}
			continue
		}
		if n, ok := suffixFoldLen(stem, r.Match); ok {
			return stem[:len(stem)-n] + r.Replace, r
		}
	}
	return stem, nil
}

// Case-insensitive matching works rune by rune. Byte-offset tricks over
// strings.ToLower break when a fold changes a rune's encoded length, as
// with U+0130 'İ' folding to a one-byte 'i'.

// foldEq reports whether two runes are equal ignoring case.
func foldEq(a, b rune) bool {
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// foldPrefixLen returns the byte length of the prefix of s that matches
// pattern ignoring case, and whether s starts with pattern at all.
func foldPrefixLen(s, pattern string) (int, bool) {
	n := 0
	for _, pr := range pattern {
		sr, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !foldEq(sr, pr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// suffixFoldLen returns the byte length of the suffix of s that matches
// pattern ignoring case, and whether s ends with pattern at all.
func suffixFoldLen(s, pattern string) (int, bool) {
	si, pi := len(s), len(pattern)
	for pi > 0 {
		pr, psize := utf8.DecodeLastRuneInString(pattern[:pi])
		sr, ssize := utf8.DecodeLastRuneInString(s[:si])
		if ssize == 0 || !foldEq(sr, pr) {
			return 0, false
		}
		pi -= psize
		si -= ssize
	}
	return len(s) - si, true
}

// hasSuffixFold reports whether s ends with suffix, ignoring case.
func hasSuffixFold(s, suffix string) bool {
	_, ok := suffixFoldLen(s, suffix)
	return ok
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	for i := range s {
		if _, ok := foldPrefixLen(s[i:], substr); ok {
			return true
		}
	}
	return len(substr) == 0
}

// replaceFold replaces every case-insensitive occurrence of old in s with
// new. The boolean reports whether anything was replaced.
func replaceFold(s, old, new string) (string, bool) {
	var b strings.Builder
	replaced := false
	for i := 0; i < len(s); {
		if n, ok := foldPrefixLen(s[i:], old); ok {
			b.WriteString(new)
			i += n
			replaced = true
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}
	if !replaced {
		return s, false
	}
	return b.String(), true
}
