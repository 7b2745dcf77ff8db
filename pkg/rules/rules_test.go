package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleSet_Apply(t *testing.T) {
	tests := []struct {
		name      string
		rules     []Rule
		stem      string
		want      string
		wantMatch string // Match of the rule that fired, "" for none
	}{
		{
			name:      "suffix_match",
			rules:     []Rule{{Match: "_BaseColor", Replace: "_albedo"}},
			stem:      "wall_BaseColor",
			want:      "wall_albedo",
			wantMatch: "_BaseColor",
		},
		{
			name:      "case_insensitive_match",
			rules:     []Rule{{Match: "_BaseColor", Replace: "_albedo"}},
			stem:      "wall_basecolor",
			want:      "wall_albedo",
			wantMatch: "_BaseColor",
		},
		{
			name:  "no_match",
			rules: []Rule{{Match: "_BaseColor", Replace: "_albedo"}},
			stem:  "wall_Unknown",
			want:  "wall_Unknown",
		},
		{
			name: "longest_match_wins",
			rules: []Rule{
				{Match: "_Color", Replace: "_col"},
				{Match: "_BaseColor", Replace: "_albedo"},
			},
			stem:      "wall_BaseColor",
			want:      "wall_albedo",
			wantMatch: "_BaseColor",
		},
		{
			name: "first_of_equal_length_wins",
			rules: []Rule{
				{Match: "_Normal", Replace: "_nrm"},
				{Match: "_normal", Replace: "_bad"},
			},
			stem:      "brick_Normal",
			want:      "brick_nrm",
			wantMatch: "_Normal",
		},
		{
			name:      "substring_rule",
			rules:     []Rule{{Match: "draft_", Replace: "final_", Substring: true}},
			stem:      "draft_wall_01",
			want:      "final_wall_01",
			wantMatch: "draft_",
		},
		{
			name:      "substring_rule_replaces_all",
			rules:     []Rule{{Match: "copy", Replace: "", Substring: true}},
			stem:      "wall copy copy",
			want:      "wall  ",
			wantMatch: "copy",
		},
		{
			name:      "remainder_preserved_exactly",
			rules:     []Rule{{Match: "_METAL", Replace: "_Metallic"}},
			stem:      "10-1009-110_metal",
			want:      "10-1009-110_Metallic",
			wantMatch: "_METAL",
		},
		{
			name:  "suffix_not_matched_mid_stem",
			rules: []Rule{{Match: "_BaseColor", Replace: "_albedo"}},
			stem:  "wall_BaseColor_old",
			want:  "wall_BaseColor_old",
		},
		{
			name:  "stem_shorter_than_suffix",
			rules: []Rule{{Match: "_BaseColor", Replace: "_albedo"}},
			stem:  "a",
			want:  "a",
		},
		{
			// Dotted capital I folds to a shorter byte sequence
			name:      "substring_fold_changes_byte_length",
			rules:     []Rule{{Match: "id_", Replace: "", Substring: true}},
			stem:      "İD_wall",
			want:      "wall",
			wantMatch: "id_",
		},
		{
			name:      "suffix_fold_changes_byte_length",
			rules:     []Rule{{Match: "_İD", Replace: "_identifier"}},
			stem:      "wall_id",
			want:      "wall_identifier",
			wantMatch: "_İD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := New(tt.rules)
			require.NoError(t, err)

			got, matched := rs.Apply(tt.stem)
			assert.Equal(t, tt.want, got)

			if tt.wantMatch == "" {
				assert.Nil(t, matched)
			} else {
				require.NotNil(t, matched)
				assert.Equal(t, tt.wantMatch, matched.Match)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		rules     []Rule
		wantError string
	}{
		{
			name: "valid_rules",
			rules: []Rule{
				{Match: "_BaseColor", Replace: "_COL"},
				{Match: "_Metallic", Replace: "_METAL"},
			},
		},
		{
			name:      "empty_match",
			rules:     []Rule{{Match: "", Replace: "_COL"}},
			wantError: "match is required",
		},
		{
			name:      "identical_match_and_replace",
			rules:     []Rule{{Match: "_col", Replace: "_COL"}},
			wantError: "identical",
		},
		{
			name: "replacement_is_matchable",
			rules: []Rule{
				{Match: "_BaseColor", Replace: "_Color"},
				{Match: "_Color", Replace: "_COL"},
			},
			wantError: "matchable",
		},
		{
			name: "replacement_contains_substring_match",
			rules: []Rule{
				{Match: "_rough", Replace: "_roughness"},
				{Match: "rough", Replace: "r", Substring: true},
			},
			wantError: "contains match",
		},
		{
			name:  "empty_replacement_allowed",
			rules: []Rule{{Match: "_final", Replace: ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rules)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRuleSet_Apply_Idempotent(t *testing.T) {
	rs, err := New([]Rule{
		{Match: "_BaseColor", Replace: "_albedo"},
		{Match: "_Roughness", Replace: "_rough"},
	})
	require.NoError(t, err)

	once, matched := rs.Apply("wall_BaseColor")
	require.NotNil(t, matched)

	twice, matched := rs.Apply(once)
	assert.Nil(t, matched)
	assert.Equal(t, once, twice)
}
