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

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rules"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📚 Config represents the complete configuration for a rename run.
type Config struct {
	Source    string       `json:"source" yaml:"source" hcl:"source"`
	Recursive *bool        `json:"recursive,omitempty" yaml:"recursive,omitempty" hcl:"recursive,optional"`
	Include   []string     `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Ignore    []string     `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	RuleFile  string       `json:"rule_file,omitempty" yaml:"rule_file,omitempty" hcl:"rule_file,optional"`
	Rules     []rules.Rule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
	LogDir    string       `json:"log_dir,omitempty" yaml:"log_dir,omitempty" hcl:"log_dir,optional"`
	DryRun    bool         `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`

	location string // path the config was loaded from
}

// 🎯 Load loads the configuration from a file. The format is determined by
// the file extension:
//   - .json for JSON
//   - .yaml or .yml for YAML
//   - .hcl for HCL
//   - .renamerc will try both YAML and HCL formats
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var cfg *Config

	// For .renamerc files, try both YAML and HCL
	if ext == ".renamerc" || filepath.Base(path) == ".renamerc" {
		cfg, err = loadYAML(data)
		if err != nil {
			cfg, err = loadHCL(data, path)
		}
		if err != nil {
			return nil, errors.Errorf("failed to parse %s as YAML or HCL: %w", path, err)
		}
	} else {
		switch ext {
		case ".json":
			cfg, err = loadJSON(data)
		case ".yaml", ".yml":
			cfg, err = loadYAML(data)
		case ".hcl":
			cfg, err = loadHCL(data, path)
		default:
			return nil, errors.Errorf("unsupported file extension %q", ext)
		}
		if err != nil {
			return nil, err
		}
	}

	cfg.location = path
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid and applies defaults.
func (cfg *Config) Validate() error {
	if cfg.Source == "" {
		return errors.Errorf("source is required")
	}
	if len(cfg.Rules) == 0 && cfg.RuleFile == "" {
		return errors.Errorf("at least one rule or a rule_file is required")
	}

	if err := rules.Validate(cfg.Rules); err != nil {
		return errors.Errorf("validating rules: %w", err)
	}

	// Clean up paths
	cfg.Source = filepath.Clean(cfg.Source)
	if cfg.LogDir != "" {
		cfg.LogDir = filepath.Clean(cfg.LogDir)
	}

	// Set defaults
	if cfg.Recursive == nil {
		recursive := true
		cfg.Recursive = &recursive
	}
	if len(cfg.Include) == 0 {
		cfg.Include = []string{"**/*.png"}
	}

	return nil
}

// 🗺️ RuleSet merges the rule table file (when configured) with the inline
// rules and returns the combined, ordered set. Relative rule_file paths
// resolve against the config file's directory.
func (cfg *Config) RuleSet() (*rules.RuleSet, error) {
	var all []rules.Rule

	if cfg.RuleFile != "" {
		path := cfg.RuleFile
		if !filepath.IsAbs(path) && cfg.location != "" {
			path = filepath.Join(filepath.Dir(cfg.location), path)
		}
		fileRules, err := LoadRuleTable(path)
		if err != nil {
			return nil, errors.Errorf("loading rule table: %w", err)
		}
		all = append(all, fileRules...)
	}

	all = append(all, cfg.Rules...)

	rs, err := rules.New(all)
	if err != nil {
		return nil, errors.Errorf("building rule set: %w", err)
	}
	return rs, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s (%d inline rules, rule_file=%q)", cfg.Source, len(cfg.Rules), cfg.RuleFile)
}

// loadJSON loads a configuration from JSON data
func loadJSON(data []byte) (*Config, error) {
	var cfg Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &cfg, nil
}

// loadYAML loads a configuration from YAML data
func loadYAML(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// loadHCL loads a configuration from HCL data
func loadHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}
