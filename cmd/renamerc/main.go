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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/commands"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "renamerc",
		Short: "A tool for batch-renaming texture files by suffix rules",
		Long: `renamerc renames batches of files by applying an ordered table of
suffix rules to filename stems, e.g. wall_BaseColor.png -> wall_albedo.png.
Rules come from a config file (YAML, JSON, or HCL) or a semicolon-delimited
rule table. Conflicting targets are never overwritten.`,
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewApplyCmd(newRootOpts),
		commands.NewPlanCmd(newRootOpts),
		commands.NewRulesCmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
