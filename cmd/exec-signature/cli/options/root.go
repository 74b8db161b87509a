// Copyright 2025 The Windscribe Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package options defines the command-line options for the exec-signature
// CLI: root flags shared by all subcommands, plus per-command option
// structures.
package options

import (
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/logging"
	"github.com/spf13/cobra"
)

// Interface is implemented by all option structures.
type Interface interface {
	// AddFlags adds this options' flags to a cobra command.
	AddFlags(cmd *cobra.Command)
}

// RootOptions defines flags available globally across all subcommands.
type RootOptions struct {
	// OutputFile redirects command output to a file instead of stdout.
	OutputFile string
	// Verbose enables debug output from underlying libraries.
	Verbose bool
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
}

var _ Interface = (*RootOptions)(nil)

// ValidLogLevels lists the accepted log level strings.
var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

// ValidLogFormats lists the accepted log format strings.
var ValidLogFormats = []string{"text", "json"}

// AddFlags implements Interface.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write output to a file instead of stdout")
	_ = cmd.MarkFlagFilename("output-file")

	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"enable debug output from underlying libraries")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "info",
		"set the minimum log level (debug, info, warn, error, silent)")

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")
}

// NewLogger builds the logger the subcommands use, honoring the root
// log-level and log-format flags.
func (o *RootOptions) NewLogger() logging.Logger {
	level := logging.ParseLogLevel(o.LogLevel)
	if o.Verbose {
		level = logging.LevelDebug
	}
	return logging.NewLogger(logging.LoggerOptions{
		Level:  level,
		Format: logging.ParseLogFormat(o.LogFormat),
	})
}
