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

package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var _ Logger = (*DefaultLogger)(nil)

// LoggerOptions configures a DefaultLogger.
type LoggerOptions struct {
	// Level is the minimum level to output.
	Level LogLevel
	// Format selects text or JSON output.
	Format LogFormat
	// Output is the destination writer. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultLogger writes leveled text or JSON log lines. It is safe for
// concurrent use.
type DefaultLogger struct {
	mu     sync.Mutex
	level  LogLevel
	format LogFormat
	out    io.Writer
}

// NewLogger creates a DefaultLogger with the given options.
func NewLogger(opts LoggerOptions) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	return &DefaultLogger{
		level:  opts.Level,
		format: opts.Format,
		out:    out,
	}
}

// Debugf logs at debug level.
func (l *DefaultLogger) Debugf(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Infof logs at info level.
func (l *DefaultLogger) Infof(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Warnf logs at warn level.
func (l *DefaultLogger) Warnf(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Errorf logs at error level.
func (l *DefaultLogger) Errorf(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

func (l *DefaultLogger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level || l.level == LevelSilent {
		return
	}
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.format == FormatJSON {
		entry := map[string]string{
			"time":  time.Now().UTC().Format(time.RFC3339),
			"level": level.String(),
			"msg":   msg,
		}
		// Marshalling a map[string]string cannot fail.
		line, _ := json.Marshal(entry)
		fmt.Fprintln(l.out, string(line))
		return
	}

	fmt.Fprintf(l.out, "%s: %s\n", level, msg)
}
