/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package diag

import (
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LogReporter writes events to a go-kit logger at warn level.
type LogReporter struct {
	logger kitlog.Logger
}

// NewLogReporter returns a reporter writing to logger. A nil logger yields
// a reporter that discards everything.
func NewLogReporter(logger kitlog.Logger) *LogReporter {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &LogReporter{logger: logger}
}

// NewStderrReporter returns a logfmt reporter on stderr, the stream the
// store historically reported handling errors to.
func NewStderrReporter() *LogReporter {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "component", "errstate")
	return NewLogReporter(logger)
}

// Report implements Reporter. Logger errors are dropped.
func (r *LogReporter) Report(ev Event) {
	kv := make([]any, 0, 18)
	kv = append(kv, "msg", message(ev), "kind", ev.Kind.String())
	if ev.File != "" {
		kv = append(kv, "file", ev.File, "line", ev.Line)
	}
	if ev.Capacity > 0 {
		kv = append(kv, "capacity", ev.Capacity)
	}
	if ev.Length > 0 {
		kv = append(kv, "length", ev.Length)
	}
	if ev.Previous != "" {
		kv = append(kv, "previous", ev.Previous)
	}
	if ev.Err != nil {
		kv = append(kv, "err", ev.Err)
	}
	_ = level.Warn(r.logger).Log(kv...)
}

func message(ev Event) string {
	if ev.Message != "" {
		return ev.Message
	}
	switch ev.Kind {
	case Truncated:
		return "error string truncated to fit its buffer"
	case LineEncodeFailed:
		return "failed to encode line number"
	case AllocFailed:
		return "failed to allocate memory for the error string"
	case Overwritten:
		return "error string being overwritten"
	case CleanupFailed:
		return "cleanup failed while handling a failure"
	default:
		return "error state diagnostic"
	}
}
