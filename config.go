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

package errstate

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/errstate/diag"
	"dirpx.dev/errstate/format"
)

// ErrConfigInvalid is returned when a Config cannot be used.
var ErrConfigInvalid = errors.New("errstate: invalid config")

// Config selects how States are built. It replaces what used to be
// compile-time switches: the memory regime and whether handling errors are
// reported.
type Config struct {
	Mode   Mode          `yaml:"mode"`
	Layout format.Layout `yaml:",inline"`

	// ReportHandlingErrors sends truncation, overwrite, allocation and
	// line-encoding events to stderr unless a reporter is passed to
	// NewFromConfig.
	ReportHandlingErrors bool `yaml:"report_handling_errors"`

	// ReportKinds limits reporting to these kinds. Empty means all.
	ReportKinds diag.KindList `yaml:"report_kinds"`
}

// DefaultConfig returns a Bounded config with the default layout and
// reporting disabled.
func DefaultConfig() Config {
	return Config{Mode: Bounded, Layout: format.DefaultLayout()}
}

// RegisterFlagsAndApplyDefaults adds the flags of cfg to f under prefix and
// sets the defaults.
func (cfg *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	f.TextVar(&cfg.Mode, prefixed(prefix, "mode"), Bounded, "Error string storage: bounded (fixed buffer, truncating) or unbounded (exact allocation).")
	f.IntVar(&cfg.Layout.Capacity, prefixed(prefix, "capacity"), format.DefaultCapacity, "Size of the fixed error string buffer in bounded mode, terminator included.")
	f.IntVar(&cfg.Layout.LineSize, prefixed(prefix, "line-size"), format.DefaultLineSize, "Size of the line number buffer in bounded mode.")
	f.IntVar(&cfg.Layout.MinMessage, prefixed(prefix, "min-message"), format.DefaultMinMessage, "Message bytes kept when the location alone overflows the buffer.")
	f.BoolVar(&cfg.ReportHandlingErrors, prefixed(prefix, "report-handling-errors"), false, "Report truncated or overwritten error strings and allocation failures to stderr.")
	cfg.ReportKinds = nil
	f.Var(&cfg.ReportKinds, prefixed(prefix, "report-kinds"), "Comma-separated kinds of handling errors to report (truncated, line_encode_failed, alloc_failed, overwritten, cleanup_failed). Empty reports all.")
}

// Validate checks the mode, the report kinds and, in Bounded mode, the
// layout.
func (cfg Config) Validate() error {
	if cfg.Mode != Bounded && cfg.Mode != Unbounded {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, ErrModeInvalid)
	}
	if err := cfg.ReportKinds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	if cfg.Mode == Bounded {
		if err := cfg.Layout.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
		}
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig. Unknown keys are
// rejected.
//
//	mode: unbounded
//	report_handling_errors: true
//	report_kinds: [truncated, overwritten]
func ParseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options translates cfg into State options. When reporting is enabled,
// r is used as the reporter, or a stderr reporter when r is nil, and only
// ReportKinds reach it.
func (cfg Config) Options(r diag.Reporter) []Option {
	opts := []Option{WithMode(cfg.Mode)}
	if cfg.Mode == Bounded {
		opts = append(opts, WithLayout(cfg.Layout))
	}
	if cfg.ReportHandlingErrors {
		if r == nil {
			r = diag.NewStderrReporter()
		}
		opts = append(opts, WithReporter(r), WithReportKinds(cfg.ReportKinds...))
	}
	return opts
}

// NewFromConfig validates cfg and builds a State from it. Extra options are
// applied after the ones derived from cfg.
func NewFromConfig(cfg Config, opts ...Option) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(append(cfg.Options(nil), opts...)...)
}

func prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
