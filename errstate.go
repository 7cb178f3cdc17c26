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
	"fmt"

	"dirpx.dev/errstate/diag"
	"dirpx.dev/errstate/format"
)

// NotSet is what GetSafe returns when no error is stored.
const NotSet = "error string not set"

// State is the error state store of one execution context.
//
// It holds at most one composed error text of the form
//
//	<message>, at <file>:<line>
//
// and exposes set / is-set / get / get-safe / reset. A State is owned by a
// single goroutine (or worker) at a time. It does no locking and must not
// be shared; give every worker its own State, or carry one per request in a
// context.Context (see NewContext).
//
// In Bounded mode the State owns one fixed buffer of Layout.Capacity bytes
// for its whole life and truncates what does not fit. In Unbounded mode
// every Set allocates exactly what the text needs and nothing is truncated.
//
// The zero value is a ready-to-use Bounded State with the default layout
// and no reporter; its buffer is allocated on the first Set.
type State struct {
	mode     Mode
	layout   format.Layout
	alloc    format.Allocator
	reporter diag.Reporter
	kinds    []diag.Kind

	// buf is the fixed buffer (Bounded) or the exact allocation (Unbounded,
	// nil when unset). n is the content length in Bounded mode.
	buf []byte
	n   int
}

// New returns a State configured by opts.
//
// Usage:
//
//	st, err := errstate.New(
//	    errstate.WithMode(errstate.Unbounded),
//	    errstate.WithReporter(diag.NewStderrReporter()),
//	)
//
// It fails only when the layout of a Bounded State is invalid.
func New(opts ...Option) (*State, error) {
	s := &State{layout: format.DefaultLayout()}
	for _, opt := range opts {
		opt(s)
	}
	s.reporter = diag.Filter(s.reporter, s.kinds...)
	if s.mode == Bounded {
		if err := s.layout.Validate(); err != nil {
			return nil, err
		}
		s.buf = make([]byte, s.layout.Capacity)
	}
	return s, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(opts ...Option) *State {
	s, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Mode reports the formatting strategy of s.
func (s *State) Mode() Mode { return s.mode }

// Layout reports the bounded layout of s. It is meaningful in Bounded mode
// only.
func (s *State) Layout() format.Layout {
	if s.layout.Capacity == 0 {
		return format.DefaultLayout()
	}
	return s.layout
}

// Set stores message composed with file and line, replacing any error
// already stored. It never fails observably: truncation and allocation
// failures are absorbed and, when a reporter is configured, reported.
func (s *State) Set(message, file string, line int) {
	s.SetAt(message, Location{File: file, Line: line})
}

// SetAt is Set with a Location value.
func (s *State) SetAt(message string, loc Location) {
	if s.reporter != nil && s.IsSet() {
		diag.Emit(s.reporter, diag.Event{
			Kind:     diag.Overwritten,
			File:     loc.File,
			Line:     loc.Line,
			Previous: s.text(),
		})
	}

	in := format.Input{Message: message, File: loc.File, Line: loc.Line}
	if s.mode == Unbounded {
		s.buf = nil
		if b, ok := format.Unbounded(in, s.alloc, s.reporter); ok {
			s.buf = b
		}
		return
	}

	if s.buf == nil {
		s.layout = s.Layout()
		s.buf = make([]byte, s.layout.Capacity)
	}
	s.n = format.Bounded(s.buf, in, s.layout, s.reporter)
}

// SetHere is Set with the location of its caller.
func (s *State) SetHere(message string) {
	s.SetAt(message, Caller(1))
}

// Setf formats according to a format specifier and stores the result at loc.
func (s *State) Setf(loc Location, pattern string, args ...any) {
	s.SetAt(fmt.Sprintf(pattern, args...), loc)
}

// IsSet reports whether an error is stored: a non-empty text in Bounded
// mode, an allocation in Unbounded mode.
func (s *State) IsSet() bool {
	if s.mode == Unbounded {
		return s.buf != nil
	}
	return s.n > 0
}

// Get returns the stored text. The second result is false when no error is
// set, in which case the text is empty.
func (s *State) Get() (string, bool) {
	if !s.IsSet() {
		return "", false
	}
	return s.text(), true
}

// GetSafe returns the stored text, or NotSet when no error is set.
func (s *State) GetSafe() string {
	if !s.IsSet() {
		return NotSet
	}
	return s.text()
}

// Reset clears the stored error. The fixed buffer is zero-filled; the
// dynamic allocation is released. Reset on an unset State is a no-op.
func (s *State) Reset() {
	if s.mode == Unbounded {
		s.buf = nil
		return
	}
	if s.n > 0 {
		clear(s.buf)
	}
	s.n = 0
}

// Err returns the stored error as an error value, or nil when unset.
// The returned value is a snapshot: later Set or Reset calls do not
// change it.
func (s *State) Err() error {
	if !s.IsSet() {
		return nil
	}
	return &Error{Text: s.text()}
}

func (s *State) text() string {
	if s.mode == Unbounded {
		return string(s.buf)
	}
	return string(s.buf[:s.n])
}
