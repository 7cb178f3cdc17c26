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
	"dirpx.dev/errstate/diag"
	"dirpx.dev/errstate/format"
)

// Option is a functional option for constructing a State.
// Options are applied in order; later options win.
type Option func(*State)

// WithMode selects Bounded or Unbounded formatting.
func WithMode(m Mode) Option {
	return func(s *State) { s.mode = m }
}

// WithLayout sets the fixed-buffer layout used in Bounded mode.
// New rejects layouts that fail format.Layout.Validate.
func WithLayout(l format.Layout) Option {
	return func(s *State) { s.layout = l }
}

// WithCapacity is a shorthand for a default layout with a different total
// capacity.
func WithCapacity(c int) Option {
	return func(s *State) { s.layout.Capacity = c }
}

// WithReporter enables reporting of handling errors (truncation, overwrite,
// allocation and line-encoding failures) to r. Without it nothing is
// reported.
func WithReporter(r diag.Reporter) Option {
	return func(s *State) { s.reporter = r }
}

// WithReportKinds limits reporting to the given kinds. Without it, or with
// no kinds, every event reaches the reporter.
func WithReportKinds(kinds ...diag.Kind) Option {
	return func(s *State) { s.kinds = kinds }
}

// WithAllocator sets the allocator used in Unbounded mode.
// The default is format.HeapAllocator.
func WithAllocator(a format.Allocator) Option {
	return func(s *State) { s.alloc = a }
}
