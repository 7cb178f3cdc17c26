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

// Event describes one side-channel condition.
//
// File and Line identify the call site that caused the event (the location
// passed to the store), not the place inside this module that noticed it.
// Fields that do not apply to a Kind are left at their zero value.
type Event struct {
	// Kind is the condition being reported. Required.
	Kind Kind

	// File and Line are the caller-supplied location, if any.
	File string
	Line int

	// Capacity is the fixed buffer capacity (Truncated) or the requested
	// allocation size (AllocFailed).
	Capacity int

	// Length is the length the composed text would have had.
	Length int

	// Previous is the text being replaced (Overwritten).
	Previous string

	// Message is a short human-readable note.
	Message string

	// Err is the underlying error, if any (CleanupFailed).
	Err error
}

// Reporter receives side-channel events.
//
// Implementations must not block for long and must not assume they are
// called from any particular goroutine.
type Reporter interface {
	Report(ev Event)
}

// ReporterFunc adapts an ordinary function to a Reporter.
type ReporterFunc func(ev Event)

// Report calls f(ev).
func (f ReporterFunc) Report(ev Event) { f(ev) }

// Nop discards every event.
var Nop Reporter = nopReporter{}

type nopReporter struct{}

func (nopReporter) Report(Event) {}

// Multi returns a Reporter that forwards each event to every non-nil
// reporter in order. A panic in one reporter does not stop the others.
func Multi(rs ...Reporter) Reporter {
	out := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type multi []Reporter

func (m multi) Report(ev Event) {
	for _, r := range m {
		Emit(r, ev)
	}
}

// Emit hands ev to r. A nil r is ignored. A panic raised by r is recovered.
func Emit(r Reporter, ev Event) {
	if r == nil {
		return
	}
	defer func() { _ = recover() }()
	r.Report(ev)
}
