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

// Formatter conditions
//
// These are raised while composing the error text. None of them is a
// failure from the caller's point of view.
const (
	// Truncated indicates that the composed text did not fit into the
	// fixed-capacity buffer and was shortened.
	// Events carry Capacity and Length (the length that was wanted).
	Truncated Kind = "truncated"

	// LineEncodeFailed indicates that the line number could not be rendered
	// into its fixed sub-buffer. The ":<line>" suffix is dropped.
	LineEncodeFailed Kind = "line_encode_failed"

	// AllocFailed indicates that the allocator refused the exact-size
	// buffer in unbounded mode. The state is left unset.
	AllocFailed Kind = "alloc_failed"
)

// State conditions
//
// These are raised by the store or by helpers working on top of it.
const (
	// Overwritten indicates that a new error replaced one that was never
	// reset. Events carry the replaced text in Previous.
	Overwritten Kind = "overwritten"

	// CleanupFailed indicates that a cleanup step failed while a prior
	// failure was already being handled. Such errors are reported here and
	// never stored, so the original error survives.
	CleanupFailed Kind = "cleanup_failed"
)

// Kinds returns all known kinds in a stable order.
func Kinds() []Kind {
	return []Kind{Truncated, LineEncodeFailed, AllocFailed, Overwritten, CleanupFailed}
}

var known = func() map[Kind]struct{} {
	m := make(map[Kind]struct{}, len(Kinds()))
	for _, k := range Kinds() {
		m[k] = struct{}{}
	}
	return m
}()
