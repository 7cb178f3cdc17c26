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

// Package errstate is a per-execution-context error state store for
// middleware abstraction layers.
//
// A fallible operation records why it failed:
//
//	st.SetHere("invalid topic name")
//	return false
//
// and whoever handles the failure reads and clears it:
//
//	if st.IsSet() {
//	    log.Println(st.GetSafe()) // "invalid topic name, at /src/pub.go:42"
//	    st.Reset()
//	}
//
// The store never fails. In Bounded mode (the default) the text lives in a
// fixed buffer and is truncated deterministically, keeping the file and
// line over the message text; in Unbounded mode it is allocated at exactly
// the right size. Handling errors (truncation, overwriting an unread error,
// failed allocations) can be reported through a diag.Reporter.
//
// There is no global state: each goroutine or request owns its State,
// passed explicitly or carried by a context.Context.
package errstate
