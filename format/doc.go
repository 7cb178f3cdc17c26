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

// Package format composes error text of the form
//
//	<message>, at <file>:<line>
//
// under two memory regimes.
//
// Bounded writes into a caller-owned buffer of fixed capacity C. The
// content never exceeds C-1 bytes and is always followed by a NUL byte.
// When the input does not fit, the message is shortened first so that the
// file/line context survives; only when the location itself is too large
// is the location shortened as well (keeping the end of the path and the
// line number, which is the part that identifies the call site).
//
// Unbounded computes the exact composed length, obtains exactly that many
// bytes (plus the terminator) from an Allocator and never truncates.
//
// The ", at <file>" suffix is omitted entirely when file is empty, in both
// regimes. Neither formatter fails: every irregular condition is reported
// through a diag.Reporter and absorbed.
package format
