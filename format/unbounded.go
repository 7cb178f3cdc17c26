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

package format

import (
	"strconv"

	"dirpx.dev/errstate/diag"
)

// Allocator returns a zeroed buffer of exactly n bytes, or nil when the
// memory cannot be provided.
type Allocator func(n int) []byte

// HeapAllocator allocates from the Go heap. It never returns nil.
func HeapAllocator(n int) []byte { return make([]byte, n) }

// LimitAllocator returns an Allocator refusing requests above max bytes.
func LimitAllocator(max int) Allocator {
	return func(n int) []byte {
		if n > max {
			return nil
		}
		return make([]byte, n)
	}
}

// Unbounded allocates exactly the composed length plus one byte through
// alloc and composes in into them. The returned slice holds the content
// only; its backing array has the NUL terminator right after it.
//
// Unlike Bounded, the ", at " fragment is always written. Without a file
// the result is "<message>, at " and the line is left out.
//
// When alloc refuses (returns nil or a short buffer) the result is nil,
// false and an AllocFailed event is reported to r. A nil alloc means
// HeapAllocator.
func Unbounded(in Input, alloc Allocator, r diag.Reporter) ([]byte, bool) {
	if alloc == nil {
		alloc = HeapAllocator
	}

	var lb [maxLineDigits]byte
	line := strconv.AppendInt(lb[:0], int64(in.Line), 10)
	n := len(in.Message) + dynamicSuffixLen(in.File, line)

	buf := alloc(n + 1)
	if len(buf) < n+1 {
		diag.Emit(r, diag.Event{
			Kind:     diag.AllocFailed,
			File:     in.File,
			Line:     in.Line,
			Capacity: n + 1,
			Length:   n,
		})
		return nil, false
	}

	w := copy(buf, in.Message)
	w += writeDynamicSuffix(buf[w:], in.File, line)
	buf[w] = 0
	return buf[:w], true
}

func dynamicSuffixLen(file string, line []byte) int {
	if file == "" {
		return len(Fragment)
	}
	return suffixLen(file, line)
}

func writeDynamicSuffix(dst []byte, file string, line []byte) int {
	if file == "" {
		return copy(dst, Fragment)
	}
	return writeSuffix(dst, file, line)
}
