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
	"dirpx.dev/errstate/diag"
)

// Bounded composes in into dst and returns the number of content bytes.
//
// len(dst) is the capacity C; l.Capacity is ignored here so that callers
// may pass any buffer. dst is cleared first, so dst[n] and everything after
// it is NUL on return. The result never exceeds C-1 bytes.
//
// Priority when the composition does not fit:
//
//  1. the location (", at <file>:<line>") is kept whole and the message is
//     cut, followed by Marker;
//  2. if the location is so long that not even l.MinMessage bytes of
//     message would fit next to it, the message is cut to l.MinMessage
//     bytes plus Marker and the location is shortened to
//     ", at ...<end of file>:<line>".
//
// Truncation and unrenderable line numbers are reported to r.
func Bounded(dst []byte, in Input, l Layout, r diag.Reporter) int {
	c := len(dst)
	if c == 0 {
		return 0
	}
	clear(dst)

	var lb [maxLineDigits]byte
	line, ok := renderLine(lb[:0], in.Line, l.LineSize)
	if !ok {
		diag.Emit(r, diag.Event{
			Kind:     diag.LineEncodeFailed,
			File:     in.File,
			Line:     in.Line,
			Capacity: l.LineSize,
		})
	}

	overhead := suffixLen(in.File, line)
	total := len(in.Message) + overhead
	if total < c {
		n := copy(dst, in.Message)
		n += writeSuffix(dst[n:], in.File, line)
		return n
	}

	diag.Emit(r, diag.Event{
		Kind:     diag.Truncated,
		File:     in.File,
		Line:     in.Line,
		Capacity: c,
		Length:   total,
	})

	limit := c - 1
	threshold := c - (l.MinMessage + len(Marker))
	if overhead < threshold {
		keep := limit - overhead - len(Marker)
		n := copy(dst, head(in.Message, keep))
		n += copy(dst[n:], Marker)
		n += writeSuffix(dst[n:], in.File, line)
		return n
	}

	out := dst[:limit]
	n := copy(out, head(in.Message, l.MinMessage))
	if n < len(in.Message) {
		n += copy(out[n:], Marker)
	}
	n += writeShortLocation(out[n:], in.File, line)
	return n
}

// writeShortLocation fills dst with as much of the location as fits,
// preferring the end of the file path and the line number. Nothing is
// written when not even ", at ..." fits.
func writeShortLocation(dst []byte, file string, line []byte) int {
	if file == "" {
		return 0
	}
	lineLen := 0
	if len(line) > 0 {
		lineLen = len(LineSep) + len(line)
	}
	room := len(dst) - len(Fragment)
	if room-lineLen < len(Marker) {
		// Drop the line before giving up on the file.
		line, lineLen = nil, 0
	}
	if room-lineLen < len(Marker) {
		return 0
	}
	if len(file) <= room-lineLen {
		n := copy(dst, Fragment)
		n += copy(dst[n:], file)
		n += writeLine(dst[n:], line)
		return n
	}
	n := copy(dst, Fragment)
	n += copy(dst[n:], Marker)
	n += copy(dst[n:], tail(file, room-lineLen-len(Marker)))
	n += writeLine(dst[n:], line)
	return n
}
