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
	"unicode/utf8"
)

// Input is what a caller supplies when setting an error.
type Input struct {
	Message string
	File    string
	Line    int
}

// maxLineDigits fits any int64 in base 10, sign included.
const maxLineDigits = 20

// renderLine appends the decimal form of line to buf. The result is
// rejected when it would not fit a sub-buffer of size together with its
// terminator.
func renderLine(buf []byte, line, size int) ([]byte, bool) {
	out := strconv.AppendInt(buf, int64(line), 10)
	if len(out) >= size {
		return buf[:0], false
	}
	return out, true
}

// suffixLen is the length of ", at <file>[:<line>]", or 0 without a file.
func suffixLen(file string, line []byte) int {
	if file == "" {
		return 0
	}
	n := len(Fragment) + len(file)
	if len(line) > 0 {
		n += len(LineSep) + len(line)
	}
	return n
}

// writeSuffix copies ", at <file>[:<line>]" into dst. dst must be large
// enough; see suffixLen.
func writeSuffix(dst []byte, file string, line []byte) int {
	if file == "" {
		return 0
	}
	n := copy(dst, Fragment)
	n += copy(dst[n:], file)
	n += writeLine(dst[n:], line)
	return n
}

func writeLine(dst []byte, line []byte) int {
	if len(line) == 0 {
		return 0
	}
	n := copy(dst, LineSep)
	n += copy(dst[n:], line)
	return n
}

// head returns the longest prefix of s not longer than n bytes that does
// not end inside a UTF-8 sequence.
func head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// tail returns the longest suffix of s not longer than n bytes that does
// not start inside a UTF-8 sequence.
func tail(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	i := len(s) - n
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return s[i:]
}

// Len returns the exact length of the untruncated composition of in.
func Len(in Input) int {
	var lb [maxLineDigits]byte
	return len(in.Message) + suffixLen(in.File, strconv.AppendInt(lb[:0], int64(in.Line), 10))
}

// Compose returns the untruncated composition of in as a string.
func Compose(in Input) string {
	var lb [maxLineDigits]byte
	line := strconv.AppendInt(lb[:0], int64(in.Line), 10)
	buf := make([]byte, len(in.Message)+suffixLen(in.File, line))
	n := copy(buf, in.Message)
	writeSuffix(buf[n:], in.File, line)
	return string(buf)
}
