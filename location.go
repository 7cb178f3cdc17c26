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
	"runtime"
	"strconv"
)

// Location is the source position an error is attributed to.
// The zero value means "unknown". Bounded States then write no ", at"
// suffix; Unbounded ones write the bare ", at " fragment.
type Location struct {
	File string
	Line int
}

// Here returns the location of its caller.
func Here() Location {
	return Caller(1)
}

// Caller returns the location skip frames above its caller: Caller(0) is
// the line calling Caller. When the frame cannot be resolved the zero
// Location is returned.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// String returns "file:line", or "" for the zero Location.
func (l Location) String() string {
	if l.File == "" {
		return ""
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}
