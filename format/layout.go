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
	"errors"
	"fmt"
)

// Fragments of the composed text.
const (
	// Fragment separates the message from the file.
	Fragment = ", at "

	// LineSep separates the file from the line number.
	LineSep = ":"

	// Marker is appended wherever text was cut.
	Marker = "..."
)

// Defaults for Layout.
const (
	// DefaultCapacity is the total size of the fixed buffer, terminator
	// included.
	DefaultCapacity = 4096

	// DefaultLineSize is the size of the sub-buffer the line number is
	// rendered into, terminator included.
	DefaultLineSize = 255

	// DefaultMinMessage is the number of message bytes kept even when the
	// location alone would overflow the buffer.
	DefaultMinMessage = 64
)

// ErrLayoutInvalid is returned by Layout.Validate.
var ErrLayoutInvalid = errors.New("format: invalid layout")

// Layout holds the sizes used by the bounded formatter.
type Layout struct {
	// Capacity is the size C of the destination buffer. Content is limited
	// to C-1 bytes.
	Capacity int `yaml:"capacity"`

	// LineSize is the size of the line number sub-buffer. A line number
	// whose decimal form needs LineSize bytes or more is not rendered.
	LineSize int `yaml:"line_size"`

	// MinMessage is the message quota M kept in the overflow path.
	MinMessage int `yaml:"min_message"`
}

// DefaultLayout returns the 4096/255/64 layout.
func DefaultLayout() Layout {
	return Layout{
		Capacity:   DefaultCapacity,
		LineSize:   DefaultLineSize,
		MinMessage: DefaultMinMessage,
	}
}

// Threshold is C - (M + len(Marker)). A location at least this long cannot
// be stored next to the minimum message.
func (l Layout) Threshold() int {
	return l.Capacity - (l.MinMessage + len(Marker))
}

// Validate checks that the layout leaves room for the minimum message and
// its marker, and for at least one line digit.
func (l Layout) Validate() error {
	switch {
	case l.MinMessage < 0:
		return fmt.Errorf("%w: min message %d is negative", ErrLayoutInvalid, l.MinMessage)
	case l.LineSize < 2:
		return fmt.Errorf("%w: line size %d leaves no room for a digit", ErrLayoutInvalid, l.LineSize)
	case l.Threshold() <= 0:
		return fmt.Errorf("%w: capacity %d must exceed min message %d plus %q",
			ErrLayoutInvalid, l.Capacity, l.MinMessage, Marker)
	}
	return nil
}
