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
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Mode selects the formatting strategy of a State.
type Mode int

const (
	// Bounded stores the text in a fixed buffer and truncates on overflow.
	// It is the zero value.
	Bounded Mode = iota

	// Unbounded allocates exactly what each text needs and never truncates.
	Unbounded
)

// ErrModeInvalid is returned when a value cannot be parsed as a Mode.
var ErrModeInvalid = errors.New("errstate: invalid mode")

var (
	_ encoding.TextMarshaler   = (*Mode)(nil)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

// ParseMode accepts "bounded" and "unbounded", case-insensitively and with
// surrounding spaces trimmed.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded":
		return Bounded, nil
	case "unbounded":
		return Unbounded, nil
	default:
		return Bounded, ErrModeInvalid
	}
}

// String returns "bounded" or "unbounded".
func (m Mode) String() string {
	switch m {
	case Bounded:
		return "bounded"
	case Unbounded:
		return "unbounded"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Bounded && m != Unbounded {
		return nil, ErrModeInvalid
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
