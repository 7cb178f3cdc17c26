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

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a side-channel condition. Only the kinds declared in kinds.go
// are valid.
type Kind string

// ErrKindInvalid is returned when a value names no known kind.
var ErrKindInvalid = errors.New("diag: invalid kind")

// Parse accepts the name of a known kind. Surrounding spaces are ignored,
// case does not matter and '-' may be used for '_'.
func Parse(s string) (Kind, error) {
	k := Kind(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if err := Validate(k); err != nil {
		return "", fmt.Errorf("%w: %q", err, s)
	}
	return k, nil
}

// Validate reports whether k is a known kind.
func Validate(k Kind) error {
	if _, ok := known[k]; !ok {
		return ErrKindInvalid
	}
	return nil
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// UnmarshalText implements encoding.TextUnmarshaler through Parse, so kinds
// can be listed in YAML config.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// KindList is a set of kinds selected in config. As a flag.Value it
// accepts comma-separated names and may be repeated.
type KindList []Kind

// String implements flag.Value.
func (l KindList) String() string {
	names := make([]string, len(l))
	for i, k := range l {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

// Set implements flag.Value.
func (l *KindList) Set(s string) error {
	for _, name := range strings.Split(s, ",") {
		k, err := Parse(name)
		if err != nil {
			return err
		}
		*l = append(*l, k)
	}
	return nil
}

// Validate checks every kind of l.
func (l KindList) Validate() error {
	for _, k := range l {
		if err := Validate(k); err != nil {
			return fmt.Errorf("%w: %q", err, string(k))
		}
	}
	return nil
}

// Filter returns a Reporter forwarding to r only events whose kind is in
// kinds. With no kinds, or a nil r, r is returned unchanged.
func Filter(r Reporter, kinds ...Kind) Reporter {
	if r == nil || len(kinds) == 0 {
		return r
	}
	f := filter{next: r, kinds: make(map[Kind]struct{}, len(kinds))}
	for _, k := range kinds {
		f.kinds[k] = struct{}{}
	}
	return f
}

type filter struct {
	next  Reporter
	kinds map[Kind]struct{}
}

func (f filter) Report(ev Event) {
	if _, ok := f.kinds[ev.Kind]; ok {
		Emit(f.next, ev)
	}
}
