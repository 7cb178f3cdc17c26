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
	"flag"
	"io"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"truncated", Truncated, false},
		{" Cleanup-Failed ", CleanupFailed, false},
		{"ALLOC_FAILED", AllocFailed, false},
		{"line-encode-failed", LineEncodeFailed, false},
		{"", "", true},
		{"exploded", "", true},
		{"trunc!ated", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrKindInvalid) {
					t.Fatalf("Parse(%q) error = %v, want ErrKindInvalid", tt.in, err)
				}
				if got != "" {
					t.Fatalf("Parse(%q) on error = %q, want empty kind", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKinds_AllValid(t *testing.T) {
	seen := map[Kind]bool{}
	for _, k := range Kinds() {
		if err := Validate(k); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", k, err)
		}
		if seen[k] {
			t.Fatalf("duplicate kind %q", k)
		}
		seen[k] = true
	}
	if err := Validate("truncated_twice"); !errors.Is(err, ErrKindInvalid) {
		t.Fatalf("Validate(unknown) error = %v, want ErrKindInvalid", err)
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("  LINE-ENCODE-FAILED ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != LineEncodeFailed {
		t.Fatalf("UnmarshalText() = %q, want %q", k, LineEncodeFailed)
	}

	bad := Overwritten
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
	if bad != Overwritten {
		t.Fatalf("UnmarshalText() changed the kind on error: %q", bad)
	}
}

func TestKindList_Flag(t *testing.T) {
	var l KindList
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&l, "kinds", "")

	if err := fs.Parse([]string{"-kinds=truncated,Overwritten", "-kinds", "alloc-failed"}); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	want := KindList{Truncated, Overwritten, AllocFailed}
	if !reflect.DeepEqual(l, want) {
		t.Fatalf("kinds = %v, want %v", l, want)
	}
	if got := l.String(); got != "truncated,overwritten,alloc_failed" {
		t.Fatalf("String() = %q", got)
	}

	if err := fs.Parse([]string{"-kinds=truncated,nope"}); err == nil {
		t.Fatalf("Parse() expected error for unknown kind")
	}
}

func TestKindList_Validate(t *testing.T) {
	if err := (KindList{Truncated, CleanupFailed}).Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if err := (KindList{Truncated, "Truncated"}).Validate(); !errors.Is(err, ErrKindInvalid) {
		t.Fatalf("Validate() error = %v, want ErrKindInvalid", err)
	}
}

func TestFilter(t *testing.T) {
	rec := &recorder{}
	r := Filter(rec, Truncated, CleanupFailed)

	for _, k := range Kinds() {
		r.Report(Event{Kind: k})
	}

	if len(rec.events) != 2 {
		t.Fatalf("forwarded %d events, want 2", len(rec.events))
	}
	if rec.events[0].Kind != Truncated || rec.events[1].Kind != CleanupFailed {
		t.Fatalf("forwarded %q and %q", rec.events[0].Kind, rec.events[1].Kind)
	}

	if got := Filter(rec); got != Reporter(rec) {
		t.Fatalf("Filter without kinds must return the reporter unchanged")
	}
	if got := Filter(nil, Truncated); got != nil {
		t.Fatalf("Filter(nil) = %v, want nil", got)
	}
}
