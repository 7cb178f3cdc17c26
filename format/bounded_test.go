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
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/errstate/diag"
)

type recorder struct{ events []diag.Event }

func (r *recorder) Report(ev diag.Event) { r.events = append(r.events, ev) }

func (r *recorder) kinds() []diag.Kind {
	out := make([]diag.Kind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}

func format(t *testing.T, in Input, l Layout) (string, []byte, *recorder) {
	t.Helper()
	rec := &recorder{}
	dst := make([]byte, l.Capacity)
	n := Bounded(dst, in, l, rec)
	require.LessOrEqual(t, n, l.Capacity-1)
	for i := n; i < len(dst); i++ {
		require.Zerof(t, dst[i], "byte %d after content must be NUL", i)
	}
	return string(dst[:n]), dst, rec
}

func TestBounded_FastPath(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"full", Input{"bad input", "core.c", 42}, "bad input, at core.c:42"},
		{"empty message", Input{"", "core.c", 42}, ", at core.c:42"},
		{"empty file drops suffix", Input{"bad input", "", 42}, "bad input"},
		{"all empty", Input{"", "", 0}, ""},
		{"zero line", Input{"m", "f.go", 0}, "m, at f.go:0"},
		{"negative line", Input{"m", "f.go", -7}, "m, at f.go:-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			dst := make([]byte, DefaultCapacity)
			n := Bounded(dst, tt.in, DefaultLayout(), rec)
			if got := string(dst[:n]); got != tt.want {
				t.Fatalf("Bounded(%+v) = %q, want %q", tt.in, got, tt.want)
			}
			if c := Compose(tt.in); c != tt.want {
				t.Fatalf("Compose(%+v) = %q, want %q", tt.in, c, tt.want)
			}
			if dst[n] != 0 {
				t.Fatalf("Bounded(%+v) left no terminator at %d", tt.in, n)
			}
			if len(rec.events) != 0 {
				t.Fatalf("Bounded(%+v) reported %v, want nothing", tt.in, rec.kinds())
			}
		})
	}
}

func TestBounded_ClearsPreviousContent(t *testing.T) {
	dst := []byte(strings.Repeat("z", 64))
	n := Bounded(dst, Input{"short", "a.go", 1}, Layout{Capacity: 64, LineSize: 8, MinMessage: 8}, nil)
	assert.Equal(t, "short, at a.go:1", string(dst[:n]))
	assert.Equal(t, make([]byte, 64-n), dst[n:])
}

func TestBounded_EmptyBuffer(t *testing.T) {
	assert.Zero(t, Bounded(nil, Input{"x", "y", 1}, DefaultLayout(), nil))
}

func TestBounded_LineEncodeFailure(t *testing.T) {
	l := Layout{Capacity: 128, LineSize: 4, MinMessage: 8}

	got, _, rec := format(t, Input{"oops", "f.go", 1234}, l)
	assert.Equal(t, "oops, at f.go", got)
	assert.Equal(t, []diag.Kind{diag.LineEncodeFailed}, rec.kinds())

	got, _, rec = format(t, Input{"oops", "f.go", 123}, l)
	assert.Equal(t, "oops, at f.go:123", got)
	assert.Empty(t, rec.events)
}

func TestBounded_MessagePriorityToLocation(t *testing.T) {
	in := Input{Message: strings.Repeat("a", 5000), File: "x.c", Line: 42}

	got, _, rec := format(t, in, DefaultLayout())

	assert.Len(t, got, DefaultCapacity-1)
	assert.True(t, strings.HasSuffix(got, "..., at x.c:42"), "suffix lost: %q", got[len(got)-20:])
	assert.True(t, strings.HasPrefix(got, strings.Repeat("a", 1000)))
	require.Equal(t, []diag.Kind{diag.Truncated}, rec.kinds())
	assert.Equal(t, DefaultCapacity, rec.events[0].Capacity)
	assert.Equal(t, 5000+len(", at x.c:42"), rec.events[0].Length)
}

func TestBounded_ExactFitBoundary(t *testing.T) {
	l := Layout{Capacity: 32, LineSize: 8, MinMessage: 4}
	suffix := ", at f.go:9" // 11 bytes

	// 20 + 11 = 31 = C-1 fits.
	got, _, rec := format(t, Input{strings.Repeat("m", 20), "f.go", 9}, l)
	assert.Equal(t, strings.Repeat("m", 20)+suffix, got)
	assert.Empty(t, rec.events)

	// 21 + 11 = 32 = C does not.
	got, _, rec = format(t, Input{strings.Repeat("m", 21), "f.go", 9}, l)
	assert.Equal(t, strings.Repeat("m", 17)+"..."+suffix, got)
	assert.Equal(t, []diag.Kind{diag.Truncated}, rec.kinds())
}

func TestBounded_LocationTooLarge(t *testing.T) {
	l := Layout{Capacity: 128, LineSize: 8, MinMessage: 16}
	file := strings.Repeat("d/", 96) + "name.go" // 199 bytes
	msg := "the quick brown fox jumps over the lazy dog"

	got, _, rec := format(t, Input{msg, file, 42}, l)

	assert.Len(t, got, 127)
	assert.True(t, strings.HasPrefix(got, msg[:16]+"..., at ..."), got)
	assert.True(t, strings.HasSuffix(got, "name.go:42"), got)
	assert.Equal(t, []diag.Kind{diag.Truncated}, rec.kinds())
}

func TestBounded_LocationTooLarge_ShortMessageKeepsNoMarker(t *testing.T) {
	l := Layout{Capacity: 64, LineSize: 8, MinMessage: 16}
	file := strings.Repeat("f", 100)

	got, _, _ := format(t, Input{"tiny", file, 3}, l)

	assert.True(t, strings.HasPrefix(got, "tiny, at ..."), got)
	assert.True(t, strings.HasSuffix(got, "fff:3"), got)
	assert.Len(t, got, 63)
}

func TestBounded_LocationShortenedStepByStep(t *testing.T) {
	file := strings.Repeat("p", 30)

	// Room for a shortened file and the line.
	got, _, _ := format(t, Input{"hello world", file, 7}, Layout{Capacity: 20, LineSize: 8, MinMessage: 4})
	assert.Equal(t, "hell..., at ...pp:7", got)

	// No room for any location at all: the message quota survives.
	got, _, _ = format(t, Input{"hello world", file, 7}, Layout{Capacity: 14, LineSize: 8, MinMessage: 4})
	assert.Equal(t, "hell...", got)

	// Room for ", at ..." plus a little path, but not for the line.
	got, _, _ = format(t, Input{"hello world", file, 7}, Layout{Capacity: 17, LineSize: 8, MinMessage: 4})
	assert.Equal(t, "hell..., at ...p", got)
}

func TestBounded_NeverSplitsRunes(t *testing.T) {
	l := Layout{Capacity: 64, LineSize: 8, MinMessage: 8}
	msg := strings.Repeat("é", 100)

	got, _, _ := format(t, Input{msg, "f.go", 1}, l)
	assert.True(t, utf8.ValidString(got), "%q", got)
	assert.True(t, strings.HasSuffix(got, "..., at f.go:1"))

	file := strings.Repeat("ü", 100)
	got, _, _ = format(t, Input{msg, file, 1}, l)
	assert.True(t, utf8.ValidString(got), "%q", got)
	assert.True(t, strings.HasSuffix(got, "ü:1"))
}

// Exhaustive sweep over small inputs: content stays inside C-1, the fast
// path is exact, and the location survives whenever overhead < threshold.
func TestBounded_Properties(t *testing.T) {
	l := Layout{Capacity: 48, LineSize: 6, MinMessage: 8}
	for ml := 0; ml <= 80; ml += 3 {
		for fl := 0; fl <= 60; fl += 4 {
			for _, line := range []int{0, 7, 12345, -99999} {
				in := Input{strings.Repeat("m", ml), strings.Repeat("f", fl), line}
				dst := make([]byte, l.Capacity)
				n := Bounded(dst, in, l, nil)
				require.LessOrEqual(t, n, l.Capacity-1)
				require.Zero(t, dst[n])

				var lb [maxLineDigits]byte
				lineStr, _ := renderLine(lb[:0], line, l.LineSize)
				overhead := suffixLen(in.File, lineStr)
				got := string(dst[:n])
				switch {
				case ml+overhead < l.Capacity:
					want := in.Message
					if fl > 0 {
						want += Fragment + in.File
						if len(lineStr) > 0 {
							want += LineSep + string(lineStr)
						}
					}
					require.Equal(t, want, got)
				case overhead < l.Threshold():
					require.Len(t, got, l.Capacity-1)
					if fl > 0 {
						require.True(t, strings.HasSuffix(got, Fragment+in.File+string(writeLineForTest(lineStr))), got)
					}
				case ml > l.MinMessage:
					require.True(t, strings.HasPrefix(got, in.Message[:l.MinMessage]+Marker), got)
				default:
					require.True(t, strings.HasPrefix(got, in.Message+Fragment), got)
				}
			}
		}
	}
}

func writeLineForTest(line []byte) []byte {
	if len(line) == 0 {
		return nil
	}
	return append([]byte(LineSep), line...)
}

func TestLayout_Validate(t *testing.T) {
	require.NoError(t, DefaultLayout().Validate())

	bad := []Layout{
		{Capacity: 10, LineSize: 8, MinMessage: -1},
		{Capacity: 128, LineSize: 1, MinMessage: 8},
		{Capacity: 67, LineSize: 8, MinMessage: 64},
		{Capacity: 0, LineSize: 8, MinMessage: 0},
	}
	for _, l := range bad {
		assert.ErrorIs(t, l.Validate(), ErrLayoutInvalid, "%+v", l)
	}
	assert.Equal(t, DefaultCapacity-DefaultMinMessage-len(Marker), DefaultLayout().Threshold())
}
