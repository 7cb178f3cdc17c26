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

// Package guard turns failures of constructors and destructors into error
// state.
//
// A constructor or destructor may fail by returning an error or by
// panicking. Construct and Destroy run it, recover a panic, store a
// descriptive text in the caller's errstate.State and hand back a *Error so
// the caller can take its failure action.
//
// A destructor that fails while the caller is already unwinding from an
// earlier failure must not clobber the error describing that earlier
// failure. DestroyWithinFailure therefore reports such failures to the side
// channel as diag.CleanupFailed and never touches the state.
package guard

import (
	"errors"
	"fmt"

	"dirpx.dev/errstate"
	"dirpx.dev/errstate/diag"
)

// Kind tells which step failed.
type Kind int

const (
	// KindConstruct is a failed constructor.
	KindConstruct Kind = iota + 1
	// KindDestroy is a failed destructor.
	KindDestroy
	// KindCleanup is a destructor that failed while handling another failure.
	KindCleanup
)

// String returns "construct", "destroy" or "cleanup".
func (k Kind) String() string {
	switch k {
	case KindConstruct:
		return "construct"
	case KindDestroy:
		return "destroy"
	case KindCleanup:
		return "cleanup"
	default:
		return "unknown"
	}
}

// Error describes a guarded step that failed.
type Error struct {
	Kind Kind
	// Type is the name of the type being constructed or destroyed.
	Type string
	// Cause is the returned error, or the recovered panic value as an error.
	Cause error
	// Panicked reports whether Cause comes from a recovered panic.
	Panicked bool
}

// Error implements the built-in error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return describe(e.Kind, e.Type, e.Cause, e.Panicked)
}

// Unwrap returns the cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Construct runs fn and returns its value. When fn returns an error or
// panics, the failure is stored in st at loc and returned as a *Error; the
// returned value is then the zero T. A nil st is allowed.
func Construct[T any](st *errstate.State, loc errstate.Location, typeName string, fn func() (T, error)) (T, error) {
	var zero T
	v, panicked, cause := call(fn)
	if cause == nil {
		return v, nil
	}
	e := &Error{Kind: KindConstruct, Type: typeName, Cause: cause, Panicked: panicked}
	if st != nil {
		st.SetAt(e.Error(), loc)
	}
	return zero, e
}

// Destroy runs fn and stores a failure in st at loc. It returns nil or a
// *Error. A nil st is allowed.
func Destroy(st *errstate.State, loc errstate.Location, typeName string, fn func() error) error {
	_, panicked, cause := call(func() (struct{}, error) { return struct{}{}, fn() })
	if cause == nil {
		return nil
	}
	e := &Error{Kind: KindDestroy, Type: typeName, Cause: cause, Panicked: panicked}
	if st != nil {
		st.SetAt(e.Error(), loc)
	}
	return e
}

// DestroyWithinFailure runs fn while a failure is already being handled.
// A failure is reported to r as diag.CleanupFailed and otherwise dropped.
func DestroyWithinFailure(r diag.Reporter, loc errstate.Location, typeName string, fn func() error) {
	_, panicked, cause := call(func() (struct{}, error) { return struct{}{}, fn() })
	if cause == nil {
		return
	}
	e := &Error{Kind: KindCleanup, Type: typeName, Cause: cause, Panicked: panicked}
	diag.Emit(r, diag.Event{
		Kind:    diag.CleanupFailed,
		File:    loc.File,
		Line:    loc.Line,
		Message: e.Error(),
		Err:     cause,
	})
}

// CheckIdentifiersMatch compares the implementation identifier an element
// was created by with the one expected by the caller. On mismatch it stores
// a description in st at loc and returns false.
func CheckIdentifiersMatch(st *errstate.State, loc errstate.Location, element, got, want string) bool {
	if got == want {
		return true
	}
	if st != nil {
		st.Setf(loc, "%s implementation '%s' does not match expected implementation '%s'", element, got, want)
	}
	return false
}

func call[T any](fn func() (T, error)) (v T, panicked bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			if re, ok := r.(error); ok {
				err = re
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	v, err = fn()
	return v, false, err
}

func describe(k Kind, typeName string, cause error, panicked bool) string {
	what := "panic"
	if !panicked {
		what = fmt.Sprintf("error %T", rootOf(cause))
	}
	switch k {
	case KindConstruct:
		return fmt.Sprintf("caught %s constructing %s: %v", what, typeName, cause)
	case KindDestroy:
		return fmt.Sprintf("caught %s in destructor of %s: %v", what, typeName, cause)
	default:
		return fmt.Sprintf("caught %s in destructor of %s while handling a failure: %v", what, typeName, cause)
	}
}

// rootOf returns the innermost error of a single-wrap chain.
func rootOf(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
