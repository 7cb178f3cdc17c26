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

// Package adapter converts between an errstate.State and the error
// representations used at API boundaries: Go errors and google.rpc.Status.
package adapter

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/errstate"
)

// Domain is the ErrorInfo domain attached to statuses built from a State.
const Domain = "errstate.dirpx.dev"

// Reason is the ErrorInfo reason attached to statuses built from a State.
const Reason = "ERROR_STATE_SET"

// FromError stores err's text in st at loc. It returns false, leaving st
// untouched, when err is nil.
func FromError(st *errstate.State, err error, loc errstate.Location) bool {
	if err == nil || st == nil {
		return false
	}
	st.SetAt(err.Error(), loc)
	return true
}

// ToStatusProto projects the stored error into a google.rpc.Status with the
// given code. The message is the composed text; an ErrorInfo and a
// DebugInfo detail are attached. It returns nil when no error is set.
//
// Details that fail to pack are skipped; the status itself is always
// returned.
func ToStatusProto(st *errstate.State, code codes.Code) *spb.Status {
	if st == nil {
		return nil
	}
	text, ok := st.Get()
	if !ok {
		return nil
	}
	p := &spb.Status{Code: int32(code), Message: text}

	info := &errdetails.ErrorInfo{
		Reason:   Reason,
		Domain:   Domain,
		Metadata: map[string]string{"mode": st.Mode().String()},
	}
	if a, err := anypb.New(info); err == nil {
		p.Details = append(p.Details, a)
	}
	if a, err := anypb.New(&errdetails.DebugInfo{Detail: text}); err == nil {
		p.Details = append(p.Details, a)
	}
	return p
}

// TextFromStatusProto returns the error state text carried by p, if p was
// built by ToStatusProto.
func TextFromStatusProto(p *spb.Status) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, a := range p.GetDetails() {
		var dbg errdetails.DebugInfo
		if a.MessageIs(&dbg) && a.UnmarshalTo(&dbg) == nil {
			return dbg.GetDetail(), true
		}
	}
	return "", false
}
