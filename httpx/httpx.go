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

package httpx

import (
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/errstate"
	"dirpx.dev/errstate/adapter"
)

// Middleware runs every request with a fresh State from newState, carried
// in the request context, and resets it once next returns.
func Middleware(newState errstate.Factory, next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		st := newState()
		defer st.Reset()
		next.ServeHTTP(rw, r.WithContext(errstate.NewContext(r.Context(), st)))
	})
}

// Writer renders an error state as a JSON google.rpc.Status body.
type Writer struct {
	// HTTPStatus is the response status. Zero means 500.
	HTTPStatus int
	// Code is the google.rpc code put in the body. Zero (OK) means Internal.
	Code codes.Code
}

// Write writes the stored error of st and reports whether it did. Nothing
// is written when st is unset.
//
// The body is produced with protojson so that field names and the Any
// details follow the canonical JSON mapping.
func (w Writer) Write(rw http.ResponseWriter, st *errstate.State) bool {
	c := w.Code
	if c == codes.OK {
		c = codes.Internal
	}
	p := adapter.ToStatusProto(st, c)
	if p == nil {
		return false
	}
	hs := w.HTTPStatus
	if hs == 0 {
		hs = http.StatusInternalServerError
	}

	b, err := protojson.Marshal(p)
	if err != nil {
		// Fall back to the bare text; the details are what failed.
		rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
		rw.WriteHeader(hs)
		_, _ = rw.Write([]byte(p.GetMessage()))
		return true
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(hs)
	_, _ = rw.Write(b)
	return true
}

// WriteFromContext is Write with the State carried by r's context.
func (w Writer) WriteFromContext(rw http.ResponseWriter, r *http.Request) bool {
	st, ok := errstate.FromContext(r.Context())
	if !ok {
		return false
	}
	return w.Write(rw, st)
}
