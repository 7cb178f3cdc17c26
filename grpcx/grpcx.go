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

// Package grpcx gives every gRPC call its own error state.
//
// The interceptors create a State per call, put it into the call context
// (errstate.FromContext finds it) and reset it when the call returns. When
// a handler fails and the state holds an error, the gRPC status is built
// from the state: its message is the composed text and its details carry
// ErrorInfo and DebugInfo (see adapter.ToStatusProto).
package grpcx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/errstate"
	"dirpx.dev/errstate/adapter"
)

// CodeFn picks the gRPC code for a failed call whose state is set.
type CodeFn func(err error) codes.Code

// Option configures the interceptors.
type Option func(*options)

type options struct {
	code CodeFn
}

// WithCodeFn overrides the code used for statuses built from the state.
// The default is codes.Internal.
func WithCodeFn(fn CodeFn) Option {
	return func(o *options) {
		if fn != nil {
			o.code = fn
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{code: func(error) codes.Code { return codes.Internal }}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// UnaryServerInterceptor returns an interceptor that runs each call with a
// fresh State from newState.
//
// Errors that already are gRPC statuses, and errors returned while the
// state is unset, are passed through unchanged.
func UnaryServerInterceptor(newState errstate.Factory, opts ...Option) grpc.UnaryServerInterceptor {
	o := buildOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		st := newState()
		defer st.Reset()

		resp, err := handler(errstate.NewContext(ctx, st), req)
		if err == nil {
			return resp, nil
		}
		return nil, o.translate(st, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(newState errstate.Factory, opts ...Option) grpc.StreamServerInterceptor {
	o := buildOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		st := newState()
		defer st.Reset()

		err := handler(srv, &stateStream{ServerStream: ss, ctx: errstate.NewContext(ss.Context(), st)})
		if err == nil {
			return nil
		}
		return o.translate(st, err)
	}
}

func (o options) translate(st *errstate.State, err error) error {
	if _, ok := gstatus.FromError(err); ok {
		return err
	}
	p := adapter.ToStatusProto(st, o.code(err))
	if p == nil {
		return err
	}
	return gstatus.FromProto(p).Err()
}

// stateStream overrides the context of a ServerStream.
type stateStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *stateStream) Context() context.Context { return s.ctx }

// ExtractText pulls the error state text out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractText(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return "", false
	}
	return adapter.TextFromStatusProto(st.Proto())
}
