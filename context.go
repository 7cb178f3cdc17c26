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

import "context"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
//
// This is how a State follows one unit of work (a request, a job) through
// call chains that do not pass it explicitly. The State is still owned by
// whoever runs that unit of work; do not hand the context to goroutines
// that outlive it or run concurrently with it.
func NewContext(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the State carried by ctx, if any.
func FromContext(ctx context.Context) (*State, bool) {
	s, ok := ctx.Value(ctxKey{}).(*State)
	return s, ok && s != nil
}

// Factory creates States with a fixed, pre-validated configuration. It is
// the building block for per-request states in the transport adapters.
type Factory func() *State

// NewFactory validates opts once and returns a Factory applying them.
func NewFactory(opts ...Option) (Factory, error) {
	if _, err := New(opts...); err != nil {
		return nil, err
	}
	return func() *State { return MustNew(opts...) }, nil
}
