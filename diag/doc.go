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

// Package diag is the side channel of the error state store.
//
// The store never fails its callers: truncation, overwriting an error that
// nobody looked at, failed allocations and unrenderable line numbers are all
// absorbed. What the store can do is tell somebody about it. Every such
// condition is described by an Event carrying a Kind, and is handed to a
// Reporter.
//
// Reporters are best effort:
//
//   - a nil Reporter is the same as Nop;
//   - errors returned by the underlying logger are dropped;
//   - a panicking Reporter is recovered by Emit.
//
// The package ships a go-kit logger backed reporter (NewLogReporter), a
// Prometheus counter backed reporter (NewMetrics), a fan-out (Multi) and a
// per-kind Filter.
package diag
