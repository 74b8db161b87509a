// Copyright 2025 The Windscribe Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package verify

// Result is the outcome of a verification call. Message is populated only
// on failure and holds the rendered diagnostic of the first failing step.
type Result struct {
	Verified bool
	Message  string
}

// ResultFromError renders err into a Result. A nil err is a successful
// verification.
func ResultFromError(err error) Result {
	if err == nil {
		return Result{Verified: true}
	}
	return Result{Verified: false, Message: err.Error()}
}
