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

// Package hashengines defines the interfaces for computing content digests.
//
// The core HashEngine interface covers one-shot digest computation; the
// Streaming interface adds incremental feeding of data. File hashing in this
// project is always streamed, so the verifier works with the combined
// StreamingHashEngine.
package hashengines

import (
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/digests"
)

// HashEngine computes a cryptographic digest.
type HashEngine interface {
	// Compute finalizes the hash computation and returns the resulting
	// digest. Returns an error if the computation fails.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the hash algorithm. The
	// name must include any parameter that influences the output.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. It must match the Size() of the Digest returned by Compute.
	DigestSize() int
}

// Streaming feeds data incrementally into a hash engine.
type Streaming interface {
	// Update appends additional bytes to the data being hashed.
	Update(data []byte)

	// Reset clears the hash state and optionally seeds it with new data.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for incremental
// hashing.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
