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

// Package io provides hash engines that read their content from disk.
package io

import (
	"fmt"
	"io"
	"os"

	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/digests"
	hashengines "github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/engines"
)

// DefaultChunkSize is the read size used when none is configured. It matches
// the buffer the signing pipeline has always used, so digests are computed
// over identical read patterns on both sides.
const DefaultChunkSize = 64 * 1024

var _ hashengines.HashEngine = (*FileHasher)(nil)

// FileHasher hashes an entire file by streaming it into an inner
// StreamingHashEngine. The file is read exactly once, in bounded chunks,
// and is never loaded into memory whole. A zero-byte file is valid input
// and produces the engine's empty digest.
type FileHasher struct {
	path      string
	engine    hashengines.StreamingHashEngine
	chunkSize int
}

// NewFileHasher constructs a FileHasher over path using the given content
// engine. chunkSize is the number of bytes read per chunk; 0 selects
// DefaultChunkSize.
func NewFileHasher(path string, engine hashengines.StreamingHashEngine, chunkSize int) (*FileHasher, error) {
	if path == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}
	if engine == nil {
		return nil, fmt.Errorf("content engine must not be nil")
	}
	if chunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}

	return &FileHasher{
		path:      path,
		engine:    engine,
		chunkSize: chunkSize,
	}, nil
}

// DigestName returns the inner engine's algorithm name.
func (h *FileHasher) DigestName() string {
	return h.engine.DigestName()
}

// DigestSize is delegated to the inner engine.
func (h *FileHasher) DigestSize() int {
	return h.engine.DigestSize()
}

// Compute opens the file, streams it through the inner engine, and returns
// the resulting digest. The file handle is closed on every return path.
//
// Open and read failures are wrapped with %w so callers can recover the
// underlying *fs.PathError and distinguish the failing operation.
func (h *FileHasher) Compute() (digests.Digest, error) {
	h.engine.Reset(nil)

	f, err := os.Open(h.path)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file for hashing: %w", err)
	}
	defer f.Close()

	buf := make([]byte, h.chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.engine.Update(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return digests.Digest{}, fmt.Errorf("read file for hashing: %w", err)
		}
	}

	d, err := h.engine.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}
	return d, nil
}
