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

package io

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/engines/memory"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestFileHasher_MatchesOneShotSHA256(t *testing.T) {
	content := bytes.Repeat([]byte("windscribe"), 10000)
	path := writeFile(t, "blob.bin", content)

	h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher failed: %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() failed: %v", err)
	}

	want := sha256.Sum256(content)
	if d.Hex() != hex.EncodeToString(want[:]) {
		t.Errorf("Streamed digest = %s, want %s", d.Hex(), hex.EncodeToString(want[:]))
	}
}

func TestFileHasher_ChunkSizeDoesNotChangeDigest(t *testing.T) {
	content := []byte("chunk boundary independence check, longer than the smallest chunk")
	path := writeFile(t, "blob.bin", content)

	want := sha256.Sum256(content)
	for _, chunkSize := range []int{1, 7, 64, len(content), len(content) + 1, DefaultChunkSize} {
		h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), chunkSize)
		if err != nil {
			t.Fatalf("NewFileHasher(chunkSize=%d) failed: %v", chunkSize, err)
		}
		d, err := h.Compute()
		if err != nil {
			t.Fatalf("Compute() with chunk size %d failed: %v", chunkSize, err)
		}
		if d.Hex() != hex.EncodeToString(want[:]) {
			t.Errorf("Chunk size %d: digest = %s, want %s", chunkSize, d.Hex(), hex.EncodeToString(want[:]))
		}
	}
}

func TestFileHasher_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.bin", nil)

	h, err := NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher failed: %v", err)
	}

	d, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() on empty file failed: %v", err)
	}

	want := sha256.Sum256(nil)
	if d.Hex() != hex.EncodeToString(want[:]) {
		t.Errorf("Empty-file digest = %s, want %s", d.Hex(), hex.EncodeToString(want[:]))
	}
}

func TestFileHasher_MissingFile(t *testing.T) {
	h, err := NewFileHasher(filepath.Join(t.TempDir(), "missing.bin"), memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewFileHasher failed: %v", err)
	}

	_, err = h.Compute()
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Fatalf("Expected *fs.PathError in chain, got %T: %v", err, err)
	}
	if pathErr.Op != "open" {
		t.Errorf("PathError.Op = %q, want %q", pathErr.Op, "open")
	}
}

func TestNewFileHasher_Validation(t *testing.T) {
	engine := memory.NewSHA256Engine(nil)

	if _, err := NewFileHasher("", engine, 0); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
	if _, err := NewFileHasher("some/path", nil, 0); err == nil {
		t.Error("Expected error for nil engine, got nil")
	}
	if _, err := NewFileHasher("some/path", engine, -1); err == nil {
		t.Error("Expected error for negative chunk size, got nil")
	}
}
