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

// Package sidecar locates, reads, and writes detached signature files.
//
// A signature for /a/b/prog.exe lives at /a/b/signatures/prog.sig: a
// "signatures" directory next to the target, same stem, ".sig" extension.
// The derivation is a pure function of the target path and must stay exact
// for interoperability with signatures already on disk.
package sidecar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DirName is the sidecar directory created next to signed targets.
	DirName = "signatures"

	// Ext is the signature file extension.
	Ext = ".sig"

	// maxRead caps how much of a signature file is read. Generous headroom
	// over any real signature size; anything longer is malformed anyway.
	maxRead = 64 * 1024
)

// SignaturePath derives the sidecar signature path for target. It does not
// touch the filesystem.
func SignaturePath(target string) string {
	base := filepath.Base(target)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(target), DirName, stem+Ext)
}

// SizeError reports a signature file whose length differs from the size the
// key geometry requires. It is distinct from an unreadable file and from a
// signature that fails cryptographic verification.
type SizeError struct {
	Path string
	Want int
	Got  int
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	return fmt.Sprintf("signature file %q is an invalid size: expected %d bytes, read %d", e.Path, e.Want, e.Got)
}

// Load reads the signature file at path and requires its length to be
// exactly want bytes. This is a strict equality check: partial reads,
// truncated files, and oversize files are all *SizeError. Open failures
// are returned as-is (an *fs.PathError carrying the OS error).
func Load(path string, want int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sig, err := io.ReadAll(io.LimitReader(f, maxRead))
	if err != nil {
		return nil, fmt.Errorf("read signature file %q: %w", path, err)
	}
	if len(sig) != want {
		return nil, &SizeError{Path: path, Want: want, Got: len(sig)}
	}

	return sig, nil
}

// Write stores sig as the sidecar signature for target, creating the
// signatures directory if needed. Returns the written path.
func Write(target string, sig []byte) (string, error) {
	sigPath := SignaturePath(target)
	if err := os.MkdirAll(filepath.Dir(sigPath), 0o755); err != nil {
		return "", fmt.Errorf("create signature directory: %w", err)
	}
	if err := os.WriteFile(sigPath, sig, 0o644); err != nil {
		return "", fmt.Errorf("write signature file: %w", err)
	}
	return sigPath, nil
}
