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

package executable

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/keys"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/sidecar"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/signing"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/verify"
	"github.com/sigstore/sigstore/pkg/cryptoutils"
)

// 4096-bit keygen is slow, so each key is generated once per test binary.
var (
	signingKeyOnce sync.Once
	signingKey     *rsa.PrivateKey
	signingKeyErr  error

	unrelatedKeyOnce sync.Once
	unrelatedKey     *rsa.PrivateKey
	unrelatedKeyErr  error
)

func testSigningKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	signingKeyOnce.Do(func() {
		signingKey, signingKeyErr = rsa.GenerateKey(rand.Reader, keys.KeyBits)
	})
	if signingKeyErr != nil {
		t.Fatalf("Failed to generate signing key: %v", signingKeyErr)
	}
	return signingKey
}

func testUnrelatedKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	unrelatedKeyOnce.Do(func() {
		unrelatedKey, unrelatedKeyErr = rsa.GenerateKey(rand.Reader, keys.KeyBits)
	})
	if unrelatedKeyErr != nil {
		t.Fatalf("Failed to generate unrelated key: %v", unrelatedKeyErr)
	}
	return unrelatedKey
}

func materialFor(t *testing.T, priv *rsa.PrivateKey) keys.Material {
	t.Helper()
	pemBytes, err := cryptoutils.MarshalPublicKeyToPEM(priv.Public())
	if err != nil {
		t.Fatalf("Failed to marshal public key: %v", err)
	}
	return keys.NewMaterial(pemBytes)
}

func newTestVerifier(t *testing.T, material keys.Material) *Verifier {
	t.Helper()
	v, err := NewVerifier(VerifierConfig{Key: material})
	if err != nil {
		t.Fatalf("NewVerifier failed: %v", err)
	}
	return v
}

// writeTarget creates an executable fixture in dir.
func writeTarget(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("Failed to write target %s: %v", name, err)
	}
	return path
}

// signTarget writes the sidecar signature for path with the given key.
func signTarget(t *testing.T, priv *rsa.PrivateKey, path string) string {
	t.Helper()
	signer, err := signing.NewSigner(priv)
	if err != nil {
		t.Fatalf("NewSigner failed: %v", err)
	}
	sigPath, err := signer.SignFile(path)
	if err != nil {
		t.Fatalf("SignFile failed: %v", err)
	}
	return sigPath
}

func TestVerify_RoundTrip(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	target := writeTarget(t, dir, "prog.exe", []byte("the executable payload"))
	signTarget(t, priv, target)

	v := newTestVerifier(t, materialFor(t, priv))
	result := v.Verify(target)
	if !result.Verified {
		t.Fatalf("Expected verification to succeed, got: %s", result.Message)
	}
	if result.Message != "" {
		t.Errorf("Success result carries a message: %q", result.Message)
	}
}

func TestVerify_ZeroByteTarget(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	target := writeTarget(t, dir, "empty.exe", nil)
	signTarget(t, priv, target)

	v := newTestVerifier(t, materialFor(t, priv))
	if result := v.Verify(target); !result.Verified {
		t.Fatalf("Zero-byte target failed to verify: %s", result.Message)
	}
}

func TestVerify_LargeTargetSpansChunks(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	// Bigger than one 64 KiB read so the streaming path is exercised.
	content := bytes.Repeat([]byte{0x5A}, 3*64*1024+17)
	target := writeTarget(t, dir, "big.exe", content)
	signTarget(t, priv, target)

	v := newTestVerifier(t, materialFor(t, priv))
	if result := v.Verify(target); !result.Verified {
		t.Fatalf("Large target failed to verify: %s", result.Message)
	}
}

func TestVerify_TamperedContent(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	content := []byte("the executable payload")
	target := writeTarget(t, dir, "prog.exe", content)
	signTarget(t, priv, target)

	// Flip a single bit after signing.
	content[3] ^= 0x01
	if err := os.WriteFile(target, content, 0o755); err != nil {
		t.Fatalf("Failed to tamper with target: %v", err)
	}

	v := newTestVerifier(t, materialFor(t, priv))
	err := v.Check(target)
	if !verify.IsKind(err, verify.ErrSignatureMismatch) {
		t.Fatalf("Expected SignatureMismatch, got: %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	target := writeTarget(t, dir, "prog.exe", []byte("the executable payload"))
	sigPath := signTarget(t, priv, target)

	sig, err := os.ReadFile(sigPath)
	if err != nil {
		t.Fatalf("Failed to read signature: %v", err)
	}
	sig[100] ^= 0x01
	if err := os.WriteFile(sigPath, sig, 0o644); err != nil {
		t.Fatalf("Failed to tamper with signature: %v", err)
	}

	v := newTestVerifier(t, materialFor(t, priv))
	if err := v.Check(target); !verify.IsKind(err, verify.ErrSignatureMismatch) {
		t.Fatalf("Expected SignatureMismatch, got: %v", err)
	}
}

func TestVerify_SignatureSizeMismatch(t *testing.T) {
	priv := testSigningKey(t)
	v := newTestVerifier(t, materialFor(t, priv))

	for _, size := range []int{0, 511, 513, 4096} {
		dir := t.TempDir()
		target := writeTarget(t, dir, "prog.exe", []byte("payload"))
		if _, err := sidecar.Write(target, make([]byte, size)); err != nil {
			t.Fatalf("Failed to write %d-byte signature: %v", size, err)
		}

		err := v.Check(target)
		if !verify.IsKind(err, verify.ErrSignatureSize) {
			t.Fatalf("Size %d: expected SignatureSizeMismatch, got: %v", size, err)
		}
		if verify.IsKind(err, verify.ErrSignatureMismatch) {
			t.Errorf("Size %d: size mismatch must be distinct from signature mismatch", size)
		}
	}
}

func TestVerify_MissingTarget(t *testing.T) {
	priv := testSigningKey(t)
	v := newTestVerifier(t, materialFor(t, priv))

	err := v.Check(filepath.Join(t.TempDir(), "missing.exe"))
	if !verify.IsKind(err, verify.ErrFileOpen) {
		t.Fatalf("Expected FileOpenFailure, got: %v", err)
	}
}

func TestVerify_MissingSignature(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	target := writeTarget(t, dir, "prog.exe", []byte("payload"))

	v := newTestVerifier(t, materialFor(t, priv))
	err := v.Check(target)
	if !verify.IsKind(err, verify.ErrSignatureFileOpen) {
		t.Fatalf("Expected SignatureFileOpenFailure, got: %v", err)
	}

	// The diagnostic must name the derived path.
	want := sidecar.SignaturePath(target)
	if !strings.Contains(err.Error(), want) {
		t.Errorf("Diagnostic %q does not name derived path %q", err.Error(), want)
	}
}

func TestVerify_UnrelatedKey(t *testing.T) {
	priv := testSigningKey(t)
	other := testUnrelatedKey(t)

	dir := t.TempDir()
	target := writeTarget(t, dir, "prog.exe", []byte("payload"))
	signTarget(t, other, target)

	v := newTestVerifier(t, materialFor(t, priv))
	if err := v.Check(target); !verify.IsKind(err, verify.ErrSignatureMismatch) {
		t.Fatalf("Expected SignatureMismatch for unrelated key, got: %v", err)
	}
}

func TestVerify_KeyTooLarge(t *testing.T) {
	blob := make([]byte, keys.MaxPEMSize+1)
	v := newTestVerifier(t, keys.NewMaterial(blob))

	err := v.Check("irrelevant")
	if !verify.IsKind(err, verify.ErrKeyTooLarge) {
		t.Fatalf("Expected KeyTooLarge, got: %v", err)
	}
}

func TestVerify_MalformedKey(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	target := writeTarget(t, dir, "prog.exe", []byte("payload"))
	signTarget(t, priv, target)

	v := newTestVerifier(t, keys.NewMaterial([]byte("not a pem key")))
	if err := v.Check(target); !verify.IsKind(err, verify.ErrKeyLoad) {
		t.Fatalf("Expected KeyLoadFailure, got: %v", err)
	}
}

func TestVerify_EmptyKeyIsNeverAPass(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	target := writeTarget(t, dir, "prog.exe", []byte("payload"))
	signTarget(t, priv, target)

	v := newTestVerifier(t, keys.NewMaterial(nil))
	result := v.Verify(target)
	if result.Verified {
		t.Fatal("Verification passed with no key material")
	}
	if err := v.Check(target); !verify.IsKind(err, verify.ErrKeyLoad) {
		t.Fatalf("Expected KeyLoadFailure for empty key, got: %v", err)
	}
}

func TestVerify_ChunkSizeOverride(t *testing.T) {
	priv := testSigningKey(t)
	dir := t.TempDir()
	target := writeTarget(t, dir, "prog.exe", []byte("chunk size must not change the digest"))
	signTarget(t, priv, target)

	v, err := NewVerifier(VerifierConfig{Key: materialFor(t, priv), ChunkSize: 7})
	if err != nil {
		t.Fatalf("NewVerifier failed: %v", err)
	}
	if result := v.Verify(target); !result.Verified {
		t.Fatalf("Verification with 7-byte chunks failed: %s", result.Message)
	}
}

func TestNewVerifier_NegativeChunkSize(t *testing.T) {
	if _, err := NewVerifier(VerifierConfig{ChunkSize: -1}); err == nil {
		t.Error("Expected error for negative chunk size, got nil")
	}
}

func TestVerify_Concurrent(t *testing.T) {
	priv := testSigningKey(t)
	material := materialFor(t, priv)
	v := newTestVerifier(t, material)

	const n = 100
	dir := t.TempDir()
	targets := make([]string, n)
	for i := range targets {
		target := writeTarget(t, dir, fmt.Sprintf("prog%03d.exe", i), []byte(fmt.Sprintf("payload %03d", i)))
		signTarget(t, priv, target)
		targets[i] = target
	}
	// One target is tampered with so failure results interleave with
	// successes.
	tampered := 42
	if err := os.WriteFile(targets[tampered], []byte("tampered payload"), 0o755); err != nil {
		t.Fatalf("Failed to tamper with target: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]verify.Result, n)
	for i := range targets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.Verify(targets[i])
		}(i)
	}
	wg.Wait()

	for i, result := range results {
		if i == tampered {
			if result.Verified {
				t.Errorf("Target %d: tampered file verified", i)
			}
			continue
		}
		if !result.Verified {
			t.Errorf("Target %d: verification failed: %s", i, result.Message)
		}
	}
}
