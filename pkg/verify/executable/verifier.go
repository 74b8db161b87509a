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

// Package executable verifies a binary on disk against its detached RSA
// signature.
//
// Verification answers one question: was this file produced and signed by
// the holder of the private key paired with the trusted public key, and is
// its content unmodified since signing? The pipeline is a single linear
// pass with no retries: key bound check, streamed SHA-256 digest of the
// file, sidecar signature load (strict 512 bytes), key parse, and RSA
// PKCS#1 v1.5 verification of the signature over the digest.
package executable

import (
	"bytes"
	"crypto"
	"errors"
	"fmt"
	"io/fs"

	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/digests"
	hashio "github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/engines/io"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/engines/memory"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/keys"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/sidecar"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/verify"
	sigstoresig "github.com/sigstore/sigstore/pkg/signature"
	"github.com/sigstore/sigstore/pkg/signature/options"
)

// VerifierConfig configures an executable Verifier.
type VerifierConfig struct {
	// Key is the trusted public key material, normally the blob the build
	// tooling embeds via keys.Embedded(). Tests inject alternate keys here.
	Key keys.Material

	// ChunkSize overrides the read size used while hashing the target.
	// 0 selects the default. The chunk size never changes the digest.
	ChunkSize int
}

// Verifier checks executables against their sidecar signatures. A Verifier
// is immutable after construction; each Verify call owns its own file
// handles and hash state, so concurrent calls need no coordination.
type Verifier struct {
	key       keys.Material
	chunkSize int
}

// NewVerifier creates a Verifier from the given configuration.
func NewVerifier(cfg VerifierConfig) (*Verifier, error) {
	if cfg.ChunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be non-negative, got %d", cfg.ChunkSize)
	}
	return &Verifier{
		key:       cfg.Key,
		chunkSize: cfg.ChunkSize,
	}, nil
}

// Verify runs the verification pipeline for the executable at exePath and
// renders the outcome as a Result. The diagnostic names the first step
// that failed; nothing is written to any log by this call.
func (v *Verifier) Verify(exePath string) verify.Result {
	return verify.ResultFromError(v.Check(exePath))
}

// Check runs the verification pipeline and returns nil on success or a
// *verify.VerificationError describing the first failing step.
func (v *Verifier) Check(exePath string) error {
	// A key blob over the sanity bound means the build embedded corrupted
	// data. The key itself is trusted by construction, so this is not a
	// defense against substitution.
	if v.key.Size() > keys.MaxPEMSize {
		return verify.NewError(verify.ErrKeyTooLarge,
			fmt.Sprintf("public key is too large: %d bytes, limit %d", v.key.Size(), keys.MaxPEMSize), nil)
	}
	if v.key.Mode() == keys.ModeDisabled {
		// An empty blob means checking is disabled for this build. Callers
		// should consult Key.Mode() and skip the call; if they get here
		// anyway it must read as a failure, never as a pass.
		return verify.NewError(verify.ErrKeyLoad,
			"no public key material: signature checking is disabled in this build", nil)
	}

	digest, err := v.computeDigest(exePath)
	if err != nil {
		return err
	}

	sigPath := sidecar.SignaturePath(exePath)
	sig, err := sidecar.Load(sigPath, keys.SignatureSize)
	if err != nil {
		var sizeErr *sidecar.SizeError
		if errors.As(err, &sizeErr) {
			return verify.NewErrorWithPath(verify.ErrSignatureSize, sigPath,
				fmt.Sprintf("expected %d bytes, read %d", sizeErr.Want, sizeErr.Got), nil)
		}
		return verify.NewErrorWithPath(verify.ErrSignatureFileOpen, sigPath,
			"failed to open signature file for reading", err)
	}

	pub, err := v.key.Load()
	if err != nil {
		return verify.NewError(verify.ErrKeyLoad, "failed to load RSA public key", err)
	}

	sv, err := sigstoresig.LoadRSAPKCS1v15Verifier(pub, crypto.SHA256)
	if err != nil {
		return verify.NewError(verify.ErrVerificationContext,
			"failed to initialize RSA verification", err)
	}

	if err := sv.VerifySignature(bytes.NewReader(sig), nil, options.WithDigest(digest.Value())); err != nil {
		// Deliberately generic: which byte differed is not reported.
		return verify.NewError(verify.ErrSignatureMismatch,
			"executable's signature does not match signature file", nil)
	}

	return nil
}

// computeDigest streams the target file through a SHA-256 engine. Open
// failures and hashing faults map to distinct error kinds.
func (v *Verifier) computeDigest(exePath string) (digests.Digest, error) {
	hasher, err := hashio.NewFileHasher(exePath, memory.NewSHA256Engine(nil), v.chunkSize)
	if err != nil {
		return digests.Digest{}, verify.NewError(verify.ErrDigest, "failed to create digest context", err)
	}

	d, err := hasher.Compute()
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && pathErr.Op == "open" {
			return digests.Digest{}, verify.NewErrorWithPath(verify.ErrFileOpen, exePath,
				"failed to open executable for reading", pathErr)
		}
		return digests.Digest{}, verify.NewErrorWithPath(verify.ErrDigest, exePath,
			"failed to compute executable digest", err)
	}

	return d, nil
}
