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

package signing

import (
	"crypto"
	"crypto/rsa"
	"fmt"

	hashio "github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/engines/io"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/hashing/engines/memory"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/keys"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/sidecar"
	sigstoresig "github.com/sigstore/sigstore/pkg/signature"
	"github.com/sigstore/sigstore/pkg/signature/options"
)

// Signer signs executables with a fixed-geometry RSA key. The digest and
// read pattern match the verifier exactly, so a file signed here verifies
// there byte for byte.
type Signer struct {
	sv sigstoresig.SignerVerifier
}

// NewSigner wraps an RSA private key of the supported size.
func NewSigner(priv *rsa.PrivateKey) (*Signer, error) {
	if priv == nil {
		return nil, fmt.Errorf("private key must not be nil")
	}
	if priv.Size() != keys.SignatureSize {
		return nil, fmt.Errorf("unsupported RSA key size %d bits, expected %d", priv.N.BitLen(), keys.KeyBits)
	}

	sv, err := sigstoresig.LoadRSAPKCS1v15SignerVerifier(priv, crypto.SHA256)
	if err != nil {
		return nil, fmt.Errorf("initialize RSA signer: %w", err)
	}

	return &Signer{sv: sv}, nil
}

// SignFile computes the streamed SHA-256 digest of the file at path, signs
// it, and writes the signature to the sidecar location. Returns the path
// of the written signature file.
func (s *Signer) SignFile(path string) (string, error) {
	sig, err := s.Sign(path)
	if err != nil {
		return "", err
	}
	return sidecar.Write(path, sig)
}

// Sign computes and returns the raw signature for the file at path without
// writing anything to disk.
func (s *Signer) Sign(path string) ([]byte, error) {
	hasher, err := hashio.NewFileHasher(path, memory.NewSHA256Engine(nil), 0)
	if err != nil {
		return nil, err
	}
	digest, err := hasher.Compute()
	if err != nil {
		return nil, fmt.Errorf("hash %q: %w", path, err)
	}

	sig, err := s.sv.SignMessage(nil, options.WithDigest(digest.Value()))
	if err != nil {
		return nil, fmt.Errorf("sign digest of %q: %w", path, err)
	}
	if len(sig) != keys.SignatureSize {
		return nil, fmt.Errorf("unexpected signature size %d, want %d", len(sig), keys.SignatureSize)
	}

	return sig, nil
}
