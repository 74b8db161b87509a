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

// Package keys holds the trusted public key material and the fixed key
// geometry used for executable signatures.
//
// The scheme is deliberately rigid: one key size, one digest, one padding
// mode, one signature size. Algorithm agility is a non-goal, so the
// geometry lives here as constants rather than negotiated parameters.
package keys

import (
	"crypto/rsa"
	"fmt"

	"github.com/sigstore/sigstore/pkg/cryptoutils"
)

const (
	// KeyBits is the only supported RSA modulus size.
	KeyBits = 4096

	// SignatureSize is the byte length of a signature under a KeyBits key.
	SignatureSize = KeyBits / 8

	// MaxPEMSize bounds the PEM encoding of the trusted public key. The
	// 4096-bit key encodes to just under this on disk; a larger blob means
	// a corrupted build, not a bigger key.
	MaxPEMSize = 800
)

// Mode reports whether signature checking is configured for this build.
type Mode int

const (
	// ModeDisabled means no key material is present. Builds without
	// signature checking embed an empty blob; verification must not be
	// attempted, and attempting it fails rather than passing.
	ModeDisabled Mode = iota

	// ModeEnabled means key material is present and verification is
	// expected to run.
	ModeEnabled
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeEnabled {
		return "enabled"
	}
	return "disabled"
}

// Material is a read-only PEM-encoded RSA public key blob. The zero value
// carries no key and reports ModeDisabled. Material is safe for unlimited
// concurrent readers.
type Material struct {
	pem []byte
}

// NewMaterial wraps a PEM blob as key material. The blob is copied.
func NewMaterial(pemBytes []byte) Material {
	pemCopy := make([]byte, len(pemBytes))
	copy(pemCopy, pemBytes)
	return Material{pem: pemCopy}
}

// Embedded returns the key material compiled into this binary. The build
// tooling populates it for signed builds; unsigned builds leave it empty,
// which callers must treat as checking disabled, never as a pass.
func Embedded() Material {
	return NewMaterial([]byte(embeddedKeyPEM))
}

// embeddedKeyPEM is injected at build time, e.g.
//
//	go build -ldflags "-X github.com/fms-bzj/Windscribe-Desktop-App/pkg/keys.embeddedKeyPEM=$(cat key.pub)"
var embeddedKeyPEM string

// Mode reports whether this material enables signature checking.
func (m Material) Mode() Mode {
	if len(m.pem) == 0 {
		return ModeDisabled
	}
	return ModeEnabled
}

// Size returns the byte length of the PEM blob.
func (m Material) Size() int {
	return len(m.pem)
}

// PEM returns a copy of the PEM blob.
func (m Material) PEM() []byte {
	pemCopy := make([]byte, len(m.pem))
	copy(pemCopy, m.pem)
	return pemCopy
}

// Load parses the PEM blob into an RSA public key and enforces the fixed
// key geometry. Empty material, malformed encodings, non-RSA keys, and RSA
// keys of any size other than KeyBits are all load failures.
func (m Material) Load() (*rsa.PublicKey, error) {
	if len(m.pem) == 0 {
		return nil, fmt.Errorf("no public key material present")
	}

	pub, err := cryptoutils.UnmarshalPEMToPublicKey(m.pem)
	if err != nil {
		return nil, fmt.Errorf("parse public key PEM: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("unsupported public key type %T, expected RSA", pub)
	}
	if rsaPub.Size() != SignatureSize {
		return nil, fmt.Errorf("unsupported RSA key size %d bits, expected %d", rsaPub.N.BitLen(), KeyBits)
	}

	return rsaPub, nil
}
