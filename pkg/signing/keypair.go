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

// Package signing produces the detached signatures that the verifier
// checks. It is the build-tooling side of the scheme: generate an RSA-4096
// keypair, sign an executable's SHA-256 digest with PKCS#1 v1.5 padding,
// and store the 512-byte signature in the sidecar location.
package signing

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"

	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/keys"
	"github.com/sigstore/sigstore/pkg/cryptoutils"
)

// GenerateKeypair creates a fresh RSA keypair of the fixed key size.
func GenerateKeypair() (*rsa.PrivateKey, error) {
	priv, err := rsa.GenerateKey(rand.Reader, keys.KeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA-%d key: %w", keys.KeyBits, err)
	}
	return priv, nil
}

// MarshalPrivateKeyPEM serializes the private key to PEM.
func MarshalPrivateKeyPEM(priv *rsa.PrivateKey) ([]byte, error) {
	pemBytes, err := cryptoutils.MarshalPrivateKeyToPEM(priv)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return pemBytes, nil
}

// MarshalPublicKeyPEM serializes the public half to the PEM form the
// verifier embeds. The encoding of a 4096-bit key stays within
// keys.MaxPEMSize.
func MarshalPublicKeyPEM(priv *rsa.PrivateKey) ([]byte, error) {
	pemBytes, err := cryptoutils.MarshalPublicKeyToPEM(priv.Public())
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	return pemBytes, nil
}

// LoadPrivateKeyPEM parses a PEM-encoded private key and enforces the
// fixed key geometry.
func LoadPrivateKeyPEM(pemBytes []byte) (*rsa.PrivateKey, error) {
	priv, err := cryptoutils.UnmarshalPEMToPrivateKey(pemBytes, cryptoutils.SkipPassword)
	if err != nil {
		return nil, fmt.Errorf("parse private key PEM: %w", err)
	}

	rsaPriv, ok := priv.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unsupported private key type %T, expected RSA", priv)
	}
	if rsaPriv.Size() != keys.SignatureSize {
		return nil, fmt.Errorf("unsupported RSA key size %d bits, expected %d", rsaPriv.N.BitLen(), keys.KeyBits)
	}

	return rsaPriv, nil
}
