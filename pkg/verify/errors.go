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

// Package verify defines the verification result and the structured error
// taxonomy shared by the verification pipeline.
package verify

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes a verification failure. Every failure is terminal
// for the call that produced it; nothing is retried.
type ErrorKind int

const (
	// ErrUnknown indicates an unclassified error.
	ErrUnknown ErrorKind = iota

	// ErrKeyTooLarge indicates the trusted public key blob exceeds the
	// sanity bound.
	ErrKeyTooLarge

	// ErrKeyLoad indicates the public key blob could not be parsed into a
	// usable key, or no key material is present at all.
	ErrKeyLoad

	// ErrFileOpen indicates the target executable could not be opened.
	ErrFileOpen

	// ErrDigest indicates an internal fault while hashing the target file.
	ErrDigest

	// ErrSignatureFileOpen indicates the derived sidecar signature path
	// could not be opened.
	ErrSignatureFileOpen

	// ErrSignatureSize indicates the signature file's length differs from
	// the fixed signature size.
	ErrSignatureSize

	// ErrVerificationContext indicates the cryptographic verifier could not
	// be constructed for the configured padding and digest algorithm.
	ErrVerificationContext

	// ErrSignatureMismatch indicates a well-formed signature that does not
	// match the computed digest.
	ErrSignatureMismatch

	// ErrEncoding indicates a wide-path input could not be transcoded to a
	// byte-oriented path.
	ErrEncoding
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrKeyTooLarge:
		return "KeyTooLarge"
	case ErrKeyLoad:
		return "KeyLoadFailure"
	case ErrFileOpen:
		return "FileOpenFailure"
	case ErrDigest:
		return "DigestFailure"
	case ErrSignatureFileOpen:
		return "SignatureFileOpenFailure"
	case ErrSignatureSize:
		return "SignatureSizeMismatch"
	case ErrVerificationContext:
		return "VerificationContextFailure"
	case ErrSignatureMismatch:
		return "SignatureMismatch"
	case ErrEncoding:
		return "EncodingFailure"
	default:
		return "UnknownError"
	}
}

// VerificationError is the structured error produced by the verification
// pipeline. It carries the failure kind, the path involved (when one is),
// a human-readable message, and the wrapped cause.
type VerificationError struct {
	// Kind categorizes the error for programmatic handling.
	Kind ErrorKind

	// Path is the file path related to the error, if any.
	Path string

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *VerificationError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s (path: %s): %v", e.Kind, e.Message, e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s (path: %s)", e.Kind, e.Message, e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause for error chain unwrapping.
func (e *VerificationError) Unwrap() error {
	return e.Cause
}

// NewError creates a verification error without an associated path.
func NewError(kind ErrorKind, message string, cause error) *VerificationError {
	return &VerificationError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// NewErrorWithPath creates a verification error tied to a file path.
func NewErrorWithPath(kind ErrorKind, path, message string, cause error) *VerificationError {
	return &VerificationError{
		Kind:    kind,
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}

// IsKind reports whether err is a VerificationError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Kind == kind
	}
	return false
}
