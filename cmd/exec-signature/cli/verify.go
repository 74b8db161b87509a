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

package cli

import (
	"fmt"
	"os"

	"github.com/fms-bzj/Windscribe-Desktop-App/cmd/exec-signature/cli/options"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/keys"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/sidecar"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/utils"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/verify/executable"
	"github.com/spf13/cobra"
)

// verifyFailure carries a nonzero exit code for failed verifications so
// scripted callers can distinguish "did not verify" from usage errors.
type verifyFailure struct {
	message string
}

func (e *verifyFailure) Error() string { return e.message }

// ExitCode implements the ExitCoder convention used by main.
func (e *verifyFailure) ExitCode() int { return 2 }

// Verify builds the verify subcommand.
func Verify() *cobra.Command {
	o := &options.VerifyOptions{}
	long := `Verify an executable against its detached signature.

Computes the SHA-256 digest of EXECUTABLE_PATH, reads the detached
signature from the sibling signatures/ directory (same stem, .sig
extension), and verifies the signature over the digest with RSA
PKCS#1 v1.5 using the trusted public key.

By default the public key embedded in this binary is used. Builds without
an embedded key have signature checking disabled and refuse to verify
unless --public-key supplies one.`

	cmd := &cobra.Command{
		Use:   "verify [OPTIONS] EXECUTABLE_PATH",
		Short: "Verify an executable's detached signature.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exePath := args[0]
			logger := ro.NewLogger()

			if err := utils.ValidateFileExists("executable", exePath); err != nil {
				return err
			}
			if err := utils.ValidateOptionalFile("public key", o.PublicKeyPath); err != nil {
				return err
			}

			material := keys.Embedded()
			if o.PublicKeyPath != "" {
				pemBytes, err := os.ReadFile(o.PublicKeyPath)
				if err != nil {
					return fmt.Errorf("read public key %q: %w", o.PublicKeyPath, err)
				}
				material = keys.NewMaterial(pemBytes)
			}

			// The embedded blob is empty in non-signed builds. That means
			// checking is off, not that everything passes.
			if material.Mode() == keys.ModeDisabled {
				return fmt.Errorf("signature checking is disabled in this build; supply --public-key to verify")
			}

			verifier, err := executable.NewVerifier(executable.VerifierConfig{Key: material})
			if err != nil {
				return err
			}

			logger.Debugf("verifying %s against %s", exePath, sidecar.SignaturePath(exePath))
			result := verifier.Verify(exePath)
			if !result.Verified {
				return &verifyFailure{message: result.Message}
			}

			logger.Infof("verified: %s", exePath)
			fmt.Println("Verification succeeded")
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
