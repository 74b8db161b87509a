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
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/signing"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/utils"
	"github.com/spf13/cobra"
)

// Sign builds the sign subcommand.
func Sign() *cobra.Command {
	o := &options.SignOptions{}
	long := `Sign an executable with a detached signature.

Computes the SHA-256 digest of EXECUTABLE_PATH, signs it with the RSA-4096
private key from --private-key using PKCS#1 v1.5 padding, and writes the
512-byte signature to the sibling signatures/ directory where the verifier
looks for it.`

	cmd := &cobra.Command{
		Use:   "sign [OPTIONS] EXECUTABLE_PATH",
		Short: "Sign an executable with a detached signature.",
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exePath := args[0]
			logger := ro.NewLogger()

			if err := utils.ValidateFileExists("executable", exePath); err != nil {
				return err
			}
			if err := utils.ValidateFileExists("private key", o.PrivateKeyPath); err != nil {
				return err
			}

			pemBytes, err := os.ReadFile(o.PrivateKeyPath)
			if err != nil {
				return fmt.Errorf("read private key %q: %w", o.PrivateKeyPath, err)
			}
			priv, err := signing.LoadPrivateKeyPEM(pemBytes)
			if err != nil {
				return err
			}

			signer, err := signing.NewSigner(priv)
			if err != nil {
				return err
			}

			sigPath, err := signer.SignFile(exePath)
			if err != nil {
				return err
			}

			logger.Infof("signed: %s", exePath)
			fmt.Printf("Signature written to %s\n", sigPath)
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
