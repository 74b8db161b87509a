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
	"path/filepath"

	"github.com/fms-bzj/Windscribe-Desktop-App/cmd/exec-signature/cli/options"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/keys"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/signing"
	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/utils"
	"github.com/spf13/cobra"
)

// Keygen builds the keygen subcommand.
func Keygen() *cobra.Command {
	o := &options.KeygenOptions{}
	long := `Generate an RSA-4096 signing keypair.

Writes key.pem (private, mode 0600) and key.pub (public, mode 0644) into
--out-dir. The public half is what the build tooling embeds into signed
binaries; the private half signs release artifacts and must be kept
offline.`

	cmd := &cobra.Command{
		Use:   "keygen [OPTIONS]",
		Short: "Generate an RSA-4096 signing keypair.",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := ro.NewLogger()

			if err := utils.ValidateFolderExists("output directory", o.OutDir); err != nil {
				return err
			}

			logger.Debugf("generating RSA-%d keypair", keys.KeyBits)
			priv, err := signing.GenerateKeypair()
			if err != nil {
				return err
			}

			privPEM, err := signing.MarshalPrivateKeyPEM(priv)
			if err != nil {
				return err
			}
			pubPEM, err := signing.MarshalPublicKeyPEM(priv)
			if err != nil {
				return err
			}

			privPath := filepath.Join(o.OutDir, "key.pem")
			pubPath := filepath.Join(o.OutDir, "key.pub")

			if err := os.WriteFile(privPath, privPEM, 0o600); err != nil {
				return fmt.Errorf("write private key: %w", err)
			}
			if err := os.WriteFile(pubPath, pubPEM, 0o644); err != nil {
				return fmt.Errorf("write public key: %w", err)
			}

			fmt.Printf("Private key written to %s\n", privPath)
			fmt.Printf("Public key written to %s\n", pubPath)
			return nil
		},
	}

	o.AddFlags(cmd)
	return cmd
}
