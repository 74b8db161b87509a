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

package options

import (
	"github.com/spf13/cobra"
)

// SignOptions holds options for the sign command.
type SignOptions struct {
	// PrivateKeyPath is the PEM private key used for signing.
	PrivateKeyPath string
}

var _ Interface = (*SignOptions)(nil)

// AddFlags implements Interface.
func (o *SignOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.PrivateKeyPath, "private-key", "",
		"path to the PEM private key used for signing (required)")
	_ = cmd.MarkFlagFilename("private-key", "pem", "key")
	_ = cmd.MarkFlagRequired("private-key")
}

// KeygenOptions holds options for the keygen command.
type KeygenOptions struct {
	// OutDir is the directory the keypair files are written into.
	OutDir string
}

var _ Interface = (*KeygenOptions)(nil)

// AddFlags implements Interface.
func (o *KeygenOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.OutDir, "out-dir", ".",
		"directory to write key.pem and key.pub into")
	_ = cmd.MarkFlagDirname("out-dir")
}
