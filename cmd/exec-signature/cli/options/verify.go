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

// VerifyOptions holds options for the verify command.
type VerifyOptions struct {
	// PublicKeyPath optionally overrides the embedded public key with a
	// PEM file on disk. Used by build and release tooling to check
	// artifacts before the key is baked in.
	PublicKeyPath string
}

var _ Interface = (*VerifyOptions)(nil)

// AddFlags implements Interface.
func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.PublicKeyPath, "public-key", "",
		"path to a PEM public key to verify against (default: the key embedded in this binary)")
	_ = cmd.MarkFlagFilename("public-key", "pub", "pem")
}
