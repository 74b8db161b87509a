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

package executable

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/fms-bzj/Windscribe-Desktop-App/pkg/verify"
)

// VerifyUTF16 verifies an executable whose path arrives as UTF-16 code
// units, the form produced by platform wide-string APIs. The path is
// transcoded to UTF-8 and delegated to Verify. An invalid encoding is a
// verification failure, not a panic.
func (v *Verifier) VerifyUTF16(exePath []uint16) verify.Result {
	path, err := decodeUTF16(exePath)
	if err != nil {
		return verify.ResultFromError(verify.NewError(verify.ErrEncoding,
			"failed to transcode wide executable path", err))
	}
	return v.Verify(path)
}

const (
	surr1 = 0xD800
	surr2 = 0xDC00
	surr3 = 0xE000
)

// decodeUTF16 converts UTF-16 code units to a UTF-8 string, rejecting
// unpaired surrogates. The standard decoder substitutes U+FFFD for invalid
// sequences, which would silently verify the wrong path, so validity is
// checked here explicitly.
func decodeUTF16(units []uint16) (string, error) {
	var b strings.Builder
	b.Grow(len(units))

	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case surr1 <= u && u < surr2:
			if i+1 >= len(units) || units[i+1] < surr2 || units[i+1] >= surr3 {
				return "", fmt.Errorf("unpaired high surrogate 0x%04X at index %d", u, i)
			}
			b.WriteRune(utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case surr2 <= u && u < surr3:
			return "", fmt.Errorf("unpaired low surrogate 0x%04X at index %d", u, i)
		default:
			b.WriteRune(rune(u))
		}
	}

	return b.String(), nil
}
