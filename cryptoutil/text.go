// Copyright 2026 The Cryptokit Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cryptoutil

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// TextEncoding selects how text is turned into bytes before hashing.
type TextEncoding string

const (
	// EncodingUTF8 is standard UTF-8. Invalid byte sequences are replaced with U+FFFD.
	EncodingUTF8 TextEncoding = "utf8"

	// EncodingLegacyUTF16 encodes every UTF-16 code unit on its own with at most three
	// bytes, without joining surrogate pairs. Characters outside the Basic Multilingual
	// Plane become two three-byte sequences. Only use it to reproduce fingerprints that
	// were stored by the previous implementation.
	EncodingLegacyUTF16 TextEncoding = "legacy-utf16"
)

// TextEncodings lists the supported encodings.
func TextEncodings() []TextEncoding {
	return []TextEncoding{EncodingUTF8, EncodingLegacyUTF16}
}

func ParseTextEncoding(s string) (TextEncoding, error) {
	switch TextEncoding(strings.ToLower(strings.TrimSpace(s))) {
	case EncodingUTF8, "utf-8", "":
		return EncodingUTF8, nil
	case EncodingLegacyUTF16:
		return EncodingLegacyUTF16, nil
	default:
		return "", ErrUnknownTextEncoding{Name: s}
	}
}

// EncodeText converts text to the byte sequence that is hashed. Unknown encodings
// fall back to EncodingUTF8; use ParseTextEncoding to reject them up front.
func EncodeText(s string, enc TextEncoding) []byte {
	if enc == EncodingLegacyUTF16 {
		return encodeLegacyUTF16(s)
	}

	if utf8.ValidString(s) {
		return []byte(s)
	}

	return []byte(strings.ToValidUTF8(s, string(utf8.RuneError)))
}

func encodeLegacyUTF16(s string) []byte {
	out := make([]byte, 0, len(s)+len(s)/2)
	var units []uint16
	for _, r := range s {
		units = utf16.AppendRune(units[:0], r)
		for _, u := range units {
			switch {
			case u < 0x80:
				out = append(out, byte(u))
			case u < 0x800:
				out = append(out, 0xc0|byte(u>>6), 0x80|byte(u&0x3f))
			default:
				out = append(out, 0xe0|byte(u>>12), 0x80|byte((u>>6)&0x3f), 0x80|byte(u&0x3f))
			}
		}
	}

	return out
}
