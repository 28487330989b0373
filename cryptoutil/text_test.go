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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		enc    TextEncoding
		expect []byte
	}{
		{name: "ascii utf8", input: "abc", enc: EncodingUTF8, expect: []byte("abc")},
		{name: "ascii legacy", input: "abc", enc: EncodingLegacyUTF16, expect: []byte("abc")},
		{name: "two byte legacy", input: "é", enc: EncodingLegacyUTF16, expect: []byte{0xc3, 0xa9}},
		{name: "three byte legacy", input: "€", enc: EncodingLegacyUTF16, expect: []byte{0xe2, 0x82, 0xac}},
		{name: "supplementary utf8", input: "😀", enc: EncodingUTF8, expect: []byte{0xf0, 0x9f, 0x98, 0x80}},
		{name: "supplementary legacy", input: "😀", enc: EncodingLegacyUTF16, expect: []byte{0xed, 0xa0, 0xbd, 0xed, 0xb8, 0x80}},
		{name: "invalid utf8 replaced", input: "a\xffb", enc: EncodingUTF8, expect: []byte("a�b")},
		{name: "invalid legacy replaced", input: "a\xffb", enc: EncodingLegacyUTF16, expect: []byte{'a', 0xef, 0xbf, 0xbd, 'b'}},
		{name: "empty", input: "", enc: EncodingUTF8, expect: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeText(tt.input, tt.enc)
			assert.Equal(t, string(tt.expect), string(got))
		})
	}
}

func TestLegacyEncodingMatchesUTF8InsideBMP(t *testing.T) {
	in := "scan: naïve café ✓ 日本語"
	assert.Equal(t, EncodeText(in, EncodingUTF8), EncodeText(in, EncodingLegacyUTF16))
}

func TestLegacyEncodingChangesSupplementaryDigest(t *testing.T) {
	p := PureDigestProvider{}
	utf8Digest := p.Sum(EncodeText("😀", EncodingUTF8))
	legacyDigest := p.Sum(EncodeText("😀", EncodingLegacyUTF16))
	assert.NotEqual(t, utf8Digest, legacyDigest)
}

func TestParseTextEncoding(t *testing.T) {
	for in, want := range map[string]TextEncoding{
		"":             EncodingUTF8,
		"utf8":         EncodingUTF8,
		"UTF-8":        EncodingUTF8,
		"legacy-utf16": EncodingLegacyUTF16,
	} {
		got, err := ParseTextEncoding(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseTextEncoding("latin1")
	var unknown ErrUnknownTextEncoding
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "latin1", unknown.Name)
}
