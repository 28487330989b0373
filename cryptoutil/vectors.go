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
	"bytes"
	"encoding/hex"
)

// DigestVector is a SHA-256 known-answer test. The hashed message is Message
// repeated Repeat times (once when Repeat is zero).
type DigestVector struct {
	Name    string `json:"name"`
	Message []byte `json:"message"`
	Repeat  int    `json:"repeat,omitempty"`
	Digest  string `json:"digest"`
	Long    bool   `json:"long,omitempty"`
}

func (v DigestVector) Input() []byte {
	if v.Repeat <= 1 {
		return v.Message
	}

	return bytes.Repeat(v.Message, v.Repeat)
}

// MACVector is an HMAC-SHA-256 known-answer test with the full 32 byte output.
type MACVector struct {
	Name string `json:"name"`
	Key  []byte `json:"key"`
	Data []byte `json:"data"`
	MAC  string `json:"mac"`
}

// DigestVectors are the FIPS 180-4 example messages.
var DigestVectors = []DigestVector{
	{
		Name:   "empty",
		Digest: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	},
	{
		Name:    "abc",
		Message: []byte("abc"),
		Digest:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	},
	{
		Name:    "448 bits",
		Message: []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
		Digest:  "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1",
	},
	{
		Name:    "896 bits",
		Message: []byte("abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu"),
		Digest:  "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1",
	},
	{
		Name:    "one million a",
		Message: []byte("a"),
		Repeat:  1000000,
		Digest:  "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0",
		Long:    true,
	},
}

// MACVectors are RFC 4231 test cases 1-4, 6 and 7.
var MACVectors = []MACVector{
	{
		Name: "rfc4231 case 1",
		Key:  bytes.Repeat([]byte{0x0b}, 20),
		Data: []byte("Hi There"),
		MAC:  "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
	},
	{
		Name: "rfc4231 case 2",
		Key:  []byte("Jefe"),
		Data: []byte("what do ya want for nothing?"),
		MAC:  "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
	},
	{
		Name: "rfc4231 case 3",
		Key:  bytes.Repeat([]byte{0xaa}, 20),
		Data: bytes.Repeat([]byte{0xdd}, 50),
		MAC:  "773ea91e36800e46854db8ebd09181a72959098b3ef8c122d9635514ced565fe",
	},
	{
		Name: "rfc4231 case 4",
		Key: []byte{
			0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d,
			0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19,
		},
		Data: bytes.Repeat([]byte{0xcd}, 50),
		MAC:  "82558a389a443c0ea4cc819899f2083a85f0faa3e578f8077a2e3ff46729665b",
	},
	{
		Name: "rfc4231 case 6",
		Key:  bytes.Repeat([]byte{0xaa}, 131),
		Data: []byte("Test Using Larger Than Block-Size Key - Hash Key First"),
		MAC:  "60e431591ee0b67f0d8a26aacbf5b77f8e0bc6213728c5140546040f0ee37f54",
	},
	{
		Name: "rfc4231 case 7",
		Key:  bytes.Repeat([]byte{0xaa}, 131),
		Data: []byte("This is a test using a larger than block-size key and a larger than block-size data. The key needs to be hashed before being used by the HMAC algorithm."),
		MAC:  "9b09ffa71b942fcb27635fbcd5b0e944bfdc63644f0713938a7f51535c3a35e2",
	},
}

// SelfTest runs the short digest vectors, a split streaming write and the MAC vectors
// against p. It is cheap enough to run on every probe.
func SelfTest(p DigestProvider) error {
	return runKnownAnswerTests(p, false)
}

// RunKnownAnswerTests runs every vector, including the long ones, against p.
func RunKnownAnswerTests(p DigestProvider) error {
	return runKnownAnswerTests(p, true)
}

func runKnownAnswerTests(p DigestProvider, long bool) error {
	for _, v := range DigestVectors {
		if v.Long && !long {
			continue
		}

		input := v.Input()
		if got := p.Sum(input).Hex(); got != v.Digest {
			return ErrKnownAnswerMismatch{Implementation: p.Name(), Vector: v.Name, Want: v.Digest, Got: got}
		}

		// The same message fed in uneven pieces must give the same answer.
		h := p.New()
		for rest := input; len(rest) > 0; {
			n := min(len(rest), 7)
			_, _ = h.Write(rest[:n])
			rest = rest[n:]
		}

		if got := hex.EncodeToString(h.Sum(nil)); got != v.Digest {
			return ErrKnownAnswerMismatch{Implementation: p.Name() + " (streaming)", Vector: v.Name, Want: v.Digest, Got: got}
		}
	}

	mac := NewHMACProvider(p)
	for _, v := range MACVectors {
		if got := hex.EncodeToString(mac.MAC(v.Data, v.Key)); got != v.MAC {
			return ErrKnownAnswerMismatch{Implementation: p.Name() + " hmac", Vector: v.Name, Want: v.MAC, Got: got}
		}
	}

	return nil
}
