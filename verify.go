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

package cryptokit

import (
	"io"

	"github.com/scanhound/cryptokit/cryptoutil"
)

// Verify reports whether signature is the tag of data under secret. Malformed
// signatures are reported as false. The comparison takes constant time.
func (p *Primitives) Verify(data []byte, signature string, secret []byte) bool {
	sig, err := cryptoutil.ParseSignature(signature)
	if err != nil {
		return false
	}

	return p.signer.Verify(data, sig, secret)
}

// VerifyReader checks signature against everything read from r. It returns
// cryptoutil.ErrVerifyFailed on a mismatch and ErrInvalidSignature when the
// signature is malformed.
func (p *Primitives) VerifyReader(r io.Reader, signature string, secret []byte) error {
	sig, err := cryptoutil.ParseSignature(signature)
	if err != nil {
		return err
	}

	s, err := cryptoutil.NewSigner(secret, cryptoutil.SignWithDigestProvider(p.digest))
	if err != nil {
		return err
	}

	v, err := s.Verifier()
	if err != nil {
		return err
	}

	return v.Verify(r, sig)
}

func Verify(data []byte, signature string, secret []byte) bool {
	return Default().Verify(data, signature, secret)
}
