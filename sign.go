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

// Sign returns "sig_" followed by the first 16 bytes of HMAC-SHA-256(secret, data)
// in lowercase hex. An empty secret is accepted.
func (p *Primitives) Sign(data, secret []byte) string {
	return p.signer.Sign(data, secret).String()
}

// SignReader tags everything read from r.
func (p *Primitives) SignReader(r io.Reader, secret []byte) (string, error) {
	s, err := cryptoutil.NewSigner(secret, cryptoutil.SignWithDigestProvider(p.digest))
	if err != nil {
		return "", err
	}

	sig, err := s.Sign(r)
	if err != nil {
		return "", err
	}

	return sig.String(), nil
}

func Sign(data, secret []byte) string {
	return Default().Sign(data, secret)
}
