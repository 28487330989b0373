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
	"fmt"
	"io"
)

// Signer produces tags for messages under the secret it was created with.
type Signer interface {
	Sign(r io.Reader) (Signature, error)
	Verifier() (Verifier, error)
}

// Verifier checks tags under the secret it was created with. Verify returns
// ErrVerifyFailed when the tag does not match.
type Verifier interface {
	Verify(r io.Reader, sig Signature) error
}

type SignerOption func(*signerOptions)

type signerOptions struct {
	digest DigestProvider
}

// SignWithDigestProvider pins the digest engine instead of using the probed one.
func SignWithDigestProvider(p DigestProvider) SignerOption {
	return func(so *signerOptions) {
		so.digest = p
	}
}

// NewSigner returns an HMAC-SHA-256 Signer for secret. The secret is copied; an
// empty secret is accepted and its strength is the caller's responsibility.
func NewSigner(secret []byte, opts ...SignerOption) (Signer, error) {
	options := &signerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.digest == nil {
		caps, err := DetectCapabilities()
		if err != nil {
			return nil, fmt.Errorf("failed to select digest engine: %w", err)
		}

		options.digest = caps.DigestProvider()
	}

	key := make([]byte, len(secret))
	copy(key, secret)
	return &HMACSigner{
		provider: NewHMACProvider(options.digest),
		secret:   key,
	}, nil
}

type HMACSigner struct {
	provider HMACProvider
	secret   []byte
}

func (s *HMACSigner) Sign(r io.Reader) (Signature, error) {
	return tagReader(s.provider, s.secret, r)
}

func (s *HMACSigner) Verifier() (Verifier, error) {
	return &HMACVerifier{provider: s.provider, secret: s.secret}, nil
}

type HMACVerifier struct {
	provider HMACProvider
	secret   []byte
}

func (v *HMACVerifier) Verify(r io.Reader, sig Signature) error {
	expected, err := tagReader(v.provider, v.secret, r)
	if err != nil {
		return err
	}

	if !v.provider.equal(expected, sig) {
		return ErrVerifyFailed{}
	}

	return nil
}

func tagReader(p HMACProvider, secret []byte, r io.Reader) (Signature, error) {
	mac := p.New(secret)
	if _, err := io.Copy(mac, r); err != nil {
		return Signature{}, fmt.Errorf("failed to read message: %w", err)
	}

	return truncateMAC(mac.Sum(nil)), nil
}
