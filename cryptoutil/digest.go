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
	"crypto/sha256"
	"encoding/hex"
	"hash"

	"github.com/scanhound/cryptokit/registry"
)

// Digest is a SHA-256 digest. Its external form is 64 lowercase hex characters.
type Digest [DigestSize]byte

// Hex returns the lowercase hexadecimal encoding of the digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// Short returns the first ShortHashLength hex characters of the digest.
// See ShortHash for the restrictions on its use.
func (d Digest) Short() string {
	return d.Hex()[:ShortHashLength]
}

// ParseDigest parses the 64 character lowercase hex form of a digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(DigestSize) || !isLowerHex(s) {
		return d, ErrInvalidDigest{Value: s}
	}

	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, ErrInvalidDigest{Value: s}
	}

	return d, nil
}

// DigestProvider is one implementation strategy of the digest engine.
// Every provider must produce bit-identical SHA-256 output.
type DigestProvider interface {
	Name() string
	New() hash.Hash
	Sum(message []byte) Digest
}

var digestProviders = registry.New[DigestProvider]()

func init() {
	digestProviders.Register(string(StrategyPlatform), "Go standard library crypto/sha256 (may use CPU SHA extensions)", func() DigestProvider {
		return PlatformDigestProvider{}
	})

	digestProviders.Register(string(StrategyPure), "portable bit-level FIPS 180-4 implementation", func() DigestProvider {
		return PureDigestProvider{}
	})
}

// DigestProviderFor returns the provider registered for the strategy.
func DigestProviderFor(s Strategy) (DigestProvider, error) {
	p, err := digestProviders.NewEntity(string(s))
	if err != nil {
		return nil, ErrUnknownStrategy{Name: string(s)}
	}

	return p, nil
}

// DigestProviderEntries lists every registered digest provider.
func DigestProviderEntries() []registry.Entry[DigestProvider] {
	return digestProviders.AllEntries()
}

type PlatformDigestProvider struct{}

func (PlatformDigestProvider) Name() string { return string(StrategyPlatform) }

func (PlatformDigestProvider) New() hash.Hash { return sha256.New() }

func (PlatformDigestProvider) Sum(message []byte) Digest {
	return Digest(sha256.Sum256(message))
}

type PureDigestProvider struct{}

func (PureDigestProvider) Name() string { return string(StrategyPure) }

func (PureDigestProvider) New() hash.Hash { return NewPureSHA256() }

func (PureDigestProvider) Sum(message []byte) Digest {
	return Digest(SumPure256(message))
}

func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}

	return true
}
