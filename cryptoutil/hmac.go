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
	"crypto/hmac"
	"encoding/hex"
	"hash"
	"strings"
)

const (
	// SignatureSize is the number of HMAC-SHA-256 output bytes kept in a Signature.
	SignatureSize = 16

	// SignaturePrefix is prepended to the hex form of every Signature.
	SignaturePrefix = "sig_"
)

// Signature is a truncated HMAC-SHA-256 tag. Its external form is SignaturePrefix
// followed by 32 lowercase hex characters.
type Signature [SignatureSize]byte

func (s Signature) String() string {
	return SignaturePrefix + hex.EncodeToString(s[:])
}

// ParseSignature parses the external form of a Signature.
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	encoded, ok := strings.CutPrefix(s, SignaturePrefix)
	if !ok || len(encoded) != hex.EncodedLen(SignatureSize) || !isLowerHex(encoded) {
		return sig, ErrInvalidSignature{Value: s}
	}

	if _, err := hex.Decode(sig[:], []byte(encoded)); err != nil {
		return sig, ErrInvalidSignature{Value: s}
	}

	return sig, nil
}

// SignatureProvider derives keyed tags from a message and a secret.
type SignatureProvider interface {
	Sign(data, secret []byte) Signature
	Verify(data []byte, sig Signature, secret []byte) bool
}

// HMACProvider computes HMAC-SHA-256 over the digest provider it was built with.
// The platform provider goes through crypto/hmac, every other provider through
// an RFC 2104 construction on the provider's own hash, so the tags are identical
// whichever strategy is active.
type HMACProvider struct {
	digest DigestProvider
}

var _ SignatureProvider = HMACProvider{}

func NewHMACProvider(digest DigestProvider) HMACProvider {
	return HMACProvider{digest: digest}
}

// New returns a streaming HMAC-SHA-256 keyed with secret.
func (p HMACProvider) New(secret []byte) hash.Hash {
	if _, ok := p.digest.(PlatformDigestProvider); ok {
		return hmac.New(p.digest.New, secret)
	}

	return newKeyedHash(p.digest.New, secret)
}

// MAC returns the full 32 byte HMAC-SHA-256 of data under secret.
func (p HMACProvider) MAC(data, secret []byte) []byte {
	mac := p.New(secret)
	_, _ = mac.Write(data)
	return mac.Sum(nil)
}

func (p HMACProvider) Sign(data, secret []byte) Signature {
	return truncateMAC(p.MAC(data, secret))
}

// Verify recomputes the tag and compares it in constant time.
func (p HMACProvider) Verify(data []byte, sig Signature, secret []byte) bool {
	return p.equal(p.Sign(data, secret), sig)
}

func (p HMACProvider) equal(a, b Signature) bool {
	return hmac.Equal(a[:], b[:])
}

func truncateMAC(mac []byte) Signature {
	var sig Signature
	copy(sig[:], mac)
	return sig
}

// keyedHash is HMAC as defined in RFC 2104, built on an arbitrary hash.Hash.
type keyedHash struct {
	inner hash.Hash
	outer hash.Hash
	ipad  []byte
	opad  []byte
}

func newKeyedHash(newHash func() hash.Hash, key []byte) hash.Hash {
	k := &keyedHash{
		inner: newHash(),
		outer: newHash(),
	}

	bs := k.inner.BlockSize()
	if len(key) > bs {
		_, _ = k.outer.Write(key)
		key = k.outer.Sum(nil)
		k.outer.Reset()
	}

	k.ipad = make([]byte, bs)
	k.opad = make([]byte, bs)
	copy(k.ipad, key)
	copy(k.opad, key)
	for i := range k.ipad {
		k.ipad[i] ^= 0x36
		k.opad[i] ^= 0x5c
	}

	_, _ = k.inner.Write(k.ipad)
	return k
}

func (k *keyedHash) Write(p []byte) (int, error) {
	return k.inner.Write(p)
}

func (k *keyedHash) Sum(in []byte) []byte {
	innerSum := k.inner.Sum(nil)
	k.outer.Reset()
	_, _ = k.outer.Write(k.opad)
	_, _ = k.outer.Write(innerSum)
	return k.outer.Sum(in)
}

func (k *keyedHash) Reset() {
	k.inner.Reset()
	_, _ = k.inner.Write(k.ipad)
}

func (k *keyedHash) Size() int { return k.outer.Size() }

func (k *keyedHash) BlockSize() int { return k.inner.BlockSize() }
