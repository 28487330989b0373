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
	"crypto/rand"
	"encoding/hex"
	"io"
	"strings"

	"github.com/google/uuid"
)

const (
	// KeyIDPrefix is the literal prefix of identifiers returned by KeyID.
	KeyIDPrefix = "key_"

	// KeyIDBytes is the number of random bytes in a KeyID.
	KeyIDBytes = 16
)

// IDGenerator produces identifiers from a cryptographically secure entropy source.
// It never falls back to a predictable source: when the source is missing or fails,
// the call returns an error and no identifier.
type IDGenerator struct {
	entropy io.Reader
}

type IDGeneratorOption func(*IDGenerator)

// WithEntropySource replaces crypto/rand.Reader. The reader must be safe for
// concurrent use if the generator is shared.
func WithEntropySource(r io.Reader) IDGeneratorOption {
	return func(g *IDGenerator) {
		g.entropy = r
	}
}

func NewIDGenerator(opts ...IDGeneratorOption) *IDGenerator {
	g := &IDGenerator{
		entropy: rand.Reader,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Random returns n bytes read from the entropy source.
func (g *IDGenerator) Random(n int) ([]byte, error) {
	if n < 1 {
		return nil, ErrInvalidIDLength{Length: n}
	}

	if g == nil || g.entropy == nil {
		return nil, ErrNoEntropySource{}
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(g.entropy, b); err != nil {
		return nil, ErrEntropyUnavailable{Err: err}
	}

	return b, nil
}

// SecureID returns prefix followed by the lowercase hex encoding of byteLength
// random bytes.
func (g *IDGenerator) SecureID(prefix string, byteLength int) (string, error) {
	b, err := g.Random(byteLength)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + hex.EncodedLen(byteLength))
	sb.WriteString(prefix)
	sb.WriteString(hex.EncodeToString(b))
	return sb.String(), nil
}

// KeyID returns a "key_" prefixed identifier with 16 random bytes.
func (g *IDGenerator) KeyID() (string, error) {
	return g.SecureID(KeyIDPrefix, KeyIDBytes)
}

// UUID returns a random (version 4) UUID drawn from the same entropy source.
func (g *IDGenerator) UUID() (string, error) {
	if g == nil || g.entropy == nil {
		return "", ErrNoEntropySource{}
	}

	id, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		return "", ErrEntropyUnavailable{Err: err}
	}

	return id.String(), nil
}

// ValidIdentifier reports whether id is prefix followed by exactly 2*byteLength
// lowercase hex characters.
func ValidIdentifier(id, prefix string, byteLength int) bool {
	encoded, ok := strings.CutPrefix(id, prefix)
	if !ok || byteLength < 1 {
		return false
	}

	return len(encoded) == hex.EncodedLen(byteLength) && isLowerHex(encoded)
}
