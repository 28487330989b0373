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

// SecureID returns prefix followed by 2*byteLength lowercase hex characters drawn
// from the entropy source. No identifier is returned when the source fails.
func (p *Primitives) SecureID(prefix string, byteLength int) (string, error) {
	return p.ids.SecureID(prefix, byteLength)
}

// NewID returns a SecureID with the configured default length.
func (p *Primitives) NewID(prefix string) (string, error) {
	return p.ids.SecureID(prefix, p.idBytes)
}

// KeyID returns "key_" followed by 32 lowercase hex characters.
func (p *Primitives) KeyID() (string, error) {
	return p.ids.KeyID()
}

func (p *Primitives) UUID() (string, error) {
	return p.ids.UUID()
}

func SecureID(prefix string, byteLength int) (string, error) {
	return Default().SecureID(prefix, byteLength)
}

func KeyID() (string, error) {
	return Default().KeyID()
}
