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

// ShortHashLength is the number of hex characters in a short hash (64 bits).
const ShortHashLength = 16

// ShortHash returns the first 16 hex characters of the SHA-256 digest of message,
// encoded with enc, computed by p.
//
// A short hash is a 64-bit fingerprint for deduplication keys and compact display.
// It is not collision resistant enough for authentication, authorization or
// integrity checks and must never be used for them.
func ShortHash(p DigestProvider, message string, enc TextEncoding) string {
	return p.Sum(EncodeText(message, enc)).Short()
}
