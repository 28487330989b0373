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

// Documentation provides structured documentation for the cryptoutil package
type Documentation struct {
	Summary     string             `json:"summary" yaml:"summary" jsonschema:"title=Summary,description=Brief description of the package"`
	Description string             `json:"description" yaml:"description" jsonschema:"title=Description,description=Detailed description of the package functionality"`
	Usage       []string           `json:"usage" yaml:"usage" jsonschema:"title=Usage,description=Common use cases and scenarios"`
	Examples    map[string]Example `json:"examples" yaml:"examples" jsonschema:"title=Examples,description=Code examples demonstrating package usage"`
}

// Example represents a code example with explanation
type Example struct {
	Description string `json:"description" yaml:"description" jsonschema:"title=Description,description=What this example demonstrates"`
	Code        string `json:"code" yaml:"code" jsonschema:"title=Code,description=Example code snippet"`
}

// PackageDocumentation returns the documentation for the cryptoutil package
func PackageDocumentation() Documentation {
	return Documentation{
		Summary: "SHA-256 digests, truncated HMAC-SHA-256 signatures and secure random identifiers",
		Description: `The cryptoutil package provides the primitives the rest of the platform builds on:
- Digest: SHA-256 from the Go standard library or from a portable pure implementation
- Capability probe: selects the implementation once, after both pass known-answer tests
- Signatures: HMAC-SHA-256 truncated to 16 bytes, rendered as sig_<32 hex>
- Identifiers: prefix + hex of n bytes from crypto/rand, with no fallback source
- Short hash: the first 16 hex characters of a digest, for deduplication only`,
		Usage: []string{
			"Fingerprint scan findings and uploaded content",
			"Issue and check request signatures for API clients",
			"Issue opaque API key identifiers",
			"Build deduplication keys for display and grouping (never for security decisions)",
		},
		Examples: map[string]Example{
			"digest": {
				Description: "Compute the SHA-256 digest of a message with the probed engine",
				Code: `caps, err := DetectCapabilities()
if err != nil {
    log.Fatal(err)
}

fmt.Println(caps.DigestProvider().Sum([]byte("test message")).Hex())`,
			},
			"sign_and_verify": {
				Description: "Sign a message and verify the tag",
				Code: `signer, err := NewSigner([]byte("secret"))
if err != nil {
    log.Fatal(err)
}

sig, err := signer.Sign(strings.NewReader("payload"))
if err != nil {
    log.Fatal(err)
}

verifier, _ := signer.Verifier()
err = verifier.Verify(strings.NewReader("payload"), sig)`,
			},
			"key_id": {
				Description: "Issue a new API key identifier",
				Code: `id, err := NewIDGenerator().KeyID()
if err != nil {
    // no secure entropy: refuse to issue a key
    return err
}`,
			},
		},
	}
}

// StrategyDocumentation describes the available digest engine strategies
type StrategyDocumentation struct {
	Overview   string   `json:"overview" yaml:"overview" jsonschema:"title=Overview,description=How the digest engine is selected"`
	Strategies []string `json:"strategies" yaml:"strategies" jsonschema:"title=Strategies,description=Registered digest engine strategies"`
	Encodings  []string `json:"encodings" yaml:"encodings" jsonschema:"title=Encodings,description=Text encodings applied before hashing"`
}

// GetStrategyDocumentation returns documentation for the registered strategies
func GetStrategyDocumentation() StrategyDocumentation {
	strategies := make([]string, 0)
	for _, entry := range DigestProviderEntries() {
		strategies = append(strategies, entry.Name+" - "+entry.Description)
	}

	return StrategyDocumentation{
		Overview:   "The probe prefers the platform engine and falls back to the pure engine only if the platform engine fails its self-test. Both produce identical digests and signatures.",
		Strategies: strategies,
		Encodings: []string{
			string(EncodingUTF8) + " - standard UTF-8 (default)",
			string(EncodingLegacyUTF16) + " - per UTF-16 code unit, three bytes at most, for fingerprints stored by the previous implementation",
		},
	}
}
