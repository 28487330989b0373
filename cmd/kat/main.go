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

// kat runs the known-answer vectors against every registered digest strategy,
// including the long vectors the start-up self-test skips, and reports any
// divergence between the strategies.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scanhound/cryptokit/cryptoutil"
)

// vectorFile is the layout of an optional file with extra digest vectors.
type vectorFile struct {
	Digests []struct {
		Name    string `json:"name"`
		Message string `json:"message"`
		Repeat  int    `json:"repeat"`
		Digest  string `json:"digest"`
	} `json:"digests"`
}

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s [vectors.json]\n", os.Args[0])
		os.Exit(1)
	}

	var extra []cryptoutil.DigestVector
	if len(os.Args) == 2 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read vector file: %v\n", err)
			os.Exit(1)
		}

		var vf vectorFile
		if err := json.Unmarshal(data, &vf); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse vector file: %v\n", err)
			os.Exit(1)
		}

		for _, v := range vf.Digests {
			extra = append(extra, cryptoutil.DigestVector{Name: v.Name, Message: []byte(v.Message), Repeat: v.Repeat, Digest: v.Digest})
		}

		fmt.Printf("Loaded %d extra digest vectors from %s\n", len(extra), os.Args[1])
	}

	failed := false
	entries := cryptoutil.DigestProviderEntries()
	fmt.Printf("Running %d digest and %d MAC vectors against %d strategies\n",
		len(cryptoutil.DigestVectors)+len(extra), len(cryptoutil.MACVectors), len(entries))

	for _, entry := range entries {
		p := entry.Factory()
		fmt.Printf("\n=== %s: %s ===\n", entry.Name, entry.Description)

		if err := cryptoutil.RunKnownAnswerTests(p); err != nil {
			fmt.Printf("❌ built-in vectors: %v\n", err)
			failed = true
		} else {
			fmt.Println("✅ built-in vectors")
		}

		for _, v := range extra {
			got := p.Sum(v.Input()).Hex()
			if got != v.Digest {
				fmt.Printf("❌ %s: want %s, got %s\n", v.Name, v.Digest, got)
				failed = true
				continue
			}

			fmt.Printf("✅ %s\n", v.Name)
		}
	}

	caps, err := cryptoutil.DetectCapabilities()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n❌ Capability probe FAILED: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nProbe selected the %s strategy (platform available: %v, FIPS 140: %v)\n",
		caps.Strategy, caps.PlatformAvailable, caps.FIPS140)

	if failed {
		fmt.Fprintln(os.Stderr, "\n❌ Known-answer tests FAILED")
		os.Exit(1)
	}

	fmt.Println("\n✅ All strategies agree on every vector")
}
