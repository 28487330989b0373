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

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/scanhound/cryptokit/cryptoutil"
)

var directory string

func init() {
	flag.StringVar(&directory, "dir", "schemagen", "Directory to store the generated docs")
	flag.Parse()
}

func main() {
	docs := map[string]any{
		"cryptoutil": cryptoutil.PackageDocumentation(),
		"strategies": cryptoutil.GetStrategyDocumentation(),
	}

	for name, doc := range docs {
		docJson, err := json.Marshal(doc)
		if err != nil {
			log.Fatal(err)
		}

		var indented bytes.Buffer
		err = json.Indent(&indented, docJson, "", "  ")
		if err != nil {
			fmt.Println("Error marshalling documentation:", err)
			os.Exit(1)
		}

		path := filepath.Join(directory, name+".json")
		log.Printf("Writing documentation for %s to %s", name, path)
		err = os.WriteFile(path, indented.Bytes(), 0644)
		if err != nil {
			log.Fatal("Error writing to file:", err)
		}
	}
}
