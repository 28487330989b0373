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

package environment

// ObfuscateEnvironmentArray expects an array of strings in the format of "KEY=VALUE".
// Every variable is passed to onAllowed; the value of those matching obfuscateList,
// and not named in excludeKeys, is replaced by Obfuscated.
func ObfuscateEnvironmentArray(variables []string, obfuscateList map[string]struct{}, excludeKeys map[string]struct{}, onAllowed func(key, val, orig string)) {
	m := newMatcher(obfuscateList)
	for _, v := range variables {
		key, val := splitVariable(v)
		if _, excluded := excludeKeys[key]; !excluded && m.match(key) {
			val = Obfuscated
		}

		onAllowed(key, val, v)
	}
}
