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

// FilterEnvironmentArray expects an array of strings in the format of "KEY=VALUE".
// onAllowed is called for every variable that does not match blockList, or that is
// named in excludeKeys.
func FilterEnvironmentArray(variables []string, blockList map[string]struct{}, excludeKeys map[string]struct{}, onAllowed func(key, val, orig string)) {
	m := newMatcher(blockList)
	for _, v := range variables {
		key, val := splitVariable(v)
		if _, excluded := excludeKeys[key]; !excluded && m.match(key) {
			continue
		}

		onAllowed(key, val, v)
	}
}
