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

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/scanhound/cryptokit/log"
)

type matcher struct {
	keys  map[string]struct{}
	globs []glob.Glob
}

func newMatcher(keys map[string]struct{}) matcher {
	m := matcher{keys: keys}
	for k := range keys {
		if !strings.Contains(k, "*") {
			continue
		}

		g, err := glob.Compile(k)
		if err != nil {
			log.Errorf("sensitive key glob pattern could not be interpreted: %w", err)
			continue
		}

		m.globs = append(m.globs, g)
	}

	return m
}

func (m matcher) match(key string) bool {
	if _, ok := m.keys[key]; ok {
		return true
	}

	for _, g := range m.globs {
		if g.Match(key) {
			return true
		}
	}

	return false
}
