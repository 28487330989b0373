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
	"maps"
	"sort"
	"strings"
)

// Obfuscated replaces the value of every sensitive variable in a capture.
const Obfuscated = "******"

// DefaultSensitiveEnvList returns the keys and glob patterns treated as secrets.
// CRYPTOKIT_SECRET is listed explicitly since the CLI reads signing secrets from it.
func DefaultSensitiveEnvList() map[string]struct{} {
	return map[string]struct{}{
		"CRYPTOKIT_SECRET":      {},
		"AWS_ACCESS_KEY_ID":     {},
		"AWS_SECRET_ACCESS_KEY": {},
		"AWS_SESSION_TOKEN":     {},
		"GITHUB_TOKEN":          {},
		"GITLAB_TOKEN":          {},
		"NPM_TOKEN":             {},
		"VAULT_TOKEN":           {},
		"*_SECRET":              {},
		"*_SECRET_*":            {},
		"*_TOKEN":               {},
		"*_PASSWORD":            {},
		"*_PASSWD":              {},
		"*_KEY":                 {},
		"*_PRIVATE_KEY":         {},
		"*_API_KEY":             {},
		"*_CREDENTIALS":         {},
	}
}

type Capture struct {
	sensitiveVarsList           map[string]struct{}
	addSensitiveVarsList        map[string]struct{}
	excludeSensitiveVarsList    map[string]struct{}
	prefixes                    []string
	filterVarsEnabled           bool
	disableSensitiveVarsDefault bool
}

type CaptureOption func(*Capture)

// WithFilterVarsEnabled removes sensitive variables instead of obfuscating them.
func WithFilterVarsEnabled() CaptureOption {
	return func(c *Capture) {
		c.filterVarsEnabled = true
	}
}

// WithAdditionalKeys adds keys or glob patterns to the sensitive list.
func WithAdditionalKeys(additionalKeys []string) CaptureOption {
	return func(c *Capture) {
		for _, value := range additionalKeys {
			c.addSensitiveVarsList[value] = struct{}{}
		}
	}
}

// WithExcludeKeys keeps the listed keys as they are even when they match the sensitive list.
func WithExcludeKeys(excludeKeys []string) CaptureOption {
	return func(c *Capture) {
		for _, value := range excludeKeys {
			c.excludeSensitiveVarsList[value] = struct{}{}
		}
	}
}

// WithDisableDefaultSensitiveList only uses the keys given with WithAdditionalKeys.
func WithDisableDefaultSensitiveList() CaptureOption {
	return func(c *Capture) {
		c.disableSensitiveVarsDefault = true
	}
}

// WithPrefixes limits the capture to variables whose key starts with one of prefixes.
func WithPrefixes(prefixes ...string) CaptureOption {
	return func(c *Capture) {
		c.prefixes = append(c.prefixes, prefixes...)
	}
}

func New(opts ...CaptureOption) *Capture {
	capture := &Capture{
		sensitiveVarsList:        DefaultSensitiveEnvList(),
		addSensitiveVarsList:     map[string]struct{}{},
		excludeSensitiveVarsList: map[string]struct{}{},
	}

	for _, opt := range opts {
		opt(capture)
	}

	return capture
}

// Capture returns env as a map with sensitive values obfuscated or removed.
func (c *Capture) Capture(env []string) map[string]string {
	variables := make(map[string]string)

	sensitive := map[string]struct{}{}
	if !c.disableSensitiveVarsDefault {
		maps.Copy(sensitive, c.sensitiveVarsList)
	}
	maps.Copy(sensitive, c.addSensitiveVarsList)

	onAllowed := func(key, val, _ string) {
		if c.selected(key) {
			variables[key] = val
		}
	}

	if c.filterVarsEnabled {
		FilterEnvironmentArray(env, sensitive, c.excludeSensitiveVarsList, onAllowed)
	} else {
		ObfuscateEnvironmentArray(env, sensitive, c.excludeSensitiveVarsList, onAllowed)
	}

	return variables
}

func (c *Capture) selected(key string) bool {
	if len(c.prefixes) == 0 {
		return true
	}

	for _, p := range c.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}

	return false
}

// SortedKeys returns the keys of a capture in lexical order.
func SortedKeys(variables map[string]string) []string {
	keys := make([]string, 0, len(variables))
	for k := range variables {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// splitVariable splits a string representing an environment variable in the format of
// "KEY=VAL" and returns the key and val separately.
func splitVariable(v string) (key, val string) {
	parts := strings.SplitN(v, "=", 2)
	key = parts[0]
	if len(parts) > 1 {
		val = parts[1]
	}

	return
}
