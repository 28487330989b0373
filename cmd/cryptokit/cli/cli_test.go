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

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	var out, errOut bytes.Buffer
	cmd := New()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestDigestCommand(t *testing.T) {
	out, err := run(t, "", "digest", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out)

	out, err = run(t, "abc", "digest")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad\n", out)

	path := filepath.Join(t.TempDir(), "msg")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	out, err = run(t, "", "digest", "--strategy", "pure", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855\n", out)

	_, err = run(t, "", "digest", "-f", path, "abc")
	assert.Error(t, err)
}

func TestShortHashCommand(t *testing.T) {
	out, err := run(t, "", "shorthash", "hello")
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e\n", out)
}

func TestSignAndVerifyCommands(t *testing.T) {
	out, err := run(t, "", "sign", "--secret", "secret", "payload")
	require.NoError(t, err)
	assert.Equal(t, "sig_b82fcb791acec57859b989b430a82648\n", out)

	t.Setenv("CRYPTOKIT_SECRET", "secret")
	out, err = run(t, "payload", "sign")
	require.NoError(t, err)
	sig := strings.TrimSpace(out)
	assert.Equal(t, "sig_b82fcb791acec57859b989b430a82648", sig)

	out, err = run(t, "", "verify", "-s", sig, "payload")
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)

	_, err = run(t, "", "verify", "-s", sig, "--secret", "other", "payload")
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, "", "verify", "-s", "sig_short", "payload")
	assert.ErrorIs(t, err, ErrVerificationFailed)
}

func TestIDCommands(t *testing.T) {
	out, err := run(t, "", "id", "--prefix", "scan_", "--bytes", "4", "-n", "3")
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.Regexp(t, `^scan_[0-9a-f]{8}$`, l)
	}

	out, err = run(t, "", "id", "--id-bytes", "2")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{4}\n$`, out)

	out, err = run(t, "", "keyid")
	require.NoError(t, err)
	assert.Regexp(t, `^key_[0-9a-f]{32}\n$`, out)

	out, err = run(t, "", "uuid")
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f-]{36}\n$`, out)

	_, err = run(t, "", "id", "--bytes", "0")
	assert.Error(t, err)
}

func TestProbeCommand(t *testing.T) {
	out, err := run(t, "", "probe", "--json", "--strategy", "pure")
	require.NoError(t, err)

	var caps map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &caps))
	assert.Equal(t, "pure", caps["strategy"])
	assert.Equal(t, true, caps["platformAvailable"])

	out, err = run(t, "", "probe")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: platform")
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("text-encoding: legacy-utf16\n"), 0o600))

	out, err := run(t, "", "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "text-encoding: legacy-utf16")
	assert.Contains(t, out, "strategy: auto")

	out, err = run(t, "", "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"id-bytes"`)

	_, err = run(t, "", "config", "--strategy", "fast")
	assert.Error(t, err)
}

func TestEnvCommand(t *testing.T) {
	t.Setenv("CRYPTOKIT_SECRET", "hunter2")
	t.Setenv("CRYPTOKIT_LOG_LEVEL", "warn")

	out, err := run(t, "", "env")
	require.NoError(t, err)
	assert.Contains(t, out, "CRYPTOKIT_SECRET=******\n")
	assert.Contains(t, out, "CRYPTOKIT_LOG_LEVEL=warn\n")
	assert.NotContains(t, out, "hunter2")
	assert.NotContains(t, out, "HOME=")

	out, err = run(t, "", "env", "--filter")
	require.NoError(t, err)
	assert.NotContains(t, out, "CRYPTOKIT_SECRET")
}

func TestDocsCommand(t *testing.T) {
	out, err := run(t, "", "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "platform")
	assert.Contains(t, out, "legacy-utf16")
}
