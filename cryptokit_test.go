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

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/scanhound/cryptokit/config"
	"github.com/scanhound/cryptokit/cryptoutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	digestPattern    = regexp.MustCompile(`^[0-9a-f]{64}$`)
	signaturePattern = regexp.MustCompile(`^sig_[0-9a-f]{32}$`)
	keyIDPattern     = regexp.MustCompile(`^key_[0-9a-f]{32}$`)
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func instances(t *testing.T) map[string]*Primitives {
	t.Helper()
	out := map[string]*Primitives{}
	for _, s := range []cryptoutil.Strategy{cryptoutil.StrategyPlatform, cryptoutil.StrategyPure} {
		p, err := New(WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, s, p.Capabilities().Strategy)
		out[string(s)] = p
	}

	return out
}

func TestDigest(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{input: "abc", expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{input: "hello", expected: "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}

	for name, p := range instances(t) {
		for _, tt := range tests {
			t.Run(name+"/"+tt.input, func(t *testing.T) {
				got := p.Digest([]byte(tt.input))
				assert.Equal(t, tt.expected, got)
				assert.Regexp(t, digestPattern, got)
				assert.Equal(t, tt.expected, p.DigestString(tt.input))
			})
		}
	}

	assert.Equal(t, tests[1].expected, Digest([]byte("abc")))
	assert.Equal(t, tests[1].expected, DigestString("abc"))
}

func TestDigestReader(t *testing.T) {
	for name, p := range instances(t) {
		t.Run(name, func(t *testing.T) {
			msg := strings.Repeat("stream me ", 1000)
			got, err := p.DigestReader(strings.NewReader(msg))
			require.NoError(t, err)
			assert.Equal(t, p.Digest([]byte(msg)), got)

			_, err = p.DigestReader(errReader{})
			assert.Error(t, err)
		})
	}
}

func TestDigestProperties(t *testing.T) {
	assert.Equal(t, Digest([]byte("message1")), Digest([]byte("message1")))
	assert.NotEqual(t, Digest([]byte("message1")), Digest([]byte("message2")))
	assert.Regexp(t, digestPattern, Digest([]byte("test message")))
}

func TestDigestLegacyTextEncoding(t *testing.T) {
	utf8, err := New()
	require.NoError(t, err)
	legacy, err := New(WithTextEncoding(cryptoutil.EncodingLegacyUTF16))
	require.NoError(t, err)

	for _, s := range []string{"plain ascii", "café", "日本語"} {
		assert.Equal(t, utf8.DigestString(s), legacy.DigestString(s), s)
	}

	assert.NotEqual(t, utf8.DigestString("😀"), legacy.DigestString("😀"))
	assert.Equal(t, utf8.Digest([]byte{0xed, 0xa0, 0xbd, 0xed, 0xb8, 0x80}), legacy.DigestString("😀"))
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "2cf24dba5fb0a30e", ShortHash("hello"))
	assert.Equal(t, Digest([]byte("hello"))[:16], ShortHash("hello"))
	assert.Len(t, ShortHash(""), 16)
	assert.Equal(t, ShortHash("x"), ShortHash("x"))
}

func TestSign(t *testing.T) {
	for name, p := range instances(t) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "sig_b613679a0814d9ec772f95d778c35fc5", p.Sign(nil, nil))
			assert.Equal(t, "sig_b82fcb791acec57859b989b430a82648", p.Sign([]byte("payload"), []byte("secret")))

			sig := p.Sign([]byte("data"), []byte("secret"))
			assert.Regexp(t, signaturePattern, sig)
			assert.Equal(t, sig, p.Sign([]byte("data"), []byte("secret")))
			assert.NotEqual(t, sig, p.Sign([]byte("data"), []byte("other")))
			assert.NotEqual(t, sig, p.Sign([]byte("datb"), []byte("secret")))
		})
	}
}

func TestVerify(t *testing.T) {
	data := []byte("scan-result")
	secret := []byte("tenant-secret")
	sig := Sign(data, secret)

	tests := []struct {
		name      string
		data      []byte
		signature string
		secret    []byte
		expected  bool
	}{
		{name: "valid", data: data, signature: sig, secret: secret, expected: true},
		{name: "wrong secret", data: data, signature: sig, secret: []byte("tenant-secreu"), expected: false},
		{name: "modified data", data: []byte("scan-resulu"), signature: sig, secret: secret, expected: false},
		{name: "flipped hex", data: data, signature: sig[:len(sig)-1] + flipHex(sig[len(sig)-1]), secret: secret, expected: false},
		{name: "empty", data: data, signature: "", secret: secret, expected: false},
		{name: "no prefix", data: data, signature: strings.TrimPrefix(sig, "sig_"), secret: secret, expected: false},
		{name: "uppercase", data: data, signature: "sig_" + strings.ToUpper(sig[4:]), secret: secret, expected: false},
		{name: "too long", data: data, signature: sig + "00", secret: secret, expected: false},
		{name: "not hex", data: data, signature: "sig_" + strings.Repeat("zz", 16), secret: secret, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Verify(tt.data, tt.signature, tt.secret))
		})
	}
}

func flipHex(c byte) string {
	if c == '0' {
		return "1"
	}

	return "0"
}

func TestSignVerifyAcrossStrategies(t *testing.T) {
	ps := instances(t)
	platform, pure := ps["platform"], ps["pure"]

	for _, msg := range []string{"", "a", strings.Repeat("long input ", 100)} {
		sig := platform.Sign([]byte(msg), []byte("k"))
		assert.Equal(t, sig, pure.Sign([]byte(msg), []byte("k")))
		assert.True(t, pure.Verify([]byte(msg), sig, []byte("k")))
		assert.Equal(t, platform.Digest([]byte(msg)), pure.Digest([]byte(msg)))
	}
}

func TestSignReader(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	sig, err := p.SignReader(strings.NewReader("payload"), []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, p.Sign([]byte("payload"), []byte("secret")), sig)

	require.NoError(t, p.VerifyReader(strings.NewReader("payload"), sig, []byte("secret")))
	assert.ErrorIs(t, p.VerifyReader(strings.NewReader("payload2"), sig, []byte("secret")), cryptoutil.ErrVerifyFailed{})
	assert.ErrorAs(t, p.VerifyReader(strings.NewReader("payload"), "sig_nope", []byte("secret")), &cryptoutil.ErrInvalidSignature{})
}

func TestSecureID(t *testing.T) {
	id, err := SecureID("", 16)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), id)

	id, err = SecureID("req_", 8)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^req_[0-9a-f]{16}$`), id)

	seen := map[string]struct{}{}
	for i := 0; i < 10000; i++ {
		id, err := SecureID("", 16)
		require.NoError(t, err)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 10000)
}

func TestKeyID(t *testing.T) {
	id, err := KeyID()
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.Regexp(t, keyIDPattern, id)
}

func TestEntropySource(t *testing.T) {
	p, err := New(WithEntropySource(bytes.NewReader(bytes.Repeat([]byte{0xab}, 4))))
	require.NoError(t, err)
	id, err := p.SecureID("t_", 4)
	require.NoError(t, err)
	assert.Equal(t, "t_abababab", id)

	p, err = New(WithEntropySource(errReader{}))
	require.NoError(t, err)
	_, err = p.KeyID()
	assert.ErrorAs(t, err, &cryptoutil.ErrEntropyUnavailable{})

	p, err = New(WithEntropySource(nil))
	require.NoError(t, err)
	_, err = p.SecureID("", 16)
	assert.ErrorIs(t, err, cryptoutil.ErrNoEntropySource{})

	_, err = p.SecureID("", 0)
	assert.ErrorAs(t, err, &cryptoutil.ErrInvalidIDLength{})
}

func TestNewID(t *testing.T) {
	c := config.Defaults()
	c.IDBytes = 4
	p, err := New(WithConfig(c))
	require.NoError(t, err)

	id, err := p.NewID("n_")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^n_[0-9a-f]{8}$`), id)
}

func TestNewWithConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  config.Config
		check   func(t *testing.T, p *Primitives)
		wantErr func(t *testing.T, err error)
	}{
		{
			name:   "defaults",
			config: config.Defaults(),
			check: func(t *testing.T, p *Primitives) {
				assert.Equal(t, cryptoutil.StrategyPlatform, p.Capabilities().Strategy)
				assert.Equal(t, cryptoutil.EncodingUTF8, p.TextEncoding())
			},
		},
		{
			name:   "pure legacy",
			config: config.Config{Strategy: "pure", TextEncoding: "legacy-utf16", IDBytes: 16, LogLevel: "info"},
			check: func(t *testing.T, p *Primitives) {
				assert.Equal(t, cryptoutil.StrategyPure, p.Capabilities().Strategy)
				assert.Equal(t, cryptoutil.EncodingLegacyUTF16, p.TextEncoding())
			},
		},
		{
			name:   "unknown strategy",
			config: config.Config{Strategy: "gpu", IDBytes: 16},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorAs(t, err, &cryptoutil.ErrUnknownStrategy{})
			},
		},
		{
			name:   "unknown encoding",
			config: config.Config{TextEncoding: "ebcdic", IDBytes: 16},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorAs(t, err, &cryptoutil.ErrUnknownTextEncoding{})
			},
		},
		{
			name:   "zero id bytes",
			config: config.Config{},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorAs(t, err, &cryptoutil.ErrInvalidIDLength{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(WithConfig(tt.config))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, p)
				tt.wantErr(t, err)
				return
			}

			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestDefaultIsStable(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Primitives, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Default()
		}(i)
	}

	wg.Wait()
	for _, p := range got {
		assert.Same(t, got[0], p)
	}
	assert.Equal(t, got[0].Capabilities().Strategy, Default().Capabilities().Strategy)
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	want := Sign([]byte("m"), []byte("s"))
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Sign([]byte("m"), []byte("s")))
			assert.True(t, Verify([]byte("m"), want, []byte("s")))
			_, err := KeyID()
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
}
