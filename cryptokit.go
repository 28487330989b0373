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

// Package cryptokit provides the hashing, signing and identifier primitives used
// across the scanning platform: SHA-256 digests, HMAC-SHA-256 request signatures,
// random identifiers and short non-cryptographic fingerprints.
//
// The package level functions use a process wide instance that probes the
// available digest engines on first use. Callers that need a different strategy,
// text encoding or entropy source build their own instance with New.
package cryptokit

import (
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/scanhound/cryptokit/config"
	"github.com/scanhound/cryptokit/cryptoutil"
	"github.com/scanhound/cryptokit/log"
)

type options struct {
	strategy     cryptoutil.Strategy
	textEncoding cryptoutil.TextEncoding
	idBytes      int
	entropy      io.Reader
	entropySet   bool
}

type Option func(o *options)

// WithConfig applies the strategy, text encoding and identifier length of c.
func WithConfig(c config.Config) Option {
	return func(o *options) {
		o.strategy = cryptoutil.Strategy(c.Strategy)
		o.textEncoding = cryptoutil.TextEncoding(c.TextEncoding)
		o.idBytes = c.IDBytes
	}
}

func WithStrategy(s cryptoutil.Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

func WithTextEncoding(e cryptoutil.TextEncoding) Option {
	return func(o *options) {
		o.textEncoding = e
	}
}

// WithEntropySource replaces crypto/rand.Reader for identifier generation. The
// source is not read until an identifier is requested; Capabilities keeps
// reporting on crypto/rand.
func WithEntropySource(r io.Reader) Option {
	return func(o *options) {
		o.entropy = r
		o.entropySet = true
	}
}

// Primitives binds a probed digest engine, a text encoding and an entropy source.
// It holds no mutable state and is safe for concurrent use.
type Primitives struct {
	caps         cryptoutil.Capabilities
	digest       cryptoutil.DigestProvider
	signer       cryptoutil.SignatureProvider
	ids          *cryptoutil.IDGenerator
	textEncoding cryptoutil.TextEncoding
	idBytes      int
}

// New probes the digest engines and returns a ready Primitives. It fails when no
// engine passes its known-answer tests.
func New(opts ...Option) (*Primitives, error) {
	o := &options{
		strategy:     cryptoutil.StrategyAuto,
		textEncoding: cryptoutil.EncodingUTF8,
		idBytes:      config.DefaultIDBytes,
	}

	for _, opt := range opts {
		opt(o)
	}

	strategy, err := cryptoutil.ParseStrategy(string(o.strategy))
	if err != nil {
		return nil, err
	}

	enc, err := cryptoutil.ParseTextEncoding(string(o.textEncoding))
	if err != nil {
		return nil, err
	}

	if o.idBytes < 1 {
		return nil, cryptoutil.ErrInvalidIDLength{Length: o.idBytes}
	}

	idOpts := []cryptoutil.IDGeneratorOption{}
	if o.entropySet {
		idOpts = append(idOpts, cryptoutil.WithEntropySource(o.entropy))
	}

	caps, err := cryptoutil.ProbeCapabilities(cryptoutil.ProbeWithStrategy(strategy))
	if err != nil {
		return nil, fmt.Errorf("failed to probe digest engines: %w", err)
	}

	return &Primitives{
		caps:         caps,
		digest:       caps.DigestProvider(),
		signer:       caps.SignatureProvider(),
		ids:          cryptoutil.NewIDGenerator(idOpts...),
		textEncoding: enc,
		idBytes:      o.idBytes,
	}, nil
}

// Capabilities returns the probe result the instance was built from.
func (p *Primitives) Capabilities() cryptoutil.Capabilities {
	return p.caps
}

func (p *Primitives) TextEncoding() cryptoutil.TextEncoding {
	return p.textEncoding
}

// Digest returns the SHA-256 of message as 64 lowercase hex characters.
func (p *Primitives) Digest(message []byte) string {
	return p.digest.Sum(message).Hex()
}

// DigestString encodes text with the configured text encoding and digests it.
func (p *Primitives) DigestString(text string) string {
	return p.Digest(cryptoutil.EncodeText(text, p.textEncoding))
}

// DigestReader returns the digest of everything read from r.
func (p *Primitives) DigestReader(r io.Reader) (string, error) {
	h := p.digest.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// ShortHash returns the first 16 hex characters of the digest of message. It is a
// fingerprint for deduplication and display and must not be used to make any
// security decision.
func (p *Primitives) ShortHash(message string) string {
	return cryptoutil.ShortHash(p.digest, message, p.textEncoding)
}

var (
	defaultOnce sync.Once
	defaultInst *Primitives
	defaultErr  error
)

// Default returns the process wide instance, built on first use with the default
// options. It panics when no digest engine is usable.
func Default() *Primitives {
	defaultOnce.Do(func() {
		defaultInst, defaultErr = New()
		if defaultErr == nil {
			log.Debugf("cryptokit default instance uses the %v strategy", defaultInst.caps.Strategy)
		}
	})

	if defaultErr != nil {
		panic(defaultErr)
	}

	return defaultInst
}

func Digest(message []byte) string {
	return Default().Digest(message)
}

func DigestString(text string) string {
	return Default().DigestString(text)
}

func ShortHash(message string) string {
	return Default().ShortHash(message)
}
