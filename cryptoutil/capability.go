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

import (
	"crypto/fips140"
	"crypto/rand"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/scanhound/cryptokit/log"
	"golang.org/x/sys/cpu"
)

// Strategy names the digest engine implementation in use.
type Strategy string

const (
	// StrategyAuto lets the probe choose. It is never the result of a probe.
	StrategyAuto Strategy = "auto"

	// StrategyPlatform uses the Go standard library primitives.
	StrategyPlatform Strategy = "platform"

	// StrategyPure uses the portable implementation in this package.
	StrategyPure Strategy = "pure"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyAuto, "":
		return StrategyAuto, nil
	case StrategyPlatform:
		return StrategyPlatform, nil
	case StrategyPure:
		return StrategyPure, nil
	default:
		return "", ErrUnknownStrategy{Name: s}
	}
}

// CPUFeatures records the hardware support relevant to SHA-256 and entropy.
type CPUFeatures struct {
	Arch   string `json:"arch" yaml:"arch"`
	SHA2   bool   `json:"sha2" yaml:"sha2"`
	AVX2   bool   `json:"avx2" yaml:"avx2"`
	SSSE3  bool   `json:"ssse3" yaml:"ssse3"`
	RDRAND bool   `json:"rdrand" yaml:"rdrand"`
}

func detectCPUFeatures() CPUFeatures {
	return CPUFeatures{
		Arch:   runtime.GOARCH,
		SHA2:   cpu.ARM64.HasSHA2,
		AVX2:   cpu.X86.HasAVX2,
		SSSE3:  cpu.X86.HasSSSE3,
		RDRAND: cpu.X86.HasRDRAND,
	}
}

// Capabilities is the result of a probe. It is immutable once returned, so the
// strategy it carries stays fixed for as long as the value is used.
type Capabilities struct {
	Strategy          Strategy    `json:"strategy" yaml:"strategy"`
	PlatformAvailable bool        `json:"platformAvailable" yaml:"platformAvailable"`
	PlatformError     string      `json:"platformError,omitempty" yaml:"platformError,omitempty"`
	FIPS140           bool        `json:"fips140" yaml:"fips140"`
	EntropyAvailable  bool        `json:"entropyAvailable" yaml:"entropyAvailable"`
	CPU               CPUFeatures `json:"cpu" yaml:"cpu"`

	digest DigestProvider
}

// DigestProvider returns the provider selected by the probe.
func (c Capabilities) DigestProvider() DigestProvider {
	return c.digest
}

// SignatureProvider returns an HMAC-SHA-256 provider on the selected digest engine.
func (c Capabilities) SignatureProvider() SignatureProvider {
	return NewHMACProvider(c.digest)
}

type probeOptions struct {
	strategy Strategy
	entropy  io.Reader
	platform DigestProvider
	pure     DigestProvider
}

type ProbeOption func(*probeOptions)

// ProbeWithStrategy forces a strategy instead of letting the probe choose.
func ProbeWithStrategy(s Strategy) ProbeOption {
	return func(po *probeOptions) {
		po.strategy = s
	}
}

// ProbeWithEntropySource sets the reader checked for entropy availability.
func ProbeWithEntropySource(r io.Reader) ProbeOption {
	return func(po *probeOptions) {
		po.entropy = r
	}
}

// ProbeCapabilities decides which digest engine to use. The pure engine must pass its
// self-test or ErrNoDigestProvider is returned; nothing weaker is ever substituted.
// The platform engine is preferred whenever it passes the same self-test.
func ProbeCapabilities(opts ...ProbeOption) (Capabilities, error) {
	po := &probeOptions{
		strategy: StrategyAuto,
		entropy:  rand.Reader,
		platform: PlatformDigestProvider{},
		pure:     PureDigestProvider{},
	}

	for _, opt := range opts {
		opt(po)
	}

	caps := Capabilities{
		FIPS140: fips140.Enabled(),
		CPU:     detectCPUFeatures(),
	}

	if po.entropy != nil {
		var b [1]byte
		_, err := io.ReadFull(po.entropy, b[:])
		caps.EntropyAvailable = err == nil
		if err != nil {
			log.Warnf("entropy source did not answer the probe read: %w", err)
		}
	}

	if err := SelfTest(po.pure); err != nil {
		return caps, ErrNoDigestProvider{Err: err}
	}

	platformErr := SelfTest(po.platform)
	caps.PlatformAvailable = platformErr == nil
	if platformErr != nil {
		caps.PlatformError = platformErr.Error()
	}

	switch po.strategy {
	case StrategyPure:
		caps.Strategy = StrategyPure
		caps.digest = po.pure
	case StrategyPlatform:
		if platformErr != nil {
			return caps, ErrStrategyUnavailable{Strategy: StrategyPlatform, Err: platformErr}
		}

		caps.Strategy = StrategyPlatform
		caps.digest = po.platform
	case StrategyAuto:
		if platformErr != nil {
			log.Warnf("platform sha256 failed its self-test, using the pure engine: %w", platformErr)
			caps.Strategy = StrategyPure
			caps.digest = po.pure
		} else {
			caps.Strategy = StrategyPlatform
			caps.digest = po.platform
		}
	default:
		return caps, ErrUnknownStrategy{Name: string(po.strategy)}
	}

	log.Debugf("selected %v digest strategy (fips140=%v, arch=%v)", caps.Strategy, caps.FIPS140, caps.CPU.Arch)
	return caps, nil
}

var (
	detectOnce sync.Once
	detected   Capabilities
	detectErr  error
)

// DetectCapabilities probes with default options once per process and returns the
// same result on every later call.
func DetectCapabilities() (Capabilities, error) {
	detectOnce.Do(func() {
		detected, detectErr = ProbeCapabilities()
	})

	return detected, detectErr
}
