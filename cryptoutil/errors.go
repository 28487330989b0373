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
	"fmt"
)

type ErrVerifyFailed struct{}

func (e ErrVerifyFailed) Error() string {
	return "verification failed"
}

// ErrNoEntropySource is returned when identifier generation is attempted without a
// cryptographically secure random source configured.
type ErrNoEntropySource struct{}

func (e ErrNoEntropySource) Error() string {
	return "no cryptographically secure entropy source available"
}

// ErrEntropyUnavailable is returned when the entropy source failed to produce the
// requested number of bytes. Identifiers are never produced from a partial read.
type ErrEntropyUnavailable struct {
	Err error
}

func (e ErrEntropyUnavailable) Error() string {
	return fmt.Sprintf("entropy source failed: %v", e.Err)
}

func (e ErrEntropyUnavailable) Unwrap() error {
	return e.Err
}

type ErrInvalidIDLength struct {
	Length int
}

func (e ErrInvalidIDLength) Error() string {
	return fmt.Sprintf("identifier byte length must be at least 1, got %d", e.Length)
}

// ErrNoDigestProvider means not even the pure digest engine passed its self-test.
// Callers must treat this as fatal.
type ErrNoDigestProvider struct {
	Err error
}

func (e ErrNoDigestProvider) Error() string {
	return fmt.Sprintf("no usable sha256 implementation: %v", e.Err)
}

func (e ErrNoDigestProvider) Unwrap() error {
	return e.Err
}

type ErrStrategyUnavailable struct {
	Strategy Strategy
	Err      error
}

func (e ErrStrategyUnavailable) Error() string {
	return fmt.Sprintf("strategy %v is not available: %v", e.Strategy, e.Err)
}

func (e ErrStrategyUnavailable) Unwrap() error {
	return e.Err
}

type ErrUnknownStrategy struct {
	Name string
}

func (e ErrUnknownStrategy) Error() string {
	return fmt.Sprintf("unknown digest strategy: %q", e.Name)
}

type ErrUnknownTextEncoding struct {
	Name string
}

func (e ErrUnknownTextEncoding) Error() string {
	return fmt.Sprintf("unknown text encoding: %q", e.Name)
}

type ErrInvalidDigest struct {
	Value string
}

func (e ErrInvalidDigest) Error() string {
	return fmt.Sprintf("invalid digest %q: expected 64 lowercase hex characters", e.Value)
}

type ErrInvalidSignature struct {
	Value string
}

func (e ErrInvalidSignature) Error() string {
	return fmt.Sprintf("invalid signature %q: expected %q followed by 32 lowercase hex characters", e.Value, SignaturePrefix)
}

// ErrKnownAnswerMismatch reports the first known-answer vector an implementation got wrong.
type ErrKnownAnswerMismatch struct {
	Implementation string
	Vector         string
	Want           string
	Got            string
}

func (e ErrKnownAnswerMismatch) Error() string {
	return fmt.Sprintf("%s failed known-answer vector %q: want %s, got %s", e.Implementation, e.Vector, e.Want, e.Got)
}
