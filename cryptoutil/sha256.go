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
	"encoding/binary"
	"hash"
	"math/bits"
)

const (
	// DigestSize is the size of a SHA-256 digest in bytes.
	DigestSize = 32

	blockSize = 64
)

var sha256IV = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var _ hash.Hash = (*pureSHA256)(nil)

// pureSHA256 is a portable FIPS 180-4 SHA-256 that does not depend on crypto/sha256.
// It is used when the platform implementation is unavailable or explicitly disabled.
type pureSHA256 struct {
	h   [8]uint32
	x   [blockSize]byte
	nx  int
	len uint64
}

// NewPureSHA256 returns a streaming hash.Hash computing SHA-256 without using crypto/sha256.
func NewPureSHA256() hash.Hash {
	d := new(pureSHA256)
	d.Reset()
	return d
}

// SumPure256 returns the SHA-256 digest of data computed by the pure engine.
func SumPure256(data []byte) [DigestSize]byte {
	var d pureSHA256
	d.Reset()
	_, _ = d.Write(data)
	return d.checkSum()
}

func (d *pureSHA256) Reset() {
	d.h = sha256IV
	d.nx = 0
	d.len = 0
}

func (d *pureSHA256) Size() int { return DigestSize }

func (d *pureSHA256) BlockSize() int { return blockSize }

func (d *pureSHA256) Write(p []byte) (int, error) {
	nn := len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == blockSize {
			sha256Block(&d.h, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}

	for len(p) >= blockSize {
		sha256Block(&d.h, p[:blockSize])
		p = p[blockSize:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}

	return nn, nil
}

// Sum appends the digest to in. It works on a copy so the caller may keep writing.
func (d *pureSHA256) Sum(in []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *pureSHA256) checkSum() [DigestSize]byte {
	length := d.len

	// 0x80, zeros up to 56 mod 64, then the message length in bits as a
	// full 64-bit big-endian integer.
	var tmp [blockSize + 8]byte
	tmp[0] = 0x80
	var t uint64
	if length%blockSize < 56 {
		t = 56 - length%blockSize
	} else {
		t = blockSize + 56 - length%blockSize
	}

	padding := tmp[:t+8]
	binary.BigEndian.PutUint64(padding[t:], length<<3)
	_, _ = d.Write(padding)

	if d.nx != 0 {
		panic("cryptoutil: pure sha256 padding did not end on a block boundary")
	}

	var digest [DigestSize]byte
	for i, s := range d.h {
		binary.BigEndian.PutUint32(digest[i*4:], s)
	}

	return digest
}

func sha256Block(h *[8]uint32, p []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}

	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		sigma1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v2 := w[i-15]
		sigma0 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = sigma1 + w[i-7] + sigma0 + w[i-16]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for i := 0; i < 64; i++ {
		bigSigma1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + bigSigma1 + ch + sha256K[i] + w[i]

		bigSigma0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := bigSigma0 + maj

		hh = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}
