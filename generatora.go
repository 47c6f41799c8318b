// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package krull

import (
	"github.com/sixafter/krull/internal/lcg"
	"github.com/sixafter/krull/internal/wide"
)

// GeneratorA is a non-cryptographic, 64-bit-output PRNG with 192 bits of
// state: a 128-bit LCG plus a 64-bit stream identifier. It offers 2**64
// pairwise-independent streams, each equidistributed and of period
// 2**128, with O(log n) random access via Jump/SetPosition.
//
// The zero value is not meaningful; construct with NewGeneratorA or one of
// its seeded variants. GeneratorA is a plain value type: copying it forks
// a deterministic, independent clone.
type GeneratorA struct {
	lcg    wide.U128
	stream uint64
	mult   wide.U128 // 65-bit multiplier (Hi == 1), from Config.MultiplierA65
}

// originA is the LCG state defined to be position 0 for the given stream:
// the bitwise complement of the stream, zero-extended to 128 bits. Only
// the low bits of an LCG state carry short-period information, so this is
// where the stream identifier is hidden; the increment (below) hides it
// in its low bits for the same reason in reverse.
func originA(stream uint64) wide.U128 {
	return wide.U128{Lo: ^stream}
}

// incrementA derives GeneratorA's LCG increment from its stream: (stream
// << 1) | 1, computed at 128-bit width so the top bit of stream carries
// into bit 64 instead of being shifted out of a 64-bit word.
func incrementA(stream uint64) wide.U128 {
	return wide.Or(wide.Shl1(wide.U128{Lo: stream}), wide.One)
}

// NewGeneratorA returns a GeneratorA with stream 0 and position 0.
func NewGeneratorA(opts ...Option) GeneratorA {
	cfg := buildConfig(opts)
	g := GeneratorA{mult: cfg.MultiplierA65}
	g.SetStream(0)
	return g
}

// NewGeneratorAFromUint32 returns a GeneratorA seeded with stream = seed
// and position 0. Every seed works equally well; there are no bad seeds.
func NewGeneratorAFromUint32(seed uint32, opts ...Option) GeneratorA {
	return NewGeneratorAFromUint64(uint64(seed), opts...)
}

// NewGeneratorAFromUint64 returns a GeneratorA seeded with stream = seed
// and position 0.
func NewGeneratorAFromUint64(seed uint64, opts ...Option) GeneratorA {
	cfg := buildConfig(opts)
	g := GeneratorA{mult: cfg.MultiplierA65}
	g.SetStream(seed)
	return g
}

// NewGeneratorAFromUint128 returns a GeneratorA from a 128-bit seed. Each
// seed accesses a unique sequence of length 2**64. The stream is set to
// the XOR of the seed's high and low halves, decorrelating seeds that
// differ in only one half; the seed's low 64 bits become the high 64 bits
// of the initial position.
func NewGeneratorAFromUint128(seed wide.U128, opts ...Option) GeneratorA {
	g := NewGeneratorAFromUint64(seed.Hi^seed.Lo, opts...)
	g.SetPosition(wide.U128{Hi: seed.Lo})
	return g
}

// NewGeneratorAFromBytes returns a GeneratorA from a 16-byte little-endian
// seed.
func NewGeneratorAFromBytes(seed [16]byte, opts ...Option) GeneratorA {
	return NewGeneratorAFromUint128(wide.LittleEndian(seed[:]), opts...)
}

// Uint64 advances the generator by one step and returns the 64-bit output.
func (g *GeneratorA) Uint64() uint64 {
	g.lcg = wide.Advance65(g.lcg, g.mult.Lo, incrementA(g.stream))
	return outputHash(g.lcg.Hi)
}

// Uint32 advances the generator by one step and returns the low 32 bits
// of the output.
func (g *GeneratorA) Uint32() uint32 {
	return uint32(g.Uint64())
}

// FillBytes advances the generator as many times as needed to fill dst,
// packing each 64-bit output little-endian; the final output may be
// truncated to a partial 1-7 byte tail.
func (g *GeneratorA) FillBytes(dst []byte) {
	i := 0
	for i < len(dst) {
		x := g.Uint64()
		j := i + 8
		if j > len(dst) {
			j = len(dst)
		}
		var buf [8]byte
		wide.PutLittleEndian(buf[:8], wide.U128{Lo: x})
		copy(dst[i:j], buf[:j-i])
		i = j
	}
}

// TryFillBytes calls FillBytes and always returns a nil error. It exists
// solely so GeneratorA's call shape matches fallible byte-fill interfaces;
// the core has no fallible operations.
func (g *GeneratorA) TryFillBytes(dst []byte) error {
	g.FillBytes(dst)
	return nil
}

// Position returns the current position in the stream: the iteration
// count between the stream's origin and the current LCG state.
func (g *GeneratorA) Position() wide.U128 {
	return lcg.Distance(g.mult, incrementA(g.stream), originA(g.stream), g.lcg)
}

// SetPosition seeks to the given position in the current stream.
func (g *GeneratorA) SetPosition(p wide.U128) {
	g.lcg = lcg.Advance(g.mult, incrementA(g.stream), originA(g.stream), p)
}

// Jump advances (delta > 0) or retreats (delta < 0) the generator's
// position by delta steps. The stream is cyclic of period 2**128, so a
// negative delta wraps via two's-complement reinterpretation rather than
// failing.
func (g *GeneratorA) Jump(delta wide.U128) {
	g.lcg = lcg.Advance(g.mult, incrementA(g.stream), g.lcg, delta)
}

// Reset seeks to position 0. Equivalent to SetPosition(0).
func (g *GeneratorA) Reset() {
	g.lcg = originA(g.stream)
}

// Stream returns the current stream identifier.
func (g *GeneratorA) Stream() uint64 {
	return g.stream
}

// SetStream sets the stream identifier and resets position to 0.
func (g *GeneratorA) SetStream(stream uint64) {
	g.stream = stream
	g.Reset()
}
