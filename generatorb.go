// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package krull

import (
	"encoding/binary"

	"github.com/sixafter/krull/internal/lcg"
	"github.com/sixafter/krull/internal/wide"
)

// originB is the fixed LCG-B origin: the state defined to be distance 0
// from B's own position coordinate (not to be confused with the
// generator's externally visible Position, which is always measured
// against A).
var originB = wide.One

// GeneratorB is a non-cryptographic, 64-bit-output PRNG with 320 bits of
// state: two 128-bit LCGs (A and B) advancing in lockstep, plus a
// 64-bit word (cHi) that together with the A/B phase difference encodes a
// 128-bit stream identifier. It offers 2**128 pairwise-independent
// streams, each equidistributed and of period 2**128, with O(log n)
// random access via Jump/SetPosition.
//
// Even in the worst case where two streams share cHi and differ only in
// the low bit of their stream identifier, the output mix is designed so
// that the pairwise XOR of the two streams stays statistically clean for
// at least 2**30 bytes under PractRand.
//
// The zero value is not meaningful; construct with NewGeneratorB or one
// of its seeded variants. GeneratorB is a plain value type: copying it
// forks a deterministic, independent clone.
type GeneratorB struct {
	a, b  wide.U128
	cHi   uint64
	multA wide.U128 // Config.MultiplierA65
	multB wide.U128 // Config.MultiplierB65
	incC  wide.U128 // Config.IncrementConstant
}

// incrementA derives LCG A's increment: (cHi << 1) XOR incC, computed at
// 128-bit width.
func (g *GeneratorB) incrementA() wide.U128 {
	return wide.Xor(wide.Shl1(wide.U128{Lo: g.cHi}), g.incC)
}

// incrementB derives LCG B's increment: (cHi << 1) XOR 1, computed at
// 128-bit width.
func (g *GeneratorB) incrementB() wide.U128 {
	return wide.Xor(wide.Shl1(wide.U128{Lo: g.cHi}), wide.One)
}

func newGeneratorBBase(opts []Option) GeneratorB {
	cfg := buildConfig(opts)
	return GeneratorB{multA: cfg.MultiplierA65, multB: cfg.MultiplierB65, incC: cfg.IncrementConstant}
}

// NewGeneratorB returns a GeneratorB with stream 0 and position 0.
func NewGeneratorB(opts ...Option) GeneratorB {
	g := newGeneratorBBase(opts)
	g.SetStream(wide.U128{})
	return g
}

// NewGeneratorBFromUint32 returns a GeneratorB seeded with stream = the
// zero-extended seed and position 0.
func NewGeneratorBFromUint32(seed uint32, opts ...Option) GeneratorB {
	return NewGeneratorBFromUint64(uint64(seed), opts...)
}

// NewGeneratorBFromUint64 returns a GeneratorB seeded with stream = the
// zero-extended seed and position 0.
func NewGeneratorBFromUint64(seed uint64, opts ...Option) GeneratorB {
	return NewGeneratorBFromUint128(wide.U128{Lo: seed}, opts...)
}

// NewGeneratorBFromUint128 returns a GeneratorB seeded with stream = seed
// and position 0.
func NewGeneratorBFromUint128(seed wide.U128, opts ...Option) GeneratorB {
	g := newGeneratorBBase(opts)
	g.SetStream(seed)
	return g
}

// NewGeneratorBFromBytes16 returns a GeneratorB from a 16-byte
// little-endian seed: stream = seed, position = 0.
func NewGeneratorBFromBytes16(seed [16]byte, opts ...Option) GeneratorB {
	return NewGeneratorBFromUint128(wide.LittleEndian(seed[:]), opts...)
}

// NewGeneratorBFromBytes24 returns a GeneratorB from a 24-byte
// little-endian extended seed: the low 16 bytes decode to s0, the next 8
// bytes decode to s1; stream = s0 XOR (zero-extended s1), and the
// initial position's high 64 bits are taken from s1.
func NewGeneratorBFromBytes24(seed [24]byte, opts ...Option) GeneratorB {
	s0 := wide.LittleEndian(seed[0:16])
	s1 := binary.LittleEndian.Uint64(seed[16:24])
	g := newGeneratorBBase(opts)
	g.SetStream(wide.Xor(s0, wide.U128{Lo: s1}))
	g.SetPosition(wide.U128{Hi: s1})
	return g
}

// Uint64 advances both LCGs by one step and returns the 64-bit output.
func (g *GeneratorB) Uint64() uint64 {
	g.a = wide.Advance65(g.a, g.multA.Lo, g.incrementA())
	g.b = wide.Advance65(g.b, g.multB.Lo, g.incrementB())

	// Mix B's high word with A's high word rotated by 32 bits before the
	// shared output hash purifies pairwise correlations.
	x := g.b.Hi ^ (g.a.Hi << 32) ^ (g.a.Hi >> 32)
	return outputHash(x)
}

// Uint32 advances the generator by one step and returns the low 32 bits
// of the output.
func (g *GeneratorB) Uint32() uint32 {
	return uint32(g.Uint64())
}

// FillBytes advances the generator as many times as needed to fill dst,
// packing each 64-bit output little-endian; the final output may be
// truncated to a partial 1-7 byte tail.
func (g *GeneratorB) FillBytes(dst []byte) {
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

// TryFillBytes calls FillBytes and always returns a nil error.
func (g *GeneratorB) TryFillBytes(dst []byte) error {
	g.FillBytes(dst)
	return nil
}

// Position returns the current position in the stream: the iteration
// count in LCG A from A's fixed origin (0).
func (g *GeneratorB) Position() wide.U128 {
	return lcg.Distance(g.multA, g.incrementA(), wide.U128{}, g.a)
}

// Jump advances (delta > 0) or retreats (delta < 0) both LCGs by delta
// steps, preserving the stream (the A/B phase difference is unchanged).
func (g *GeneratorB) Jump(delta wide.U128) {
	g.a = lcg.Advance(g.multA, g.incrementA(), g.a, delta)
	g.b = lcg.Advance(g.multB, g.incrementB(), g.b, delta)
}

// SetPosition seeks to the given position in the current stream: it
// seeks A to p directly, then advances B by the same delta (p -
// Position()), which is exactly what Jump already does and so preserves
// the A/B phase difference, i.e. the stream.
func (g *GeneratorB) SetPosition(p wide.U128) {
	delta := wide.Sub(p, g.Position())
	g.Jump(delta)
}

// Reset seeks to position 0 while preserving the current stream: A
// returns to its fixed origin, and B is re-seeded from cHi to encode the
// stream's low 64 bits at position 0. Equivalent to SetPosition(0), but
// computed directly instead of via a Jump so it costs a single B reseed
// rather than negating the current position.
func (g *GeneratorB) Reset() {
	streamLo := g.Stream().Lo
	g.a = wide.U128{}
	g.b = lcg.Advance(g.multB, g.incrementB(), originB, wide.U128{Lo: streamLo})
}

// Stream returns the current 128-bit stream identifier. Its low 64 bits
// are the A/B phase difference (distance_B - distance_A mod 2**64); its
// high 64 bits are that phase difference XOR-ed with cHi.
func (g *GeneratorB) Stream() wide.U128 {
	distA := g.Position()
	distB := lcg.Distance(g.multB, g.incrementB(), originB, g.b)
	delta := wide.Sub(distB, distA).Lo
	return wide.U128{Lo: delta, Hi: delta ^ g.cHi}
}

// SetStream sets the 128-bit stream identifier and resets position to 0.
func (g *GeneratorB) SetStream(stream wide.U128) {
	g.cHi = stream.Hi ^ stream.Lo
	g.a = wide.U128{}
	g.b = lcg.Advance(g.multB, g.incrementB(), originB, wide.U128{Lo: stream.Lo})
}
