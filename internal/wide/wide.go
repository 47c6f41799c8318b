// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package wide implements wrapping 128-bit integer arithmetic on pairs of
// uint64 words. It backs the LCG kernel and both Krull generators, which
// need a full 128x128 multiply for random access (Position/Jump) and a
// cheaper widening 64x64 multiply for the hot advance path.
//
// Every operation wraps modulo 2**128; there is no overflow detection
// anywhere in this package, by design — the generators it serves are
// defined entirely in terms of wrapping arithmetic.
package wide

import (
	"encoding/binary"
	"math/bits"
)

// U128 is an unsigned 128-bit integer, stored as two 64-bit words.
// The zero value is 0. U128 is comparable with ==.
type U128 struct {
	Lo uint64
	Hi uint64
}

// One is the multiplicative identity.
var One = U128{Lo: 1}

// FromUint64 widens a uint64 into a U128 with zero high bits.
func FromUint64(v uint64) U128 {
	return U128{Lo: v}
}

// IsZero reports whether u is the zero value.
func (u U128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// Bit returns bit n of u (0 = least significant), for n in [0, 128).
func (u U128) Bit(n uint) uint64 {
	if n < 64 {
		return (u.Lo >> n) & 1
	}
	return (u.Hi >> (n - 64)) & 1
}

// IsOdd reports whether the low bit of u is set.
func (u U128) IsOdd() bool {
	return u.Lo&1 == 1
}

// Add returns a+b mod 2**128.
func Add(a, b U128) U128 {
	lo, carry := bits.Add64(a.Lo, b.Lo, 0)
	hi, _ := bits.Add64(a.Hi, b.Hi, carry)
	return U128{Lo: lo, Hi: hi}
}

// Sub returns a-b mod 2**128.
func Sub(a, b U128) U128 {
	lo, borrow := bits.Sub64(a.Lo, b.Lo, 0)
	hi, _ := bits.Sub64(a.Hi, b.Hi, borrow)
	return U128{Lo: lo, Hi: hi}
}

// Mul returns a*b mod 2**128, via a 64-bit-limb schoolbook multiply that
// discards everything above bit 127 (the high*high cross term never
// contributes to the low 128 bits and is never computed).
func Mul(a, b U128) U128 {
	hi, lo := bits.Mul64(a.Lo, b.Lo)
	hi += a.Lo*b.Hi + a.Hi*b.Lo
	return U128{Lo: lo, Hi: hi}
}

// Shl1 returns u<<1 mod 2**128.
func Shl1(u U128) U128 {
	return U128{
		Lo: u.Lo << 1,
		Hi: (u.Hi << 1) | (u.Lo >> 63),
	}
}

// Shr1 returns u>>1 (logical, unsigned).
func Shr1(u U128) U128 {
	return U128{
		Lo: (u.Lo >> 1) | (u.Hi << 63),
		Hi: u.Hi >> 1,
	}
}

// Shl64 returns u<<64 mod 2**128.
func Shl64(u U128) U128 {
	return U128{Lo: 0, Hi: u.Lo}
}

// And returns the bitwise AND of a and b.
func And(a, b U128) U128 {
	return U128{Lo: a.Lo & b.Lo, Hi: a.Hi & b.Hi}
}

// Or returns the bitwise OR of a and b.
func Or(a, b U128) U128 {
	return U128{Lo: a.Lo | b.Lo, Hi: a.Hi | b.Hi}
}

// Xor returns the bitwise XOR of a and b.
func Xor(a, b U128) U128 {
	return U128{Lo: a.Lo ^ b.Lo, Hi: a.Hi ^ b.Hi}
}

// Not returns the bitwise complement of u.
func Not(u U128) U128 {
	return U128{Lo: ^u.Lo, Hi: ^u.Hi}
}

// Advance65 computes state*mult + inc mod 2**128, where mult is a "65-bit"
// multiplier (i.e. the multiplier's true value is 2**64 + mult, matching
// an LCG multiplier whose high word is 1). This lets the hot path use one
// widening 64x64->128 multiply plus three wrapping 64-bit ops instead of a
// full 128x128 multiply:
//
//	wide := state.Lo * mult + inc            (128-bit)
//	newHi = (wide >> 64) + state.Hi*mult + state.Lo
//	newLo = wide as uint64
func Advance65(state U128, mult uint64, inc U128) U128 {
	hi1, lo1 := bits.Mul64(state.Lo, mult)
	lo2, carry := bits.Add64(lo1, inc.Lo, 0)
	hi2, _ := bits.Add64(hi1, inc.Hi, carry)
	return U128{
		Lo: lo2,
		Hi: hi2 + state.Hi*mult + state.Lo,
	}
}

// PutLittleEndian writes u into b[0:16] in little-endian order.
func PutLittleEndian(b []byte, u U128) {
	binary.LittleEndian.PutUint64(b[0:8], u.Lo)
	binary.LittleEndian.PutUint64(b[8:16], u.Hi)
}

// LittleEndian decodes a U128 from b[0:16] in little-endian order.
func LittleEndian(b []byte) U128 {
	return U128{
		Lo: binary.LittleEndian.Uint64(b[0:8]),
		Hi: binary.LittleEndian.Uint64(b[8:16]),
	}
}

// I128FromInt64 sign-extends n into the two's-complement 128-bit bit
// pattern it would have as a signed 128-bit value. Used to turn a small
// signed jump delta into the U128 that Advance expects: advancing by that
// bit pattern mod 2**128 is exactly equivalent to advancing backward by
// -n, since the LCG state space is cyclic of period 2**128.
func I128FromInt64(n int64) U128 {
	var hi uint64
	if n < 0 {
		hi = ^uint64(0)
	}
	return U128{Lo: uint64(n), Hi: hi}
}
