// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package lcg implements the arbitrary-stride jump algorithm for 128-bit
// linear congruential generators (state <- state*m + p, mod 2**128),
// after Brown, F. B., "Random Number Generation with Arbitrary Stride",
// Transactions of the American Nuclear Society, 1994.
//
// All three functions assume (m, p) defines a full-period LCG: m ≡ 5
// (mod 8) and p odd. They never validate this — supplying a non-full-period
// pair silently produces wrong answers. The generators built on top of this
// package derive (m, p) from the published constants unless a caller
// overrides them through a Config option, which is not validated either.
package lcg

import "github.com/sixafter/krull/internal/wide"

// Advance returns the LCG state reached after n iterations from origin,
// for the LCG defined by (m, p). Runs in O(log n): at most 128 rounds of
// the doubling recurrence (m, p) -> (m*m, (m+1)*p).
func Advance(m, p, origin, n wide.U128) wide.U128 {
	jumpM, jumpP := m, p
	state := origin
	ordinal := n
	for !ordinal.IsZero() {
		if ordinal.IsOdd() {
			state = wide.Add(wide.Mul(state, jumpM), jumpP)
		}
		jumpP = wide.Mul(wide.Add(jumpM, wide.One), jumpP)
		jumpM = wide.Mul(jumpM, jumpM)
		ordinal = wide.Shr1(ordinal)
	}
	return state
}

// Distance returns the unique n in [0, 2**128) such that Advance(m, p,
// origin, n) == state, for the LCG defined by (m, p). Runs in O(128):
// each of the 128 bits of n is recovered by checking, at the
// correspondingly doubled parameter level, whether the bit differs
// between the current address and the target state.
func Distance(m, p, origin, state wide.U128) wide.U128 {
	jumpM, jumpP := m, p
	var ordinal wide.U128
	bit := wide.One
	address := origin
	for address != state {
		if wide.And(bit, address) != wide.And(bit, state) {
			address = wide.Add(wide.Mul(address, jumpM), jumpP)
			ordinal = wide.Add(ordinal, bit)
		}
		jumpP = wide.Mul(wide.Add(jumpM, wide.One), jumpP)
		jumpM = wide.Mul(jumpM, jumpM)
		bit = wide.Shl1(bit)
	}
	return ordinal
}

// Compose returns the (mN, pN) pair that realizes n steps of the LCG
// defined by (m, p) as a single LCG transition: advancing any state by n
// steps is equivalent to state*mN + pN. Uses the same doubling recurrence
// as Advance.
func Compose(m, p, n wide.U128) (mN, pN wide.U128) {
	unitM, unitP := m, p
	jumpM := wide.One
	var jumpP wide.U128
	delta := n
	for !delta.IsZero() {
		if delta.IsOdd() {
			jumpM = wide.Mul(jumpM, unitM)
			jumpP = wide.Add(wide.Mul(jumpP, unitM), unitP)
		}
		unitP = wide.Mul(wide.Add(unitM, wide.One), unitP)
		unitM = wide.Mul(unitM, unitM)
		delta = wide.Shr1(delta)
	}
	return jumpM, jumpP
}
