// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package krull provides two non-cryptographic pseudo-random number
// generators, GeneratorA and GeneratorB, built on 128-bit linear
// congruential generators with an arbitrary-stride jump algorithm.
//
// Both generators produce 64-bit output words, support O(log n) random
// access to any position in their stream via Jump and SetPosition, are
// equidistributed over their full period, and expose a large family of
// statistically decorrelated streams selected by a stream identifier
// rather than a traditional seed. GeneratorA carries 192 bits of state
// (a 128-bit LCG plus a 64-bit stream identifier) and offers 2**64
// streams; GeneratorB carries 320 bits of state (two lockstepped
// 128-bit LCGs plus a 64-bit word) and offers 2**128 streams with
// stronger pairwise independence guarantees.
//
// Neither generator is suitable for security-sensitive uses: outputs
// are trivially predictable from a handful of consecutive observations,
// and there is no forward or backward secrecy. Use crypto/rand or an
// equivalent CSPRNG wherever unpredictability matters.
//
//	g := krull.NewGeneratorA()
//	x := g.Uint64()
//	g.Jump(wide.FromUint64(1_000_000)) // skip ahead in O(log n)
package krull
