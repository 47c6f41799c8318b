// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package krull

import "github.com/sixafter/krull/internal/wide"

// Published LCG multipliers. The four 128-bit multipliers are general
// full-period multipliers usable directly as (m, p) parameters via
// internal/lcg; the four 65-bit multipliers have high word 1, letting the
// hot advance path use wide.Advance65's widening 64x64 multiply instead of
// a full 128x128 one. Exact values are fixed for sequence compatibility
// with the published reference output vector.
var (
	LCGM128_1 = wide.U128{Lo: 0xfd0d90f576075fbd, Hi: 0xde92a69f6e2f9f25}
	LCGM128_2 = wide.U128{Lo: 0x619f3ebc7363f7f5, Hi: 0x576bc0a2178fcf7c}
	LCGM128_3 = wide.U128{Lo: 0x074f3d0c2ea63d35, Hi: 0x87ea3de194dd2e97}
	LCGM128_4 = wide.U128{Lo: 0x619cd45257f0ab65, Hi: 0xf48c0745581cf801}

	LCGM65_1 = wide.U128{Lo: 0xdf77a66a374e300d, Hi: 1}
	LCGM65_2 = wide.U128{Lo: 0xd605bbb58c8abbfd, Hi: 1}
	LCGM65_3 = wide.U128{Lo: 0xd7d8dd3a6a72b43d, Hi: 1}
	LCGM65_4 = wide.U128{Lo: 0xf20529e418340d05, Hi: 1}
)

// Output-hash constants: three SplitMix64-derived odd multipliers used by
// the mix rounds in hash.go. The default LCG multipliers each generator
// uses absent an Option override are chosen in DefaultConfig.
const (
	hashMul1 uint64 = 0xbf58476d1ce4e5b9
	hashMul2 uint64 = 0x94d049bb133111eb
	hashMul3 uint64 = 0xd6e8feb86659fd93
)
