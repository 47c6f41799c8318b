// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package krull

import (
	"encoding/binary"
	"testing"

	"github.com/sixafter/krull/internal/wide"
	"github.com/stretchr/testify/assert"
)

func TestGeneratorB_SetStreamZero(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	g := NewGeneratorB()
	g.SetStream(wide.U128{})
	is.Equal(wide.U128{}, g.Stream())
	is.Equal(wide.U128{}, g.Position())
}

func TestGeneratorB_SetStreamRoundTrip(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	stream := wide.U128{Lo: 0x123400000000abcd, Hi: 0xabcd1234}
	g := NewGeneratorB()
	g.SetStream(stream)

	is.Equal(stream, g.Stream())
	is.Equal(wide.U128{}, g.Position())
}

func TestGeneratorB_SetPositionAndJump(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	g := NewGeneratorB()
	g.SetPosition(wide.U128{Lo: 0xdead_beef})
	is.Equal(wide.U128{Lo: 0xdead_beef}, g.Position())

	g.Jump(wide.I128FromInt64(-1))
	is.Equal(wide.U128{Lo: 0xdead_beef - 1}, g.Position())
}

func TestGeneratorB_JumpPreservesStream(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var r wide.U128

	for i := 0; i < 1<<12; i++ {
		stream := lcgRand(&r)
		g := NewGeneratorBFromUint128(stream)
		delta := lcgRand(&r)
		g.Jump(delta)
		is.Equal(stream, g.Stream(), "jump must preserve the A/B phase difference")
	}
}

func TestGeneratorB_SeekIdempotence(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var r wide.U128

	for i := 0; i < 1<<12; i++ {
		g := NewGeneratorBFromUint128(lcgRand(&r))
		p := lcgRand(&r)
		g.SetPosition(p)
		is.Equal(p, g.Position())
	}
}

func TestGeneratorB_PositionAdvanceDuality(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var r wide.U128

	for i := 0; i < 1<<8; i++ {
		g := NewGeneratorBFromUint128(lcgRand(&r))
		p0 := g.Position()
		k := lcgRand(&r).Lo % (1 << 10)
		for j := uint64(0); j < k; j++ {
			g.Uint64()
		}
		is.Equal(wide.Add(p0, wide.U128{Lo: k}), g.Position())
	}
}

func TestGeneratorB_JumpReversibility(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var r wide.U128

	for i := 0; i < 1<<12; i++ {
		g := NewGeneratorBFromUint128(lcgRand(&r))
		stream, p0 := g.Stream(), g.Position()

		delta := lcgRand(&r)
		g.Jump(delta)
		g.Jump(wide.Sub(wide.U128{}, delta))

		is.Equal(stream, g.Stream())
		is.Equal(p0, g.Position())
	}
}

func TestGeneratorB_ResetPreservesStream(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var r wide.U128

	for i := 0; i < 1<<8; i++ {
		stream := lcgRand(&r)
		g := NewGeneratorBFromUint128(stream)
		g.SetPosition(lcgRand(&r))

		g.Reset()
		is.Equal(wide.U128{}, g.Position())
		is.Equal(stream, g.Stream())
	}
}

func TestGeneratorB_FillBytesMatchesUint64(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var r wide.U128

	for i := 0; i < 1<<8; i++ {
		seed := lcgRand(&r)
		k := int(lcgRand(&r).Lo%16) + 1

		viaFill := NewGeneratorBFromUint128(seed)
		buf := make([]byte, 8*k)
		viaFill.FillBytes(buf)

		viaNext := NewGeneratorBFromUint128(seed)
		var want []byte
		for j := 0; j < k; j++ {
			var tmp [8]byte
			binary.LittleEndian.PutUint64(tmp[:], viaNext.Uint64())
			want = append(want, tmp[:]...)
		}

		is.Equal(want, buf)
	}
}

func TestGeneratorB_DeterminismAndLocality(t *testing.T) {
	t.Parallel()
	is := assert.New(t)
	var r wide.U128

	for i := 0; i < 1<<8; i++ {
		seed := lcgRand(&r)
		a := NewGeneratorBFromUint128(seed)
		a.SetPosition(lcgRand(&r))
		b := a // struct copy: an independent clone at the same coordinate

		for j := 0; j < 8; j++ {
			is.Equal(a.Uint64(), b.Uint64())
		}
	}
}

func TestGeneratorB_FromBytes24(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var seed [24]byte
	for i := range seed {
		seed[i] = byte(i + 1)
	}

	s0 := wide.LittleEndian(seed[0:16])
	s1 := binary.LittleEndian.Uint64(seed[16:24])

	g := NewGeneratorBFromBytes24(seed)
	is.Equal(wide.Xor(s0, wide.U128{Lo: s1}), g.Stream())
	is.Equal(wide.U128{Hi: s1}, g.Position())
}

func TestGeneratorB_WithMultiplierOptions(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	def := NewGeneratorB()
	alt := NewGeneratorB(WithMultiplierA65(LCGM65_2), WithMultiplierB65(LCGM65_3))

	// At stream 0, position 0, A sits at 0 and B at 1, so the first step's
	// output does not depend on either multiplier; compare the second.
	def.Uint64()
	alt.Uint64()
	is.NotEqual(def.Uint64(), alt.Uint64())
}
