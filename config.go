// Copyright (c) 2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package krull

import "github.com/sixafter/krull/internal/wide"

// Config holds the LCG parameterization a generator is built with.
// DefaultConfig reproduces the canonical published constants, so the
// documented reference vectors hold unless a caller explicitly opts
// into an alternate published multiplier via Option.
//
// Four 65-bit and four 128-bit multipliers are published as valid
// full-period parameterizations; Config is their home. Overriding a
// multiplier never breaks any invariant: the doubling recurrence and
// output bijection are parametric in the multiplier already.
type Config struct {
	// MultiplierA65 is GeneratorA's LCG multiplier, and GeneratorB's A-LCG
	// multiplier. Must have high word 1 (a "65-bit" multiplier) and low
	// word congruent to 5 mod 8, matching one of the published LCGM65_*
	// constants.
	MultiplierA65 wide.U128

	// MultiplierB65 is GeneratorB's B-LCG multiplier. Only meaningful for
	// GeneratorB; GeneratorA ignores it. Same validity constraints as
	// MultiplierA65.
	MultiplierB65 wide.U128

	// IncrementConstant is XOR-ed into GeneratorB's A-LCG increment
	// derivation. Defaults to LCGM128_1.
	IncrementConstant wide.U128
}

// Option configures a Config using the functional-options pattern.
type Option func(*Config)

// DefaultConfig returns the canonical parameterization: LCGM65_1 for
// GeneratorA and GeneratorB's A-LCG, LCGM65_4 for GeneratorB's B-LCG, and
// LCGM128_1 as the increment-derivation constant.
func DefaultConfig() Config {
	return Config{
		MultiplierA65:     LCGM65_1,
		MultiplierB65:     LCGM65_4,
		IncrementConstant: LCGM128_1,
	}
}

// WithMultiplierA65 overrides GeneratorA's (and GeneratorB's A-LCG's) 65-bit
// multiplier. Pass one of the published LCGM65_* constants.
func WithMultiplierA65(m wide.U128) Option {
	return func(c *Config) { c.MultiplierA65 = m }
}

// WithMultiplierB65 overrides GeneratorB's B-LCG 65-bit multiplier. Pass
// one of the published LCGM65_* constants.
func WithMultiplierB65(m wide.U128) Option {
	return func(c *Config) { c.MultiplierB65 = m }
}

// WithIncrementConstant overrides the 128-bit constant XOR-ed into
// GeneratorB's A-LCG increment derivation. Pass one of the published
// LCGM128_* constants.
func WithIncrementConstant(m wide.U128) Option {
	return func(c *Config) { c.IncrementConstant = m }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
