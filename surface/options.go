// SPDX-License-Identifier: MIT

package surface

import "github.com/katalvlaran/surfacecode/noise"

// Option customises Build, BuildIdeal and BuildNoisy.
// Options are applied in order; later ones override earlier ones.
type Option func(*buildConfig)

// WithInitialize controls whether the init stage starts with QUBIT_COORDS
// and a reset of every qubit. Default true.
func WithInitialize(on bool) Option {
	return func(c *buildConfig) {
		c.initialize = on
	}
}

// WithNoiseModel sets the model BuildNoisy applies to the main stream instead
// of noise.SI1000(p). Build and BuildIdeal ignore it.
// Panics on nil.
func WithNoiseModel(m noise.Model) Option {
	if m == nil {
		panic("surface: WithNoiseModel(nil)")
	}
	return func(c *buildConfig) {
		c.model = m
	}
}

// buildConfig is the resolved option set, passed by value.
type buildConfig struct {
	initialize bool
	model      noise.Model // nil selects SI1000(p)
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{initialize: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
