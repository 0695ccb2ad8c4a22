// SPDX-License-Identifier: MIT
// Package: pollinet/network
//
// options.go - functional options for Build.

package network

import "go.uber.org/zap"

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	logger *zap.Logger
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes skipped-row diagnostics to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
