package ncdgo

import (
	"runtime"

	"github.com/hupe1980/ncdgo/compressor"
)

type options struct {
	algorithm compressor.Algorithm
	level     compressor.Level
	workers   int
	logger    *Logger
}

// Option configures Engine construction.
type Option func(*options)

func defaultOptions() options {
	return options{
		algorithm: compressor.AlgorithmGzip,
		level:     compressor.LevelDefault,
		workers:   runtime.NumCPU(),
		logger:    NoopLogger(),
	}
}

// WithAlgorithm selects the compression backend used for size
// measurement. The default is gzip.
func WithAlgorithm(a compressor.Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithCompressionLevel sets the initial level preset. The default is
// compressor.LevelDefault. The level can be changed later via
// Engine.SetCompressionLevel.
func WithCompressionLevel(l compressor.Level) Option {
	return func(o *options) {
		o.level = l
	}
}

// WithWorkers sets the number of parallel lanes used by Symmetric.
// Defaults to runtime.NumCPU(). A value of 1 forces the sequential
// path; values below 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithLogger sets the logger for batch telemetry.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
