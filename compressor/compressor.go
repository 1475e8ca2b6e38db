package compressor

import (
	"fmt"
	"io"
)

// Algorithm identifies a compression backend.
type Algorithm int

const (
	AlgorithmGzip Algorithm = iota
	AlgorithmZstd
	AlgorithmS2
	AlgorithmLZ4
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmGzip:
		return "Gzip"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmS2:
		return "S2"
	case AlgorithmLZ4:
		return "LZ4"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// Level selects a compression preset. Each backend maps the three
// presets onto its own native level scale.
type Level int

const (
	// LevelDefault is the backend's balanced default.
	LevelDefault Level = iota
	// LevelFastest trades ratio for speed.
	LevelFastest
	// LevelBest trades speed for ratio.
	LevelBest
)

func (l Level) String() string {
	switch l {
	case LevelDefault:
		return "Default"
	case LevelFastest:
		return "Fastest"
	case LevelBest:
		return "Best"
	default:
		return fmt.Sprintf("Unknown(%d)", l)
	}
}

// Valid reports whether l is one of the recognized presets.
func (l Level) Valid() bool {
	return l == LevelDefault || l == LevelFastest || l == LevelBest
}

// Backend is the capability consumed by the distance engine: open a
// streaming compressor over w at the given preset. The returned writer
// must be closed to flush trailing frames; sizes are only meaningful
// after Close.
type Backend interface {
	Algorithm() Algorithm
	NewWriter(w io.Writer, level Level) (io.WriteCloser, error)
}

// Provider returns the backend for the given algorithm.
func Provider(a Algorithm) (Backend, error) {
	switch a {
	case AlgorithmGzip:
		return gzipBackend{}, nil
	case AlgorithmZstd:
		return zstdBackend{}, nil
	case AlgorithmS2:
		return s2Backend{}, nil
	case AlgorithmLZ4:
		return lz4Backend{}, nil
	default:
		return nil, fmt.Errorf("unsupported compression algorithm: %v", a)
	}
}
