package compressor

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdBackend compresses with Zstandard.
type zstdBackend struct{}

var _ Backend = zstdBackend{}

func (zstdBackend) Algorithm() Algorithm { return AlgorithmZstd }

func (zstdBackend) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	var encLevel zstd.EncoderLevel
	switch level {
	case LevelDefault:
		encLevel = zstd.SpeedDefault
	case LevelFastest:
		encLevel = zstd.SpeedFastest
	case LevelBest:
		encLevel = zstd.SpeedBestCompression
	default:
		return nil, fmt.Errorf("unsupported compression level: %v", level)
	}
	// Single goroutine per encoder; size measurement streams one item
	// at a time and gains nothing from parallel blocks.
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(encLevel),
		zstd.WithEncoderConcurrency(1),
	)
}
