package compressor

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
)

// s2Backend compresses with S2, the Snappy-compatible format.
// Its fast mode is the cheapest backend available and suits large
// batches where compression ratio matters less than throughput.
type s2Backend struct{}

var _ Backend = s2Backend{}

func (s2Backend) Algorithm() Algorithm { return AlgorithmS2 }

func (s2Backend) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	opts := []s2.WriterOption{s2.WriterConcurrency(1)}
	switch level {
	case LevelDefault:
		opts = append(opts, s2.WriterBetterCompression())
	case LevelFastest:
		// s2's native default is its fastest mode.
	case LevelBest:
		opts = append(opts, s2.WriterBestCompression())
	default:
		return nil, fmt.Errorf("unsupported compression level: %v", level)
	}
	return s2.NewWriter(w, opts...), nil
}
