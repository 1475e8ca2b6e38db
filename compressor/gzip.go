package compressor

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipBackend compresses with the DEFLATE-based gzip format.
type gzipBackend struct{}

var _ Backend = gzipBackend{}

func (gzipBackend) Algorithm() Algorithm { return AlgorithmGzip }

func (gzipBackend) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	var gzLevel int
	switch level {
	case LevelDefault:
		gzLevel = gzip.DefaultCompression
	case LevelFastest:
		gzLevel = gzip.BestSpeed
	case LevelBest:
		gzLevel = gzip.BestCompression
	default:
		return nil, fmt.Errorf("unsupported compression level: %v", level)
	}
	return gzip.NewWriterLevel(w, gzLevel)
}
