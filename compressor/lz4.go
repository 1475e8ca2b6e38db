package compressor

import (
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Backend compresses with LZ4 frame format.
type lz4Backend struct{}

var _ Backend = lz4Backend{}

func (lz4Backend) Algorithm() Algorithm { return AlgorithmLZ4 }

func (lz4Backend) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	var lvl lz4.CompressionLevel
	switch level {
	case LevelDefault, LevelFastest:
		// LZ4's native default is its fast mode.
		lvl = lz4.Fast
	case LevelBest:
		lvl = lz4.Level9
	default:
		return nil, fmt.Errorf("unsupported compression level: %v", level)
	}
	lw := lz4.NewWriter(w)
	if err := lw.Apply(lz4.CompressionLevelOption(lvl)); err != nil {
		return nil, err
	}
	return lw, nil
}
