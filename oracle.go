package ncdgo

import (
	"io"
	"math"
	"os"

	"github.com/hupe1980/ncdgo/compressor"
	"github.com/hupe1980/ncdgo/internal/sizecache"
)

// countingSink counts bytes and discards them. It is the terminal of
// the compression chain: only the compressed length matters, never the
// compressed bytes themselves.
type countingSink struct {
	n int64
}

func (s *countingSink) Write(p []byte) (int, error) {
	s.n += int64(len(p))
	return len(p), nil
}

// batch is the call-scoped context of one engine operation: an
// immutable snapshot of the items, the mode flag and the compressor
// configuration, plus the per-call size cache. Worker lanes share one
// batch read-only; only the cache accepts writes, and those are
// serialized per slot.
type batch struct {
	items   []string
	isFile  bool
	backend compressor.Backend
	level   compressor.Level
	cache   *sizecache.Cache
}

// size returns the standalone compressed size of item i, computed at
// most once per batch.
func (b *batch) size(i int) (int64, error) {
	return b.cache.Do(i, func() (int64, error) {
		return b.deflate(b.items[i])
	})
}

// deflate streams the given items, in order, through a fresh
// compressor and returns the total compressed length. Concatenation
// order matters: compressors exploit redundancy across the boundary
// asymmetrically.
func (b *batch) deflate(items ...string) (int64, error) {
	sink := &countingSink{}

	w, err := b.backend.NewWriter(sink, b.level)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		if err := b.writeItem(w, item); err != nil {
			_ = w.Close()
			return 0, err
		}
	}

	// The trailing frame is flushed on Close; the count is only
	// complete afterwards.
	if err := w.Close(); err != nil {
		return 0, err
	}

	return sink.n, nil
}

func (b *batch) writeItem(w io.Writer, item string) error {
	if item == "" {
		return ErrEmptyItem
	}

	if !b.isFile {
		_, err := io.WriteString(w, item)
		return err
	}

	f, err := os.Open(item)
	if err != nil {
		return &ErrFileOpen{Path: item, cause: err}
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEmptyItem
	}

	return nil
}

// ncdValue maps compressed sizes through the NCD formula and clamps
// the result to [0,1]. Compressor framing overhead can push the raw
// ratio above 1 on small inputs.
func ncdValue(sizeA, sizeB, sizeAB int64) float64 {
	minSize, maxSize := sizeA, sizeB
	if minSize > maxSize {
		minSize, maxSize = maxSize, minSize
	}

	v := float64(sizeAB-minSize) / float64(maxSize)

	return math.Min(1, math.Max(0, v))
}

// pairDistance computes the clamped NCD value for the pair (i,j) using
// the single concatenation order item_i then item_j.
func (b *batch) pairDistance(i, j int) (float64, error) {
	sizeI, err := b.size(i)
	if err != nil {
		return 0, err
	}

	sizeJ, err := b.size(j)
	if err != nil {
		return 0, err
	}

	sizeIJ, err := b.deflate(b.items[i], b.items[j])
	if err != nil {
		return 0, err
	}

	return ncdValue(sizeI, sizeJ, sizeIJ), nil
}
