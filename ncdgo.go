package ncdgo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/ncdgo/compressor"
	"github.com/hupe1980/ncdgo/internal/sizecache"
	"github.com/hupe1980/ncdgo/internal/wavefront"
)

// Engine computes NCD values and dissimilarity matrices.
//
// One Engine is safe for concurrent use: every batch call snapshots
// the items and the compressor configuration into its own call-scoped
// context, so simultaneous calls never share mutable state.
type Engine struct {
	mu      sync.RWMutex
	backend compressor.Backend
	level   compressor.Level
	workers int
	logger  *Logger
}

// New creates an Engine. Without options it compresses with gzip at
// the default level and parallelizes Symmetric across one lane per
// CPU.
func New(optFns ...Option) (*Engine, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	backend, err := compressor.Provider(opts.algorithm)
	if err != nil {
		return nil, err
	}
	if !opts.level.Valid() {
		return nil, fmt.Errorf("unsupported compression level: %v", opts.level)
	}

	return &Engine{
		backend: backend,
		level:   opts.level,
		workers: opts.workers,
		logger:  opts.logger,
	}, nil
}

// SetCompressionLevel reconfigures the level preset for calls issued
// afterwards. In-flight batch calls keep the level they snapshotted at
// start; cached sizes from a previous level are never mixed into a
// running batch.
func (e *Engine) SetCompressionLevel(level compressor.Level) error {
	if !level.Valid() {
		return fmt.Errorf("unsupported compression level: %v", level)
	}

	e.mu.Lock()
	e.level = level
	e.mu.Unlock()

	return nil
}

// newBatch snapshots the engine configuration and the items into a
// call-scoped context.
func (e *Engine) newBatch(items []string, isFile bool) *batch {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return &batch{
		items:   slices.Clone(items),
		isFile:  isFile,
		backend: e.backend,
		level:   e.level,
		cache:   sizecache.New(len(items)),
	}
}

// Calculate computes the NCD value for a single pair, clamped to
// [0,1]. Calculate(a, b) may differ from Calculate(b, a): compressors
// are order-sensitive across the concatenation boundary. This is
// inherent to the metric, not a defect; use Unsymmetric to capture
// both orders of a batch.
//
// isFile interprets a and b as file paths instead of content.
func (e *Engine) Calculate(ctx context.Context, a, b string, isFile bool) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	bt := e.newBatch([]string{a, b}, isFile)

	return bt.pairDistance(0, 1)
}

// Unsymmetric computes the full N×N dissimilarity matrix, evaluating
// both concatenation orders of every pair independently. Entry (i,j)
// holds the distance for item_i followed by item_j; the diagonal is 0.
//
// Both orders means twice the compression work of Symmetric, and the
// path is strictly sequential. Prefer Symmetric unless the
// order-sensitivity of the compressor is itself of interest.
func (e *Engine) Unsymmetric(ctx context.Context, items []string, isFile bool) (*mat.Dense, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	bt := e.newBatch(items, isFile)
	n := len(bt.items)

	// Zero-valued matrix; the diagonal stays 0.
	m := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			sizeI, err := bt.size(i)
			if err != nil {
				return nil, err
			}
			sizeJ, err := bt.size(j)
			if err != nil {
				return nil, err
			}

			sizeIJ, err := bt.deflate(bt.items[i], bt.items[j])
			if err != nil {
				return nil, err
			}
			sizeJI, err := bt.deflate(bt.items[j], bt.items[i])
			if err != nil {
				return nil, err
			}

			m.Set(i, j, ncdValue(sizeI, sizeJ, sizeIJ))
			m.Set(j, i, ncdValue(sizeI, sizeJ, sizeJI))
		}
	}

	e.logBatch("unsymmetric batch complete", bt, 1, start)

	return m, nil
}

// Symmetric computes the N×N dissimilarity matrix using a single
// concatenation order per pair, mirrored into symmetric storage. With
// more than one worker lane the pair work is wavefront-partitioned and
// executed in parallel; the result is bit-identical to the sequential
// path.
//
// The first error from any lane cancels the remaining work and is
// returned; no partial matrix is ever returned.
func (e *Engine) Symmetric(ctx context.Context, items []string, isFile bool) (*mat.SymDense, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	bt := e.newBatch(items, isFile)
	n := len(bt.items)

	// Zero-valued matrix; the diagonal stays 0.
	m := mat.NewSymDense(n, nil)

	// workers is immutable after construction.
	workers := e.workers

	if workers <= 1 || n < 2 {
		if err := e.symmetricSequential(ctx, bt, m); err != nil {
			return nil, err
		}
		e.logBatch("symmetric batch complete", bt, 1, start)
		return m, nil
	}

	if err := e.symmetricParallel(ctx, bt, m, workers); err != nil {
		return nil, err
	}
	e.logBatch("symmetric batch complete", bt, workers, start)

	return m, nil
}

// symmetricSequential fills m in strict row-major order. It applies
// the identical formula as the parallel path so both yield
// bit-identical matrices.
func (e *Engine) symmetricSequential(ctx context.Context, bt *batch, m *mat.SymDense) error {
	n := len(bt.items)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := bt.pairDistance(i, j)
			if err != nil {
				return err
			}

			m.SetSym(i, j, v)
		}
	}

	return nil
}

// symmetricParallel distributes the pair work across workers lanes.
// Each pair is owned by exactly one lane, so matrix cell writes never
// collide; standalone sizes are memoized once per index regardless of
// which lane touches it first.
func (e *Engine) symmetricParallel(ctx context.Context, bt *batch, m *mat.SymDense, workers int) error {
	n := len(bt.items)

	// The boundary items sit on every early anti-diagonal; computing
	// them before lane start-up keeps the first lanes from stalling on
	// the same slots.
	if _, err := bt.size(0); err != nil {
		return err
	}
	if _, err := bt.size(n - 1); err != nil {
		return err
	}

	lanes := wavefront.Partition(n, workers)

	g, gctx := errgroup.WithContext(ctx)
	for _, lane := range lanes {
		g.Go(func() error {
			for _, p := range lane {
				if err := gctx.Err(); err != nil {
					return err
				}

				v, err := bt.pairDistance(p.I, p.J)
				if err != nil {
					return err
				}

				// Disjoint (I,J) across lanes, so SetSym is
				// race-free without a lock.
				m.SetSym(p.I, p.J, v)
			}
			return nil
		})
	}

	return g.Wait()
}

func (e *Engine) logBatch(msg string, bt *batch, workers int, start time.Time) {
	e.logger.WithBatch(len(bt.items)).WithAlgorithm(bt.backend.Algorithm().String()).Debug(msg,
		"workers", workers,
		"level", bt.level.String(),
		"is_file", bt.isFile,
		"duration", time.Since(start),
	)
}
