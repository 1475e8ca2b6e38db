// Package ncdgo computes the Normalized Compression Distance (NCD)
// between data items.
//
// NCD approximates algorithmic information distance with a real
// compressor: for items a and b with standalone compressed sizes C(a)
// and C(b) and concatenated size C(ab),
//
//	NCD(a, b) = (C(ab) - min(C(a), C(b))) / max(C(a), C(b))
//
// Near-identical items compress well together and score near 0;
// unrelated items score near 1. The engine emits single-pair values
// and full dissimilarity matrices for downstream clustering or
// classification.
//
// # Quick Start
//
//	engine, err := ncdgo.New()
//	if err != nil {
//	    panic(err)
//	}
//
//	d, err := engine.Calculate(ctx, "abcabcabc", "xyzxyzxyz", false)
//
//	// Full pairwise dissimilarity matrix, computed in parallel.
//	m, err := engine.Symmetric(ctx, items, false)
//
// Items are either in-memory byte strings or file paths; the isFile
// flag selects the mode for an entire call.
//
// # Algorithms
//
// Four compression backends are available (gzip, zstd, s2, lz4), each
// with three level presets:
//
//	engine, err := ncdgo.New(
//	    ncdgo.WithAlgorithm(compressor.AlgorithmZstd),
//	    ncdgo.WithCompressionLevel(compressor.LevelBest),
//	)
//
// # Batch Modes
//
// Symmetric computes one concatenation order per pair, mirrors it into
// a symmetric matrix, and distributes pair work across parallel lanes.
// Unsymmetric computes both concatenation orders independently, which
// captures order-sensitive compressors at twice the oracle cost, and
// runs sequentially.
package ncdgo
