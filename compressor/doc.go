// Package compressor provides the compression backends used for
// compressed-size measurement.
//
// Each backend wraps a streaming compressor behind the Backend
// interface, so the distance engine never depends on a concrete
// algorithm. New algorithms are added by implementing Backend and
// extending Provider.
package compressor
