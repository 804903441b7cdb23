// SPDX-License-Identifier: EPL-2.0

// Package otchain builds sample chains for slice-grid hardware samplers.
//
// A chain is one continuous audio file assembled from many short samples,
// accompanied by an .ot metadata file that tells the sampler where each
// slice begins and ends. This package ties the pieces together: it finds
// and decodes input files (formats/wav, formats/aiff, formats/mp3,
// formats/vorbis), prepares each one as a clip (package clip), lays the
// clips out into a slice plan (package chain) and writes the audio plus
// metadata pair (package otfile).
//
// # Building a chain
//
//	opts := otchain.DefaultChainOptions()
//	opts.Plan.TargetSliceCount = 16
//	result, diags, err := otchain.BuildChainFiles("samples/", "chain.wav", opts)
//
// BuildChainFiles renders both output files fully in memory before writing
// either, so a failed run never leaves an audio file without its metadata
// (or the other way around).
//
// # Batch processing and inspection
//
// RunBatch applies the same per-clip preparation to every file in a
// directory and writes each result as an individual WAV. Inspect reports
// the format of a file without processing it.
//
// Non-fatal problems (an undecodable input file, truncated clips) are
// returned as chain.Diagnostic values; only errors that make the output
// unusable abort a run.
package otchain
