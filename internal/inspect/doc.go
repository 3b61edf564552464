// Package inspect probes batches of media files.
//
// A Batch fans paths out to an ffprobe Inspector with bounded concurrency.
// Each input yields exactly one Result in input order; a failing file is
// logged and recorded without disturbing the rest. Summarize reduces the
// results to counts and a list of unique files keyed by file name.
package inspect
