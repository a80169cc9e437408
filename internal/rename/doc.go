// Package rename drives the classification pipeline over files and performs
// the in-place renames.
//
// The orchestrator owns the per-directory cache: identifiers stay pure, and
// memoized title/season/group results are keyed by directory and dropped
// when the walker enters that directory, so they never leak across folders
// or runs. Episode numbers are recomputed for every file. One file's failure
// never aborts a batch.
package rename
