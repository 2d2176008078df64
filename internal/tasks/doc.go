// Package tasks runs the concurrent side of library exports with real-time progress reporting.
//
// # Poster Downloads
//
// [FetchPosters] downloads poster images for owned movies through a worker pool.
// A [rate.Limiter] paces the requests so a large library never floods the image host.
// Failed downloads are collected rather than aborting the export; the Markdown
// export simply renders those titles without an image.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters and a message.
// Updates use select with default to prevent blocking.
package tasks
