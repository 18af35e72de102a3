// Package store persists the process-wide identifier counter between runs.
//
// Both backends implement the pixeltracer.IDStore contract: Load returns the
// last issued id, or 0 when nothing was stored yet, and Save records it.
//
//   - [File] keeps one decimal integer in a text file.
//   - [SQLite] keeps the counter in a single-row table.
package store
