// Package scene holds the vector scene model of a text-grid drawing:
// areas (character canvases), their ordered layers, and the shapes inside
// each layer.
//
// # Entities
//
// An [Area] owns a width×height grid of runes and an ordered list of
// [Layer] values. A Layer owns an ordered list of [Shape] values. Shapes are
// a closed set of seven variants (point, line, square, rectangle, circle,
// polygon, cubic Bézier curve).
//
// # Identity
//
// Areas, layers and shapes all take their id from one process-wide
// [Sequence], so ids never collide across entity kinds and are never
// reused within a process. Use [SeedIDs] and [LastID] to persist the
// counter across runs.
//
// # Errors
//
// Cell access outside the grid fails with [ErrOutOfBounds]; refused
// arguments fail with [ErrInvalidArgument]; id lookups report absence
// with a boolean, and callers that need an error use [ErrNotFound].
//
// # Construction
//
// Entities can be created one by one (NewArea, NewLayer, NewCircleShape,
// ...), from an already-parsed parameter list with [Build], or fluently
// with [AreaBuilder].
//
// Rendering lives in the raster package.
package scene
