package pixeltracer

import "errors"

var (
	// ErrNoActiveArea is returned by operations that target the current
	// area when none is selected.
	ErrNoActiveArea = errors.New("pixeltracer: no active area")

	// ErrNoActiveLayer is returned by operations that target the current
	// layer, such as adding a shape, when none is selected.
	ErrNoActiveLayer = errors.New("pixeltracer: no active layer")
)
