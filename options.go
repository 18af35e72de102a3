package pixeltracer

import (
	"context"

	"github.com/gogpu/pixeltracer/scene"
)

// Default scene created by New and by NewArea.
const (
	DefaultAreaWidth  = 80
	DefaultAreaHeight = 40
	DefaultAreaName   = "Area1"
	DefaultLayerName  = scene.DefaultLayerName
)

// IDStore persists the process-wide id counter between runs.
// Load returns the last issued id (0 when nothing was stored yet);
// Save records it. See the store package for implementations.
type IDStore interface {
	Load(ctx context.Context) (uint64, error)
	Save(ctx context.Context, last uint64) error
}

// Option configures an App during creation.
//
// Example:
//
//	// Default 80x40 scene, ids starting at 1
//	app, err := pixeltracer.New(ctx)
//
//	// Resume numbering from a file and start with a smaller canvas
//	app, err := pixeltracer.New(ctx,
//	    pixeltracer.WithIDStore(store.NewFile("id.txt")),
//	    pixeltracer.WithDefaultArea(40, 20, "sketch"),
//	)
type Option func(*options)

// options holds optional configuration for App creation.
type options struct {
	idStore    IDStore
	areaWidth  int
	areaHeight int
	areaName   string
}

// defaultOptions returns the default app options.
func defaultOptions() options {
	return options{
		areaWidth:  DefaultAreaWidth,
		areaHeight: DefaultAreaHeight,
		areaName:   DefaultAreaName,
	}
}

// WithIDStore loads the id counter from s when the App is created and saves
// it back on Close.
func WithIDStore(s IDStore) Option {
	return func(o *options) {
		o.idStore = s
	}
}

// WithDefaultArea sets the size and name of the area created at start-up.
// Non-positive sizes make New fail.
func WithDefaultArea(width, height int, name string) Option {
	return func(o *options) {
		o.areaWidth = width
		o.areaHeight = height
		o.areaName = name
	}
}
