// Command ptdemo renders a demo scene with the pixeltracer library, prints
// it and saves a PNG of it.
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"os"

	"github.com/gogpu/pixeltracer"
	"github.com/gogpu/pixeltracer/export"
	"github.com/gogpu/pixeltracer/scene"
)

func main() {
	var (
		width  = flag.Int("width", 64, "grid width in cells")
		height = flag.Int("height", 24, "grid height in cells")
		output = flag.String("output", "demo.png", "output PNG file, empty to skip")
		mono   = flag.Float64("mono", 0, "draw the PNG with Go Mono at this size (0 keeps the 7x13 bitmap font)")
	)
	flag.Parse()

	ctx := context.Background()
	app, err := pixeltracer.New(ctx, pixeltracer.WithDefaultArea(*width, *height, "demo"))
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}

	drawFrame(app, *width, *height)
	drawShapesDemo(app)
	drawStar(app, *width*3/4, *height/2, *height/3)
	drawCurveDemo(app, *width, *height)

	lines, err := app.Render()
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := export.WriteText(os.Stdout, lines); err != nil {
		log.Fatalf("Failed to print: %v", err)
	}

	if *output == "" {
		return
	}
	if err := savePNG(*output, lines, *mono); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d cells)\n", *output, *width, *height)
}

func add(app *pixeltracer.App, kind scene.Kind, params ...int) {
	if _, err := app.AddShapeParams(kind, params); err != nil {
		log.Fatalf("Failed to add %s: %v", kind, err)
	}
}

func drawFrame(app *pixeltracer.App, w, h int) {
	add(app, scene.KindRectangle, 0, 0, w, h)
}

func drawShapesDemo(app *pixeltracer.App) {
	// Foreground shapes get their own layer
	if _, err := app.NewLayer("shapes"); err != nil {
		log.Fatalf("Failed to add layer: %v", err)
	}
	add(app, scene.KindCircle, 10, 8, 5)
	add(app, scene.KindSquare, 20, 3, 6)
	add(app, scene.KindLine, 3, 20, 28, 14)
	add(app, scene.KindPoint, 10, 8)
}

func drawStar(app *pixeltracer.App, cx, cy, r int) {
	const points = 5
	star := scene.NewPolygonShape()
	for i := 0; i < points*2; i++ {
		angle := float64(i)*math.Pi/points - math.Pi/2
		radius := float64(r)
		if i%2 == 1 {
			radius /= 2
		}
		// Cells are about twice as tall as wide
		star.AddPoint(cx+int(math.Round(radius*math.Cos(angle)*2)), cy+int(math.Round(radius*math.Sin(angle))))
	}
	if err := app.AddShape(star); err != nil {
		log.Fatalf("Failed to add star: %v", err)
	}
}

func drawCurveDemo(app *pixeltracer.App, w, h int) {
	add(app, scene.KindCurve, 2, h-3, w/4, 2, w/2, h-2, w-3, h-4)
}

func savePNG(path string, lines []string, mono float64) error {
	var opts []export.ImageOption
	if mono > 0 {
		face, err := export.MonoFace(mono)
		if err != nil {
			return err
		}
		defer face.Close()
		opts = append(opts, export.WithFace(face))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.NewImage(opts...).WritePNG(f, lines); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
