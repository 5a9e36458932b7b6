package ahk

import (
	"context"
	"fmt"
)

// PixelGetColor returns the color of the pixel at x, y as a hex string like
// "0xRRGGBB". Options use the interpreter's PixelGetColor syntax ("Alt",
// "Slow", "RGB").
func (e *Engine) PixelGetColor(ctx context.Context, x, y int, options string) (string, error) {
	return e.stringCall(ctx, "PixelGetColor", x, y, options)
}

// PixelSearch scans the rectangle for a pixel of the given color, within
// variation shades per channel, and returns its coordinates.
func (e *Engine) PixelSearch(ctx context.Context, x1, y1, x2, y2 int, color string, variation int, options string) (Coordinate, error) {
	return e.coordCall(ctx, "PixelSearch", x1, y1, x2, y2, color, variation, options)
}

// ImageSearch scans the rectangle for the image at imagePath and returns the
// coordinates of its upper-left corner. Options use the interpreter's
// ImageSearch syntax ("*50 *TransWhite") and ride as a prefix on the path
// argument.
func (e *Engine) ImageSearch(ctx context.Context, x1, y1, x2, y2 int, imagePath, options string) (Coordinate, error) {
	path := imagePath
	if options != "" {
		path = options + " " + imagePath
	}

	v, err := e.Call(ctx, "AHKImageSearch", x1, y1, x2, y2, path)
	if err != nil {
		return Coordinate{}, err
	}

	pair, ok := v.([]any)
	if !ok || len(pair) != 2 {
		return Coordinate{}, fmt.Errorf("AHKImageSearch: unexpected result %v", v)
	}

	x, xok := pair[0].(int)
	y, yok := pair[1].(int)

	if !xok || !yok {
		return Coordinate{}, fmt.Errorf("AHKImageSearch: unexpected result %v", v)
	}

	return Coordinate{X: x, Y: y}, nil
}
