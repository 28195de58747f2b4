// image.go
package level

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
)

// ColorWall is the pixel colour read as a wall tile. Every other colour is empty.
var ColorWall = color.RGBA{0, 0, 0, 255}

// FromImage decodes a map drawn as an image, one pixel per tile.
func FromImage(r io.Reader, tileSize float64) (*TileMap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode map image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("map image %dx%d: %w", width, height, ErrInvalidSize)
	}

	m := newTileMap(width, height, tileSize)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if c == ColorWall {
				m.cells[y][x] = TileWall
			}
		}
	}

	// keep the outer ring solid even if the image leaves gaps
	m.sealBorder()

	return m, nil
}
