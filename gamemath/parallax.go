package gamemath

import "math"

// TileSpan describes which copies of a horizontally repeated background
// are needed to cover the viewport.
type TileSpan struct {
	Offset float64 // screen x of tile 0
	First  int
	Last   int // inclusive
}

// ParallaxTiles computes the tile range for a background of width tileW
// scrolled at parallax times the camera speed. One extra tile is kept on
// both sides so edges never show while scrolling.
func ParallaxTiles(cameraX, parallax, tileW, viewW float64) TileSpan {
	if tileW <= 0 {
		return TileSpan{First: 0, Last: -1}
	}
	offset := -cameraX * parallax
	return TileSpan{
		Offset: offset,
		First:  int(math.Floor(-offset/tileW)) - 1,
		Last:   int(math.Ceil((viewW-offset)/tileW)) + 1,
	}
}

// Star returns the screen position of the i-th fallback star. Stars are laid
// out on a fixed lattice over the world and scroll with the camera.
func Star(i int, cameraX, cameraY, worldW, worldH float64) (x, y float64) {
	x = math.Mod(float64(i*137), worldW) - cameraX
	y = math.Mod(float64(i*73), worldH) - cameraY
	return x, y
}
