// tilemap.go
package level

import (
	"errors"
	"fmt"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
)

var (
	ErrInvalidSize = errors.New("map dimensions must be at least 3x3")
	ErrRaggedRows  = errors.New("map rows must all have the same width")
)

// Rand is the slice of *rand.Rand the generator needs.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// GenOptions controls procedural map generation.
type GenOptions struct {
	// LatticeStride walls every Nth row/column with LatticeWallChance
	LatticeStride     int
	LatticeWallChance float64
	ScatterWallChance float64
	// SafeMin/SafeMax bound the tile square kept clear around the spawn point
	SafeMin, SafeMax int
}

func DefaultGenOptions() GenOptions {
	return GenOptions{
		LatticeStride:     3,
		LatticeWallChance: 0.35,
		ScatterWallChance: 0.05,
		SafeMin:           1,
		SafeMax:           4,
	}
}

// TileMap is the occupancy grid, indexed [y][x]. It must not change while a game is running.
type TileMap struct {
	cells    [][]Tile
	width    int
	height   int
	tileSize float64
}

// Generate builds a walled room-like map. The outer ring is always wall and the
// spawn safe zone is always clear; connectivity is not checked.
func Generate(width, height int, tileSize float64, rng Rand, opts GenOptions) (*TileMap, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrInvalidSize)
	}
	if opts.LatticeStride <= 0 {
		opts.LatticeStride = 1
	}

	m := newTileMap(width, height, tileSize)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case x == 0 || y == 0 || x == width-1 || y == height-1:
				m.cells[y][x] = TileWall
			case x >= opts.SafeMin && x <= opts.SafeMax && y >= opts.SafeMin && y <= opts.SafeMax:
				m.cells[y][x] = TileEmpty
			case x%opts.LatticeStride == 0 || y%opts.LatticeStride == 0:
				if rng.Float64() < opts.LatticeWallChance {
					m.cells[y][x] = TileWall
				}
			default:
				if rng.Float64() < opts.ScatterWallChance {
					m.cells[y][x] = TileWall
				}
			}
		}
	}

	return m, nil
}

// FromRows parses a fixed layout where '#' or '1' is a wall and anything else is empty.
// The outer ring is walled whatever the rows say.
func FromRows(rows []string, tileSize float64) (*TileMap, error) {
	if len(rows) < 3 || len(rows[0]) < 3 {
		return nil, fmt.Errorf("from rows: %w", ErrInvalidSize)
	}

	width := len(rows[0])
	m := newTileMap(width, len(rows), tileSize)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("from rows: row %d has width %d, want %d: %w", y, len(row), width, ErrRaggedRows)
		}
		for x, c := range row {
			if c == '#' || c == '1' {
				m.cells[y][x] = TileWall
			}
		}
	}
	m.sealBorder()

	return m, nil
}

func newTileMap(width, height int, tileSize float64) *TileMap {
	cells := make([][]Tile, height)
	for i := range cells {
		cells[i] = make([]Tile, width)
	}
	return &TileMap{cells: cells, width: width, height: height, tileSize: tileSize}
}

// sealBorder walls the outer ring so nothing can leave the map.
func (m *TileMap) sealBorder() {
	for x := 0; x < m.width; x++ {
		m.cells[0][x] = TileWall
		m.cells[m.height-1][x] = TileWall
	}
	for y := 0; y < m.height; y++ {
		m.cells[y][0] = TileWall
		m.cells[y][m.width-1] = TileWall
	}
}

func (m *TileMap) Width() int        { return m.width }
func (m *TileMap) Height() int       { return m.height }
func (m *TileMap) TileSize() float64 { return m.tileSize }

func (m *TileMap) WorldWidth() float64  { return float64(m.width) * m.tileSize }
func (m *TileMap) WorldHeight() float64 { return float64(m.height) * m.tileSize }

func (m *TileMap) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < m.width && ty < m.height
}

// IsWall reports whether the tile blocks movement and rays. Out of bounds counts as wall.
func (m *TileMap) IsWall(tx, ty int) bool {
	if !m.InBounds(tx, ty) {
		return true
	}
	return m.cells[ty][tx] != TileEmpty
}

// TileAt converts a world position to tile coordinates.
func (m *TileMap) TileAt(x, y float64) (int, int) {
	return int(math.Floor(x / m.tileSize)), int(math.Floor(y / m.tileSize))
}

// IsWallAt is IsWall for a world position.
func (m *TileMap) IsWallAt(x, y float64) bool {
	return m.IsWall(m.TileAt(x, y))
}

func (m *TileMap) TileCenter(tx, ty int) geom.Vector2 {
	return geom.Vector2{X: (float64(tx) + 0.5) * m.tileSize, Y: (float64(ty) + 0.5) * m.tileSize}
}

// OpenTiles lists the centers of every empty tile, row by row.
func (m *TileMap) OpenTiles() []geom.Vector2 {
	open := make([]geom.Vector2, 0, m.width*m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] == TileEmpty {
				open = append(open, m.TileCenter(x, y))
			}
		}
	}
	return open
}
