package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
)

const testTile = 20

// tiles parses ASCII rows: '#' wall, '.' pickup, anything else empty.
func tiles(rows ...string) [][]Tile {
	out := make([][]Tile, len(rows))
	for y, r := range rows {
		out[y] = make([]Tile, len(r))
		for x, ch := range r {
			switch ch {
			case '#':
				out[y][x] = TileWall
			case '.':
				out[y][x] = TilePickup
			default:
				out[y][x] = TileEmpty
			}
		}
	}
	return out
}

func testGrid(rows ...string) *Grid {
	return NewGrid(tiles(rows...), testTile)
}

func newTestArena(t *testing.T, seed int64, templates ...*Template) *Arena {
	t.Helper()
	a, err := NewArena(DefaultSettings(), templates, WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	return a
}

// terrainFunc is a scripted terrain for driving controllers directly.
type terrainFunc struct {
	canOccupy func(x, y, size int) bool
	width     int
}

func (f terrainFunc) CanOccupy(x, y, size int) bool { return f.canOccupy(x, y, size) }

func (f terrainFunc) WrapX(x int) int {
	switch {
	case x < -testTile:
		return f.width - testTile
	case x >= f.width:
		return 0
	default:
		return x
	}
}

func openTerrain() terrainFunc {
	return terrainFunc{canOccupy: func(int, int, int) bool { return true }, width: 19 * testTile}
}

func closedTerrain() terrainFunc {
	return terrainFunc{canOccupy: func(int, int, int) bool { return false }, width: 19 * testTile}
}

func testAdversary(x, y, tier int, seed int64) *Adversary {
	return NewAdversary(x, y, testTile, 2, tier, core.ColorRed, rand.New(rand.NewSource(seed)))
}
