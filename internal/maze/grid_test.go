package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boxRows = []string{
	"#####",
	"#...#",
	"  .  ",
	"#...#",
	"#####",
}

func TestGridDimensions(t *testing.T) {
	g := testGrid(boxRows...)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())
	assert.Equal(t, 100, g.PixelWidth())
	assert.Equal(t, 100, g.PixelHeight())
	assert.Equal(t, TileWall, g.Classify(0, 0))
	assert.Equal(t, TilePickup, g.Classify(1, 1))
	assert.Equal(t, TileEmpty, g.Classify(0, 2))
	assert.Equal(t, 7, g.CountPickups())
}

func TestGridClassifyOutOfRangePanics(t *testing.T) {
	g := testGrid(boxRows...)
	assert.Panics(t, func() { g.Classify(5, 0) })
	assert.Panics(t, func() { g.Classify(0, -1) })
}

func TestGridIsWall(t *testing.T) {
	g := testGrid(boxRows...)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"corner wall", 0, 0, true},
		{"pickup cell", 25, 25, false},
		{"last pixel of wall tile", 19, 19, true},
		{"first pixel of open tile", 20, 20, false},
		{"tunnel row left edge", 0, 45, false},
		{"just left of board truncates to column 0", -5, 45, false},
		{"one tile left of board", -20, 45, true},
		{"right of board", 100, 45, true},
		{"above board", 25, -25, true},
		{"below board", 25, 100, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsWall(tc.x, tc.y))
		})
	}
}

func TestGridCanOccupy(t *testing.T) {
	g := testGrid(boxRows...)

	assert.True(t, g.CanOccupy(20, 20, testTile), "aligned inside corridor")
	assert.True(t, g.CanOccupy(40, 20, testTile))
	assert.False(t, g.CanOccupy(0, 0, testTile), "border is solid")
	assert.False(t, g.CanOccupy(20, 62, testTile), "bottom corners reach wall row")
	assert.False(t, g.CanOccupy(62, 20, testTile), "right corners reach wall column")
	assert.True(t, g.CanOccupy(-10, 40, testTile), "tunnel overhang")
}

func TestGridWrapX(t *testing.T) {
	g := testGrid(boxRows...)
	pw := g.PixelWidth()

	for x := 0; x < pw; x++ {
		require.Equal(t, x, g.WrapX(x), "x inside the board is unchanged")
	}

	assert.Equal(t, -testTile, g.WrapX(-testTile), "left threshold is exclusive")
	assert.Equal(t, pw-testTile, g.WrapX(-testTile-1))
	assert.Equal(t, pw-1, g.WrapX(pw-1))
	assert.Equal(t, 0, g.WrapX(pw))
	assert.Equal(t, 0, g.WrapX(pw+7))
}

func TestGridConsumePickup(t *testing.T) {
	g := testGrid(boxRows...)

	assert.True(t, g.ConsumePickup(1, 1))
	assert.Equal(t, TileEmpty, g.Classify(1, 1))
	assert.Equal(t, 6, g.CountPickups())

	assert.False(t, g.ConsumePickup(1, 1), "already eaten")
	assert.False(t, g.ConsumePickup(0, 0), "walls are not pickups")
	assert.False(t, g.ConsumePickup(-1, 9), "out of range is ignored")
	assert.Equal(t, TileWall, g.Classify(0, 0))
	assert.Equal(t, 6, g.CountPickups())
}

func TestGridCopiesInput(t *testing.T) {
	rows := tiles(boxRows...)
	g := NewGrid(rows, testTile)
	rows[1][1] = TileWall

	assert.Equal(t, TilePickup, g.Classify(1, 1))

	c := g.Clone()
	c.ConsumePickup(1, 1)
	assert.Equal(t, TilePickup, g.Classify(1, 1), "clone must not alias")
}

func TestDirection(t *testing.T) {
	tests := []struct {
		d      Direction
		angle  int
		dx, dy int
		name   string
	}{
		{Right, 0, 1, 0, "right"},
		{Up, 90, 0, -1, "up"},
		{Left, 180, -1, 0, "left"},
		{Down, 270, 0, 1, "down"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.angle, tc.d.Angle())
			dx, dy := tc.d.Delta()
			assert.Equal(t, tc.dx, dx)
			assert.Equal(t, tc.dy, dy)
			assert.Equal(t, tc.name, tc.d.String())
		})
	}
}
