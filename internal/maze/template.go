package maze

import "github.com/vovakirdan/tui-maze/internal/core"

// Spawn is a tile coordinate where an agent starts a level.
type Spawn struct {
	Col int
	Row int
}

// AdversarySpawn places one adversary.
type AdversarySpawn struct {
	Spawn
	Tier  int
	Color core.Color
}

// Template is the read-only description of a level. Arenas never mutate
// it; every load builds a fresh Grid from it.
type Template struct {
	ID          string
	Name        string
	Player      Spawn
	Adversaries []AdversarySpawn

	rows [][]Tile
}

// NewTemplate copies rows into a new template.
func NewTemplate(id, name string, rows [][]Tile, player Spawn, adversaries []AdversarySpawn) *Template {
	cp := make([][]Tile, len(rows))
	for i, r := range rows {
		cp[i] = append([]Tile(nil), r...)
	}
	return &Template{
		ID:          id,
		Name:        name,
		Player:      player,
		Adversaries: append([]AdversarySpawn(nil), adversaries...),
		rows:        cp,
	}
}

// Width returns the number of columns.
func (t *Template) Width() int {
	if len(t.rows) == 0 {
		return 0
	}
	return len(t.rows[0])
}

// Height returns the number of rows.
func (t *Template) Height() int {
	return len(t.rows)
}

// Tile returns the classification at (col, row).
func (t *Template) Tile(col, row int) Tile {
	return t.rows[row][col]
}

// Pickups counts the pickup cells.
func (t *Template) Pickups() int {
	n := 0
	for _, r := range t.rows {
		for _, c := range r {
			if c == TilePickup {
				n++
			}
		}
	}
	return n
}

// NewGrid returns a live grid for one play-through of the level.
func (t *Template) NewGrid(tileSize int) *Grid {
	return NewGrid(t.rows, tileSize)
}
