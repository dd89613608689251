package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

const tileSize = 20

func TestBundled(t *testing.T) {
	tpls := Bundled()
	require.Len(t, tpls, 3)

	ids := []string{tpls[0].ID, tpls[1].ID, tpls[2].ID}
	assert.Equal(t, []string{"level1", "level2", "level3"}, ids)

	for _, tpl := range tpls {
		t.Run(tpl.ID, func(t *testing.T) {
			assert.Equal(t, 19, tpl.Width())
			assert.Equal(t, 19, tpl.Height())
			assert.Positive(t, tpl.Pickups())
			require.Len(t, tpl.Adversaries, 3)

			g := tpl.NewGrid(tileSize)
			assert.False(t, g.CanOccupy(0, 0, tileSize), "border corner is solid")
			assert.True(t, g.IsWall(0, 0))

			p := tpl.Player
			assert.True(t, g.CanOccupy(p.Col*tileSize, p.Row*tileSize, tileSize), "player spawn is open")
			for _, a := range tpl.Adversaries {
				assert.True(t, g.CanOccupy(a.Col*tileSize, a.Row*tileSize, tileSize), "adversary spawn is open")
			}
		})
	}
}

func TestBundledSpawns(t *testing.T) {
	tpl := Bundled()[0]

	assert.Equal(t, maze.Spawn{Col: 9, Row: 15}, tpl.Player)
	want := []maze.AdversarySpawn{
		{Spawn: maze.Spawn{Col: 9, Row: 9}, Tier: 1, Color: core.ColorRed},
		{Spawn: maze.Spawn{Col: 8, Row: 9}, Tier: 2, Color: core.ColorPink},
		{Spawn: maze.Spawn{Col: 10, Row: 9}, Tier: 3, Color: core.ColorCyan},
	}
	assert.Equal(t, want, tpl.Adversaries)
}

func TestParseRows(t *testing.T) {
	rows, err := ParseRows([]string{"#._", "# ."})
	require.NoError(t, err)
	assert.Equal(t, [][]maze.Tile{
		{maze.TileWall, maze.TilePickup, maze.TileEmpty},
		{maze.TileWall, maze.TileEmpty, maze.TilePickup},
	}, rows)

	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "##"}},
		{"unknown tile", []string{"#x#"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRows(tc.rows)
			assert.Error(t, err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
id: tiny
rows:
  - "#####"
  - "#. .#"
  - "#####"
player: {col: 1, row: 1}
adversaries:
  - {col: 3, row: 1, tier: 0, color: orange}
`
	tpl, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "tiny", tpl.ID)
	assert.Equal(t, "tiny", tpl.Name, "name falls back to id")
	assert.Equal(t, 2, tpl.Pickups())
	require.Len(t, tpl.Adversaries, 1)
	assert.Equal(t, 1, tpl.Adversaries[0].Tier)
	assert.Equal(t, core.ColorOrange, tpl.Adversaries[0].Color)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", "id: [unterminated"},
		{"missing id", "rows: [\"#\"]"},
		{"no rows", "id: x"},
		{"bad color", "id: x\nrows: [\"#\"]\nadversaries:\n  - {col: 0, row: 0, color: mauve}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("b.yaml", "id: b\nrows: [\"###\"]\nplayer: {col: 0, row: 0}\n")
	write("a.yml", "id: a\nrows: [\"#.#\"]\nplayer: {col: 1, row: 0}\n")
	write("broken.yaml", "id: broken\nrows: [\"#?#\"]\n")
	write("notes.txt", "not a level")

	tpls, err := NewLoader(dir, nil).LoadAll()
	require.NoError(t, err)
	require.Len(t, tpls, 2, "broken and non-yaml files are skipped")
	assert.Equal(t, "a", tpls[0].ID)
	assert.Equal(t, "b", tpls[1].ID)
}

func TestLoad(t *testing.T) {
	tpls, err := Load("", nil)
	require.NoError(t, err)
	assert.Len(t, tpls, 3)

	_, err = Load(t.TempDir(), nil)
	assert.Error(t, err, "empty directory has no levels")

	_, err = Load(filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}
