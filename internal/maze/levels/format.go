package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// File is the YAML shape of a level.
//
//	id: level1
//	name: Simple Maze
//	rows:
//	  - "#####"
//	  - "#. .#"
//	player: {col: 1, row: 1}
//	adversaries:
//	  - {col: 3, row: 1, tier: 1, color: red}
type File struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Rows        []string        `yaml:"rows"`
	Player      SpawnFile       `yaml:"player"`
	Adversaries []AdversaryFile `yaml:"adversaries"`
}

// SpawnFile is a tile coordinate.
type SpawnFile struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// AdversaryFile describes one adversary spawn.
type AdversaryFile struct {
	Col   int    `yaml:"col"`
	Row   int    `yaml:"row"`
	Tier  int    `yaml:"tier"`
	Color string `yaml:"color"`
}

var errNoRows = errors.New("no rows")

// ParseRows converts ASCII rows into tiles: '#' is a wall, '.' a pickup,
// ' ' and '_' are empty. Rows must all have the same width.
func ParseRows(rows []string) ([][]maze.Tile, error) {
	if len(rows) == 0 {
		return nil, errNoRows
	}

	width := len([]rune(rows[0]))
	out := make([][]maze.Tile, len(rows))
	for y, r := range rows {
		runes := []rune(r)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has width %d, expected %d", y, len(runes), width)
		}
		out[y] = make([]maze.Tile, width)
		for x, ch := range runes {
			switch ch {
			case '#':
				out[y][x] = maze.TileWall
			case '.':
				out[y][x] = maze.TilePickup
			case ' ', '_':
				out[y][x] = maze.TileEmpty
			default:
				return nil, fmt.Errorf("row %d col %d: unknown tile %q", y, x, ch)
			}
		}
	}
	return out, nil
}

// ParseYAML decodes one level document into a template.
func ParseYAML(data []byte) (*maze.Template, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	return f.Template()
}

// Template converts the decoded file into a maze template.
func (f *File) Template() (*maze.Template, error) {
	if f.ID == "" {
		return nil, errors.New("missing id")
	}

	rows, err := ParseRows(f.Rows)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", f.ID, err)
	}

	advs := make([]maze.AdversarySpawn, 0, len(f.Adversaries))
	for i, a := range f.Adversaries {
		c := core.ColorRed
		if a.Color != "" {
			var ok bool
			if c, ok = core.ParseColor(a.Color); !ok {
				return nil, fmt.Errorf("level %s: adversary %d: unknown color %q", f.ID, i, a.Color)
			}
		}
		advs = append(advs, maze.AdversarySpawn{
			Spawn: maze.Spawn{Col: a.Col, Row: a.Row},
			Tier:  max(a.Tier, 1),
			Color: c,
		})
	}

	name := f.Name
	if name == "" {
		name = f.ID
	}

	return maze.NewTemplate(f.ID, name, rows, maze.Spawn{Col: f.Player.Col, Row: f.Player.Row}, advs), nil
}
