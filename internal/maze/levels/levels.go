// Package levels loads maze templates, either the bundled set embedded in
// the binary or YAML files from a directory.
package levels

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

//go:embed data/*.yaml
var bundledFS embed.FS

// Bundled returns the built-in levels in ID order. A malformed embedded
// level is a build defect and panics.
func Bundled() []*maze.Template {
	entries, err := bundledFS.ReadDir("data")
	if err != nil {
		panic(fmt.Sprintf("levels: reading bundled levels: %v", err))
	}

	out := make([]*maze.Template, 0, len(entries))
	for _, e := range entries {
		data, err := bundledFS.ReadFile("data/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("levels: reading %s: %v", e.Name(), err))
		}
		tpl, err := ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("levels: parsing %s: %v", e.Name(), err))
		}
		out = append(out, tpl)
	}

	sortByID(out)
	return out
}

// Load returns the templates in dir, or the bundled set when dir is empty.
func Load(dir string, logger *log.Logger) ([]*maze.Template, error) {
	if dir == "" {
		return Bundled(), nil
	}
	tpls, err := NewLoader(dir, logger).LoadAll()
	if err != nil {
		return nil, err
	}
	if len(tpls) == 0 {
		return nil, fmt.Errorf("levels: no levels found in %s", dir)
	}
	return tpls, nil
}

// Loader reads level files from a directory tree.
type Loader struct {
	Root string
	log  *log.Logger
}

// NewLoader creates a loader rooted at root. Skipped files are reported
// to logger, which may be nil.
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{Root: root, log: logger}
}

// LoadAll walks Root and loads every .yaml/.yml file, sorted by ID.
// Files that fail to parse are skipped.
func (l *Loader) LoadAll() ([]*maze.Template, error) {
	var out []*maze.Template

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		tpl, err := l.LoadFile(path)
		if err != nil {
			l.log.Warn("skipping level", "path", path, "err", err)
			return nil
		}
		out = append(out, tpl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sortByID(out)
	return out, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (*maze.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading %s: %w", path, err)
	}
	tpl, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("levels: parsing %s: %w", path, err)
	}
	return tpl, nil
}

func sortByID(tpls []*maze.Template) {
	sort.SliceStable(tpls, func(i, j int) bool {
		return tpls[i].ID < tpls[j].ID
	})
}
