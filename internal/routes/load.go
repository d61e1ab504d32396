package routes

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed routes.yaml
var defaultTable []byte

// LoadDefault builds the table compiled into the binary.
func LoadDefault() (*Table, error) {
	return Load(defaultTable)
}

// LoadFile builds a table from a YAML file on disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route table %s: %w", path, err)
	}
	return Load(data)
}

// Load decodes and validates a YAML route table.
func Load(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeRouteTable, err)
	}
	return newTable(f.Routes, f.Keywords)
}

func newTable(entries []RouteEntry, keywords []KeywordRoute) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{
		routes:   make([]RouteEntry, 0, len(entries)),
		byPath:   make(map[string]int, len(entries)),
		keywords: make([]KeywordRoute, 0, len(keywords)),
	}

	for _, e := range entries {
		e.Path = strings.TrimSpace(e.Path)
		if e.Path == "" {
			return nil, ErrEmptyPath
		}
		if _, dup := t.byPath[e.Path]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, e.Path)
		}
		e.AllowedRoles = append(e.AllowedRoles[:0:0], e.AllowedRoles...)
		t.byPath[e.Path] = len(t.routes)
		t.routes = append(t.routes, e)
	}

	for i, k := range keywords {
		k.Phrase = strings.ToLower(strings.TrimSpace(k.Phrase))
		if k.Phrase == "" {
			return nil, fmt.Errorf("%w: keyword #%d", ErrEmptyPhrase, i)
		}
		if _, ok := t.byPath[k.Path]; !ok {
			return nil, fmt.Errorf("%w: %q -> %s", ErrUnknownTarget, k.Phrase, k.Path)
		}
		for _, prev := range t.keywords {
			if strings.Contains(k.Phrase, prev.Phrase) {
				return nil, fmt.Errorf("%w: %q contains %q", ErrShadowedPhrase, k.Phrase, prev.Phrase)
			}
		}
		t.keywords = append(t.keywords, k)
	}

	return t, nil
}
