// Package asset loads the sprite sheet the renderers draw from.
//
// Sprites are small ASCII masks. An optional first line "# color=<code>"
// sets the default color code; each following line is a row where '.' or
// ' ' is transparent, '#' uses the default color and any other byte is a
// color code interpreted by the renderer.
package asset

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed sprites/*.txt
var embedded embed.FS

// ErrResourceMissing is returned when a required asset cannot be loaded.
// The game cannot render without its assets, so callers treat it as fatal.
var ErrResourceMissing = errors.New("resource missing")

// Required lists the sprites every renderer needs.
var Required = []string{
	"spaceship",
	"asteroid",
	"point",
	"shield",
	"life",
	"rapid_fire",
	"bullet",
}

// aliases maps derived sprites to the sprite they reuse, scaled to their bounds.
var aliases = map[string]string{
	"boss_asteroid": "asteroid",
}

// Sprite is a parsed mask.
type Sprite struct {
	Name  string
	Color byte // Default color code for '#'
	Rows  []string
	W, H  int
}

// At samples the mask at normalized coordinates u, v in [0, 1).
// Returns 0 for transparent cells.
func (s *Sprite) At(u, v float64) byte {
	if s.W == 0 || s.H == 0 || u < 0 || v < 0 || u >= 1 || v >= 1 {
		return 0
	}
	row := s.Rows[int(v*float64(s.H))]
	col := int(u * float64(s.W))
	if col >= len(row) {
		return 0
	}
	switch b := row[col]; b {
	case '.', ' ':
		return 0
	case '#':
		return s.Color
	default:
		return b
	}
}

// Sheet is a named collection of sprites.
type Sheet struct {
	sprites map[string]*Sprite
}

// Sprite returns the named sprite, resolving aliases.
func (sh *Sheet) Sprite(name string) (*Sprite, bool) {
	if target, ok := aliases[name]; ok {
		name = target
	}
	s, ok := sh.sprites[name]
	return s, ok
}

// Len returns the number of loaded sprites.
func (sh *Sheet) Len() int {
	return len(sh.sprites)
}

// LoadDefault loads the embedded sprite set.
func LoadDefault() (*Sheet, error) {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		return nil, err
	}
	return Load(sub, Required...)
}

// Load reads "<name>.txt" for every name from fsys.
// A missing or empty sprite yields an error wrapping ErrResourceMissing.
func Load(fsys fs.FS, names ...string) (*Sheet, error) {
	sheet := &Sheet{sprites: make(map[string]*Sprite, len(names))}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Clean(name+".txt"))
		if err != nil {
			return nil, fmt.Errorf("%w: sprite %q: %v", ErrResourceMissing, name, err)
		}
		s, err := Parse(name, data)
		if err != nil {
			return nil, err
		}
		sheet.sprites[name] = s
	}
	return sheet, nil
}

// Parse builds a sprite from mask text.
func Parse(name string, data []byte) (*Sprite, error) {
	s := &Sprite{Name: name, Color: 'w'}
	sc := bufio.NewScanner(bytes.NewReader(data))
	first := true
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if first && strings.HasPrefix(line, "#") && strings.Contains(line, "color=") {
			code := strings.TrimSpace(line[strings.Index(line, "color=")+len("color="):])
			if code != "" {
				s.Color = code[0]
			}
			first = false
			continue
		}
		first = false
		if line == "" {
			continue
		}
		s.Rows = append(s.Rows, line)
		if len(line) > s.W {
			s.W = len(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse sprite %q: %w", name, err)
	}
	s.H = len(s.Rows)
	if s.H == 0 {
		return nil, fmt.Errorf("%w: sprite %q is empty", ErrResourceMissing, name)
	}
	return s, nil
}
