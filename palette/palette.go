// Package palette maps human-readable names to colors and styles, optionally
// loaded from a per-user TOML palette file.
package palette

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/tajtiattila/basedir"

	"github.com/dpinela/hexcolor"
)

// A Style describes how to render text in a terminal.
// A nil color leaves the terminal's default for that ground in effect.
type Style struct {
	Foreground, Background  *hexcolor.Color
	Bold, Italic, Underline bool
}

// A Palette maps names to colors and styles. Names are stored and looked up
// case-insensitively.
type Palette struct {
	Colors map[string]hexcolor.Color
	Styles map[string]Style
}

// Default returns a palette containing the 16 basic CSS color names and no
// styles.
func Default() *Palette {
	return &Palette{
		Colors: map[string]hexcolor.Color{
			"black":   hexcolor.RGB(0x00, 0x00, 0x00),
			"silver":  hexcolor.RGB(0xC0, 0xC0, 0xC0),
			"gray":    hexcolor.RGB(0x80, 0x80, 0x80),
			"white":   hexcolor.RGB(0xFF, 0xFF, 0xFF),
			"maroon":  hexcolor.RGB(0x80, 0x00, 0x00),
			"red":     hexcolor.RGB(0xFF, 0x00, 0x00),
			"purple":  hexcolor.RGB(0x80, 0x00, 0x80),
			"fuchsia": hexcolor.RGB(0xFF, 0x00, 0xFF),
			"green":   hexcolor.RGB(0x00, 0x80, 0x00),
			"lime":    hexcolor.RGB(0x00, 0xFF, 0x00),
			"olive":   hexcolor.RGB(0x80, 0x80, 0x00),
			"yellow":  hexcolor.RGB(0xFF, 0xFF, 0x00),
			"navy":    hexcolor.RGB(0x00, 0x00, 0x80),
			"blue":    hexcolor.RGB(0x00, 0x00, 0xFF),
			"teal":    hexcolor.RGB(0x00, 0x80, 0x80),
			"aqua":    hexcolor.RGB(0x00, 0xFF, 0xFF),
		},
		Styles: map[string]Style{},
	}
}

// DecodeFile reads the TOML palette file at path and merges its entries over
// the default palette; entries in the file shadow defaults of the same name.
// It always returns a usable *Palette, even if it also returns a non-nil
// error.
func DecodeFile(path string) (*Palette, error) {
	p := Default()
	var raw struct {
		Colors map[string]hexcolor.Color
		Styles map[string]Style
	}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return p, errors.WithMessage(err, "palette: decode "+path+" failed")
	}
	for name, c := range raw.Colors {
		p.Colors[strings.ToLower(name)] = c
	}
	for name, s := range raw.Styles {
		p.Styles[strings.ToLower(name)] = s
	}
	return p, nil
}

// Load finds and reads the current user's palette file, expected at
// hexpaint/palette.toml in the XDG configuration directory. A missing file is
// not an error; the default palette applies. Like DecodeFile, it always
// returns a usable *Palette.
func Load() (*Palette, error) {
	dir, err := basedir.Config.EnsureDir("hexpaint", 0700)
	if err != nil {
		return Default(), errors.WithMessage(err, "palette: load failed")
	}
	path := filepath.Join(dir, "palette.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return DecodeFile(path)
}

// Lookup returns the color registered under name, case-insensitively.
func (p *Palette) Lookup(name string) (hexcolor.Color, bool) {
	c, ok := p.Colors[strings.ToLower(name)]
	return c, ok
}

// Names returns the palette's color names in lexicographic order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.Colors))
	for name := range p.Colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
