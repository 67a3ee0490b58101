// Package hexcolor implements parsing, formatting, and arithmetic on
// 8-bit-per-channel RGB colors with an optional alpha channel.
package hexcolor

import "fmt"

// A Color is an 8-bit-per-channel RGB color with an optional alpha channel.
// The zero value is black with no alpha channel.
//
// Colors are plain values: they compare with == and may be used as map keys.
// An absent alpha channel means "no alpha information", not "fully opaque";
// RGB(0, 0, 0) and RGBA(0, 0, 0, 255) are distinct colors.
type Color struct {
	R, G, B uint8
	A       Alpha
}

// An Alpha is an alpha channel that may be absent.
// When Valid is false the channel is absent and Value carries no information.
type Alpha struct {
	Value uint8
	Valid bool
}

// RGB returns the color with the given red, green, and blue channels and no
// alpha channel.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// RGBA returns the color with the given red, green, blue, and alpha channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: Alpha{Value: a, Valid: true}}
}

// Compare orders colors lexicographically by red, green, blue, and alpha
// channel. A color without an alpha channel sorts before any color with one.
// It returns -1 if c sorts before d, +1 if d sorts before c, and 0 if c == d.
func (c Color) Compare(d Color) int {
	if c.R != d.R {
		return sign(int(c.R) - int(d.R))
	}
	if c.G != d.G {
		return sign(int(c.G) - int(d.G))
	}
	if c.B != d.B {
		return sign(int(c.B) - int(d.B))
	}
	switch {
	case c.A.Valid == d.A.Valid:
		if !c.A.Valid {
			return 0
		}
		return sign(int(c.A.Value) - int(d.A.Value))
	case c.A.Valid:
		return 1
	}
	return -1
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// String returns the canonical hex code for c: a '#' followed by two
// uppercase hex digits per channel, with alpha digits only when the alpha
// channel is present. The shorthand of the string c was parsed from, if any,
// is not preserved.
func (c Color) String() string {
	if c.A.Valid {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A.Value)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
