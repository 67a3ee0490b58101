package hexcolor

import (
	"fmt"
	"strings"
)

// A ParseError describes a string that could not be parsed as a hex color.
// Input holds the string exactly as it was passed to Parse, without trimming.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("hexcolor: parse %q: not a valid hex color", e.Input)
}

// Parse returns the color described by the hex code s.
//
// Parsing is lenient: surrounding whitespace is trimmed, a single leading '#'
// is optional, and digits are case-insensitive. The digit body may take any
// of four forms: RGB and RGBA shorthands, where each digit doubles into a
// full byte (so "f" becomes 0xFF), and the full RRGGBB and RRGGBBAA forms.
// The alpha channel of the result is present exactly when the input carries
// alpha digits. Any other length, or any non-hex character in the body,
// yields a *ParseError.
func Parse(s string) (Color, error) {
	body := strings.TrimSpace(s)
	if len(body) > 0 && body[0] == '#' {
		body = body[1:]
	}
	var nib [8]uint8
	if len(body) > len(nib) {
		return Color{}, &ParseError{Input: s}
	}
	for i := 0; i < len(body); i++ {
		v, ok := parseNibble(body[i])
		if !ok {
			return Color{}, &ParseError{Input: s}
		}
		nib[i] = v
	}
	switch len(body) {
	case 3:
		return RGB(nib[0]*0x11, nib[1]*0x11, nib[2]*0x11), nil
	case 4:
		return RGBA(nib[0]*0x11, nib[1]*0x11, nib[2]*0x11, nib[3]*0x11), nil
	case 6:
		return RGB(nib[0]<<4|nib[1], nib[2]<<4|nib[3], nib[4]<<4|nib[5]), nil
	case 8:
		return RGBA(nib[0]<<4|nib[1], nib[2]<<4|nib[3], nib[4]<<4|nib[5], nib[6]<<4|nib[7]), nil
	}
	return Color{}, &ParseError{Input: s}
}

func parseNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
