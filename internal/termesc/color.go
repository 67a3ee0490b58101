// Package termesc builds ANSI escape sequences for styled terminal output.
package termesc

import (
	"strconv"

	"github.com/dpinela/hexcolor"
)

const csi = "\033["

type GraphicFlag int

// Constants for non-color graphic attributes.
const (
	StyleNone      GraphicFlag = 0
	StyleBold      GraphicFlag = 1
	StyleItalic    GraphicFlag = 3
	StyleUnderline GraphicFlag = 4
)

func (c GraphicFlag) forEachSGRCode(f func(int)) { f(int(c)) }

// An OutputColor sets the foreground to an arbitrary 24-bit color.
// An alpha channel on the color, if any, is ignored; terminals have no
// notion of translucent text.
type OutputColor hexcolor.Color

func (c OutputColor) forEachSGRCode(f func(int)) {
	f(38)
	f(2)
	f(int(c.R))
	f(int(c.G))
	f(int(c.B))
}

// An OutputColorBackground sets the background to an arbitrary 24-bit color.
type OutputColorBackground hexcolor.Color

func (c OutputColorBackground) forEachSGRCode(f func(int)) {
	f(48)
	f(2)
	f(int(c.R))
	f(int(c.G))
	f(int(c.B))
}

type GraphicAttribute interface {
	forEachSGRCode(func(int))
}

// SetGraphicAttributes returns an escape sequence which applies the given
// graphic attributes in order.
func SetGraphicAttributes(attrs ...GraphicAttribute) string {
	b := make([]byte, len(csi), 64)
	copy(b, csi)
	for _, attr := range attrs {
		attr.forEachSGRCode(func(x int) {
			if len(b) > len(csi) {
				b = append(b, ';')
			}
			b = strconv.AppendInt(b, int64(x), 10)
		})
	}
	return string(append(b, 'm'))
}
