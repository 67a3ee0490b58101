package termesc

import (
	"testing"

	"github.com/dpinela/hexcolor"
)

func TestSetGraphicAttributes(t *testing.T) {
	tests := []struct {
		attrs []GraphicAttribute
		want  string
	}{
		{nil, "\033[m"},
		{[]GraphicAttribute{StyleNone}, "\033[0m"},
		{[]GraphicAttribute{StyleBold, StyleUnderline}, "\033[1;4m"},
		{[]GraphicAttribute{OutputColor(hexcolor.RGB(255, 0, 127))}, "\033[38;2;255;0;127m"},
		{[]GraphicAttribute{OutputColorBackground(hexcolor.RGB(0, 200, 0)), StyleItalic}, "\033[48;2;0;200;0;3m"},
		{[]GraphicAttribute{OutputColor(hexcolor.RGBA(1, 2, 3, 4))}, "\033[38;2;1;2;3m"},
	}
	for _, tt := range tests {
		if got := SetGraphicAttributes(tt.attrs...); got != tt.want {
			t.Errorf("SetGraphicAttributes(%v) = %q, want %q", tt.attrs, got, tt.want)
		}
	}
}
