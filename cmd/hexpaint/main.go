// Command hexpaint prints, names, and mixes hex colors on the terminal.
//
// Colors may be given as hex codes in any form accepted by hexcolor.Parse,
// or as names from the user's palette.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/dpinela/hexcolor"
	"github.com/dpinela/hexcolor/internal/termesc"
	"github.com/dpinela/hexcolor/palette"
)

const usage = `usage: hexpaint <color>...
       hexpaint -list
       hexpaint -mix <add|sub> <color> <color>
       hexpaint -scale <mul|div> <color> <n>
       hexpaint -random [count]`

var stdoutIsTerminal = terminal.IsTerminal(int(os.Stdout.Fd()))

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	pal, err := palette.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexpaint:", err)
	}
	switch os.Args[1] {
	case "-list":
		listPalette(pal)
	case "-mix":
		mixColors(pal, os.Args[2:])
	case "-scale":
		scaleColor(pal, os.Args[2:])
	case "-random":
		randomColors(os.Args[2:])
	default:
		for _, arg := range os.Args[1:] {
			c, err := resolve(pal, arg)
			if err != nil {
				fmt.Fprintln(os.Stderr, "hexpaint:", err)
				os.Exit(1)
			}
			printColor(c)
		}
	}
}

// resolve interprets s as a palette name first and a hex code second;
// a palette entry named like a valid hex code shadows it.
func resolve(pal *palette.Palette, s string) (hexcolor.Color, error) {
	if c, ok := pal.Lookup(s); ok {
		return c, nil
	}
	return hexcolor.Parse(s)
}

func swatch(c hexcolor.Color) string {
	if !stdoutIsTerminal {
		return ""
	}
	return termesc.SetGraphicAttributes(termesc.OutputColorBackground(c)) + "   " +
		termesc.SetGraphicAttributes(termesc.StyleNone) + " "
}

func printColor(c hexcolor.Color) {
	fmt.Println(swatch(c) + c.String())
}

func listPalette(pal *palette.Palette) {
	names := pal.Names()
	w := 0
	for _, name := range names {
		if n := runewidth.StringWidth(name); n > w {
			w = n
		}
	}
	for _, name := range names {
		c, _ := pal.Lookup(name)
		fmt.Println(swatch(c) + pad(name, w) + "  " + c.String())
	}
}

func pad(s string, w int) string {
	for n := runewidth.StringWidth(s); n < w; n++ {
		s += " "
	}
	return s
}

func mixColors(pal *palette.Palette, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	a := mustResolve(pal, args[1])
	b := mustResolve(pal, args[2])
	switch args[0] {
	case "add":
		printColor(hexcolor.Add(a, b))
	case "sub":
		printColor(hexcolor.Sub(a, b))
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func scaleColor(pal *palette.Palette, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	c := mustResolve(pal, args[1])
	n, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexpaint:", err)
		os.Exit(2)
	}
	switch args[0] {
	case "mul":
		printColor(hexcolor.MulScalar(c, n))
	case "div":
		d, err := hexcolor.DivScalar(c, n)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hexpaint:", err)
			os.Exit(1)
		}
		printColor(d)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

func randomColors(args []string) {
	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		count = n
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < count; i++ {
		printColor(hexcolor.Random(rng))
	}
}

func mustResolve(pal *palette.Palette, s string) hexcolor.Color {
	c, err := resolve(pal, s)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hexpaint:", err)
		os.Exit(1)
	}
	return c
}
