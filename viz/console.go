package viz

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/sorted/rbtree"
	"golang.org/x/term"
)

// Palette maps node colors to terminal colors. Clients may replace
// entries before calling Dump, e.g. to adapt to a light background.
type Palette struct {
	Red   *color.Color
	Black *color.Color
}

// DefaultPalette is used by Dump when no palette is given.
var DefaultPalette = Palette{
	Red:   color.New(color.FgRed, color.Bold),
	Black: color.New(color.FgWhite),
}

// Dump renders the tree sideways onto w, one node per line, the root at
// the left margin and deeper nodes indented further right. Red nodes are
// printed in red when w supports colors. Reading the output top to
// bottom walks the keys in descending order.
func Dump[K cmp.Ordered, V any](w io.Writer, t *rbtree.Tree[K, V]) {
	DumpPalette(w, t, DefaultPalette)
}

// DumpPalette is Dump with an explicit palette.
func DumpPalette[K cmp.Ordered, V any](w io.Writer, t *rbtree.Tree[K, V], palette Palette) {
	if t.IsEmpty() {
		fmt.Fprintln(w, "·")
		return
	}
	width := lineWidth(w)
	for info := range t.Structure() {
		line := strings.Repeat("    ", info.Depth) + fmt.Sprintf("%v", info.Key)
		if len(line) > width {
			line = line[:width-1] + "…"
		}
		c := palette.Black
		if info.Red {
			c = palette.Red
		}
		if c != nil {
			c.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}
}

// lineWidth determines the usable line length for w. If w is an
// interactive terminal its current width is used, clamped to sane
// bounds; otherwise a default of 80 applies.
func lineWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width > 120 {
		return 120
	}
	if width < 20 {
		return 20
	}
	return width
}
