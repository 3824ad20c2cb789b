package fontatlas

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/unicode/runenames"
)

// DumpOption configures Dump.
type DumpOption func(*dumpOptions)

type dumpOptions struct {
	nameWidth int
}

// WithNameWidth truncates Unicode character names to n runes.
// Values <= 0 disable truncation.
func WithNameWidth(n int) DumpOption {
	return func(o *dumpOptions) {
		o.nameWidth = n
	}
}

// Dump writes a readable listing of a: the header fields, then one line
// per glyph in codepoint order with its placement and Unicode name.
func (a *FontAtlas) Dump(w io.Writer, opts ...DumpOption) error {
	var o dumpOptions
	for _, opt := range opts {
		opt(&o)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "font_name:\t%s\n", a.FontName)
	fmt.Fprintf(tw, "line_height:\t%g\n", a.LineHeight)
	fmt.Fprintf(tw, "fontsize:\t%g\n", a.FontSize)
	fmt.Fprintf(tw, "margin:\t%g\n", a.Margin)
	fmt.Fprintf(tw, "glyphs:\t%d\n", len(a.Map))
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(a.Map) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "code\tchar\tx\ty\tw\th\tpre\tpost\theight\t\tname")
	for _, r := range a.Runes() {
		c := a.Map[r]
		b := c.InnerBoundingBox
		fmt.Fprintf(tw, "U+%04X\t%q\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t\t%s\n",
			r, r, b.X, b.Y, b.W, b.H,
			c.PreDrawAdvance, c.PostDrawAdvance, c.HeightOffset,
			truncate(runeName(r), o.nameWidth))
	}
	return tw.Flush()
}

// runeName returns the Unicode name of r, or "<unnamed>" if it has none.
func runeName(r rune) string {
	if name := runenames.Name(r); name != "" {
		return name
	}
	return "<unnamed>"
}

func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
