// Command dump_atlas prints the contents of an atlas file written by create.
//
// Usage:
//
//	dump_atlas [-texture file.dds] <atlasfile>
//
// With -texture the DDS texture is read as well and every glyph box is
// checked against its size.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/gogpu/fontatlas"
	"github.com/gogpu/fontatlas/dds"
)

const usage = "Usage:  dump_atlas [-texture file.dds] <atlasfile>"

// fixedColumns approximates the width of a glyph line without its name.
const fixedColumns = 72

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run prints the atlas named in args to stdout.
func run(args []string, stdout io.Writer) (err error) {
	fs := flag.NewFlagSet("dump_atlas", flag.ContinueOnError)
	fs.SetOutput(stdout)
	texture := fs.String("texture", "", "DDS texture to check against the atlas")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stdout, usage)
		return nil
	}

	atlas, err := fontatlas.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to read atlas: %w", err)
	}

	w := bufio.NewWriter(stdout)
	defer func() {
		if ferr := w.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("failed to write output: %w", ferr)
		}
	}()

	if err := atlas.Dump(w, fontatlas.WithNameWidth(nameWidth(stdout))); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if *texture != "" {
		if err := checkTexture(w, atlas, *texture); err != nil {
			return fmt.Errorf("failed to check texture: %w", err)
		}
	}
	return nil
}

// nameWidth returns how many runes of each glyph name fit on the terminal,
// or 0 when stdout is not a terminal.
func nameWidth(stdout io.Writer) int {
	f, ok := stdout.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return max(width-fixedColumns, 16)
}

func checkTexture(w *bufio.Writer, atlas *fontatlas.FontAtlas, path string) error {
	img, err := dds.ReadFile(path)
	if err != nil {
		return err
	}
	info := dds.Describe(img)
	fmt.Fprintf(w, "\ntexture:  %s %dx%d %v\n", path, info.Width, info.Height, info.Format)

	width, height := float32(info.Width), float32(info.Height)
	outside := 0
	for _, r := range atlas.Runes() {
		b := atlas.Map[r].InnerBoundingBox
		if b.X < 0 || b.Y < 0 || b.X+b.W > width || b.Y+b.H > height {
			fmt.Fprintf(w, "U+%04X box %+v lies outside the texture\n", r, b)
			outside++
		}
	}
	fmt.Fprintf(w, "%d of %d glyph boxes inside the texture\n", len(atlas.Map)-outside, len(atlas.Map))
	return nil
}
