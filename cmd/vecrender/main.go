// Command vecrender draws <text> markup fragments and path data
// to PNG or PDF files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"

	"github.com/benoitkugler/vecdoc/graphics"
	"github.com/benoitkugler/vecdoc/markup"
	"github.com/benoitkugler/vecdoc/pdf"
	"github.com/benoitkugler/vecdoc/raster"
)

// Text draws a <text> element read from a file.
type Text struct {
	Width   float64 `short:"W" default:"300" desc:"Page width"`
	Height  float64 `short:"H" default:"100" desc:"Page height"`
	Font    string  `short:"f" default:"Georgia" desc:"Ambient font family"`
	Size    float64 `default:"16" desc:"Ambient font size"`
	Scale   float64 `short:"s" default:"1" desc:"Pixels per unit, for PNG output"`
	Opaque  bool    `desc:"Draw PNG output on an opaque black background"`
	Strict  bool    `desc:"Fail on unsupported markup"`
	Verbose bool    `short:"v" desc:"Log skipped draws"`
	Output  string  `short:"o" desc:"Output file, .png or .pdf"`
	Input   string  `index:"0" desc:"Input file"`
}

// Path draws SVG path data.
type Path struct {
	Width   float64 `short:"W" default:"100" desc:"Page width"`
	Height  float64 `short:"H" default:"100" desc:"Page height"`
	Fill    string  `default:"black" desc:"Fill color"`
	Stroke  string  `default:"none" desc:"Stroke color"`
	Line    float64 `short:"l" default:"1" desc:"Stroke width"`
	EvenOdd bool    `desc:"Use the even-odd fill rule"`
	Scale   float64 `short:"s" default:"1" desc:"Pixels per unit, for PNG output"`
	Opaque  bool    `desc:"Draw PNG output on an opaque black background"`
	Verbose bool    `short:"v" desc:"Log skipped draws"`
	Output  string  `short:"o" desc:"Output file, .png or .pdf"`
	Data    string  `index:"0" desc:"Path data"`
}

// output gathers the settings shared by the commands.
type output struct {
	scale   float64
	opaque  bool
	verbose bool
	path    string
}

func main() {
	root := argp.NewCmd(&Text{}, "Vector document renderer")
	root.AddCmd(&Path{}, "path", "Render path data")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Text) Run() error {
	if cmd.Input == "" || cmd.Output == "" {
		return argp.ShowUsage
	}
	o := output{cmd.Scale, cmd.Opaque, cmd.Verbose, cmd.Output}
	o.setupLogger()

	node, err := markup.ParseFile(cmd.Input)
	if err != nil {
		return err
	}
	opts := []markup.Option{markup.WithAmbientFont(graphics.NewFont(cmd.Font, cmd.Size))}
	if cmd.Strict {
		opts = append(opts, markup.WithErrorMode(markup.StrictErrorMode))
	}
	text, err := markup.ReadText(node, opts...)
	if err != nil {
		return err
	}
	return o.render(text, graphics.Size{Width: cmd.Width, Height: cmd.Height})
}

func (cmd *Path) Run() error {
	if cmd.Data == "" || cmd.Output == "" {
		return argp.ShowUsage
	}
	o := output{cmd.Scale, cmd.Opaque, cmd.Verbose, cmd.Output}
	o.setupLogger()

	ops, err := markup.ParsePathData(cmd.Data)
	if err != nil {
		return err
	}
	elem := &graphics.PathElement{Ops: ops}
	if c, ok, err := markup.ParseColor(cmd.Fill); err != nil {
		return err
	} else if ok {
		brush := graphics.NewSolidBrush(c)
		if cmd.EvenOdd {
			brush.FillMode = graphics.EvenOdd
		}
		elem.Brush = brush
	}
	if c, ok, err := markup.ParseColor(cmd.Stroke); err != nil {
		return err
	} else if ok {
		elem.Pen = graphics.NewPen(c, cmd.Line)
	}
	return o.render(elem, graphics.Size{Width: cmd.Width, Height: cmd.Height})
}

func (o output) setupLogger() {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func (o output) render(elem graphics.Element, size graphics.Size) error {
	switch ext := strings.ToLower(filepath.Ext(o.path)); ext {
	case ".png":
		pl, err := raster.NewPlatform()
		if err != nil {
			return err
		}
		cv := pl.NewCanvas(size, o.scale, !o.opaque)
		if err := graphics.Draw(cv, elem); err != nil {
			return err
		}
		return raster.NewImage(cv.RGBA(), o.scale).SavePNGFile(o.path)
	case ".pdf":
		cv := pdf.NewCanvas(size)
		if err := graphics.Draw(cv, elem); err != nil {
			return err
		}
		return cv.WriteFile(o.path)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
