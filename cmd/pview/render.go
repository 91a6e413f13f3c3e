package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pview/internal/render"
)

type renderOptions struct {
	out    string
	index  int
	width  int
	height int
	font   string
}

func newRenderCmd(app *appContext) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [palette files or directories...]",
		Short: "Render one palette to a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "palette.png", "Output PNG path")
	cmd.Flags().IntVarP(&opts.index, "index", "i", 0, "Catalog position of the palette to render")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Image width in pixels (default: image.width)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Image height in pixels (default: image.height)")
	cmd.Flags().StringVar(&opts.font, "font", "", "TrueType or OpenType font file (default: image.font, then Go Regular)")

	return cmd
}

func runRender(cmd *cobra.Command, app *appContext, opts *renderOptions, args []string) error {
	img := app.cfg.Image
	if opts.width > 0 {
		img.Width = opts.width
	}
	if opts.height > 0 {
		img.Height = opts.height
	}
	if opts.font != "" {
		img.Font = opts.font
	}
	if img.Width-2*img.Margin <= 0 || img.Height-img.Margin-img.BottomMargin <= 0 {
		return fmt.Errorf("image %dx%d is too small for its margins", img.Width, img.Height)
	}

	s, err := app.openSession(args)
	if err != nil {
		return err
	}
	if opts.index != 0 {
		if err := s.Jump(opts.index); err != nil {
			return err
		}
	}

	frame, err := render.Frame(s, render.Options{
		Width:    img.Width,
		Height:   img.Height,
		Spacing:  imageSpacing(img),
		FontPath: img.Font,
	})
	if err != nil {
		return err
	}

	if err := render.SavePNG(opts.out, frame); err != nil {
		return newCommandError("render", "writing "+opts.out, err, "Check that the output directory exists and is writable.")
	}

	p := s.Palette()
	app.log.WithFields(map[string]any{"out": opts.out, "palette": s.Entry().Name, "colors": p.Len()}).Info("palette rendered")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d colors, %dx%d)\n", opts.out, s.Entry().Name, p.Len(), img.Width, img.Height)
	return nil
}
