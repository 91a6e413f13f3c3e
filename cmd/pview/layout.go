package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pview/internal/grid"
)

type layoutOptions struct {
	width      int
	height     int
	gutter     int
	jsonOutput bool
}

type layoutJSON struct {
	Items           int  `json:"items"`
	Width           int  `json:"width"`
	Height          int  `json:"height"`
	Gutter          int  `json:"gutter"`
	Rows            int  `json:"rows"`
	Cols            int  `json:"cols"`
	CellSize        int  `json:"cell_size"`
	Capacity        int  `json:"capacity"`
	FootprintWidth  int  `json:"footprint_width"`
	FootprintHeight int  `json:"footprint_height"`
	Fallback        bool `json:"fallback"`
}

// terminalSize is swapped in tests.
var terminalSize = func() (int, int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

func newLayoutCmd(app *appContext) *cobra.Command {
	opts := &layoutOptions{}

	cmd := &cobra.Command{
		Use:   "layout N",
		Short: "Print the grid computed for N swatches",
		Long:  "Print the rows, columns and cell size chosen for N swatches.\nWithout --width/--height the current terminal size in drawing units is used (one unit is one row tall and two columns wide); off a terminal the configured image size is used.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("N must be a non-negative integer, got %q", args[0])
			}
			if opts.gutter < 0 {
				return fmt.Errorf("gutter must be non-negative, got %d", opts.gutter)
			}
			return runLayout(cmd, app, opts, n)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Area width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Area height")
	cmd.Flags().IntVarP(&opts.gutter, "gutter", "g", 0, "Space between adjacent cells")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runLayout(cmd *cobra.Command, app *appContext, opts *layoutOptions, n int) error {
	width, height := opts.width, opts.height
	if width == 0 || height == 0 {
		dw, dh := app.cfg.Image.Width, app.cfg.Image.Height
		if tw, th, ok := terminalSize(); ok {
			dw, dh = tw/2, th-1
		}
		if width == 0 {
			width = dw
		}
		if height == 0 {
			height = dh
		}
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("area must be positive, got %dx%d", width, height)
	}

	res := grid.Fit(n, width, height, opts.gutter)
	fw, fh := res.Footprint(opts.gutter)
	app.log.WithFields(map[string]any{"items": n, "width": width, "height": height, "rows": res.Rows, "cols": res.Cols, "cell": res.CellSize}).Debug("layout computed")

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(layoutJSON{
			Items:           n,
			Width:           width,
			Height:          height,
			Gutter:          opts.gutter,
			Rows:            res.Rows,
			Cols:            res.Cols,
			CellSize:        res.CellSize,
			Capacity:        res.Capacity(),
			FootprintWidth:  fw,
			FootprintHeight: fh,
			Fallback:        res.Fallback,
		})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "items:\t%d\n", n)
	fmt.Fprintf(writer, "area:\t%dx%d (gutter %d)\n", width, height, opts.gutter)
	fmt.Fprintf(writer, "grid:\t%d rows x %d cols\n", res.Rows, res.Cols)
	fmt.Fprintf(writer, "cell:\t%d\n", res.CellSize)
	fmt.Fprintf(writer, "footprint:\t%dx%d\n", fw, fh)
	if res.Fallback {
		fmt.Fprintln(writer, "note:\tcells cannot carry the gutter; direct fallback used")
	}
	return writer.Flush()
}
