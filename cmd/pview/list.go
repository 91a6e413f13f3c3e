package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pview/internal/catalog"
	"github.com/alexisbeaulieu97/pview/internal/palette"
)

type listOptions struct {
	jsonOutput bool
}

type listJSONPalette struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	Colors    int    `json:"colors"`
	Truncated bool   `json:"truncated,omitempty"`
	Skipped   int    `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

type listJSONPayload struct {
	Count    int               `json:"count"`
	Palettes []listJSONPalette `json:"palettes"`
}

func newListCmd(app *appContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list [palette files or directories...]",
		Short: "List the palettes the viewer would cycle through",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *appContext, opts *listOptions, args []string) error {
	cat, err := catalog.Resolve(args, app.catalogOptions())
	if err != nil {
		return newCommandError("list", "resolving palette sources", err, "Pass palette files or directories, or set palette_dir in your configuration.")
	}

	store := palette.NewStore(palette.ParseOptions{Strict: app.cfg.Strict}, app.log)
	rows := make([]listJSONPalette, cat.Len())
	for i, entry := range cat.Entries() {
		rows[i] = listJSONPalette{Index: i, Name: entry.Name, Path: entry.ID}
		p, err := store.Load(entry.ID)
		if err != nil {
			rows[i].Error = err.Error()
			continue
		}
		rows[i].Colors = p.Len()
		rows[i].Truncated = p.Truncated()
		rows[i].Skipped = len(p.Skipped())
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(listJSONPayload{Count: len(rows), Palettes: rows})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "#\tNAME\tCOLORS\tNOTES\tPATH")
	for _, r := range rows {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\t%s\n", r.Index, r.Name, colorCount(r), notes(r), r.Path)
	}
	return writer.Flush()
}

func colorCount(r listJSONPalette) string {
	if r.Error != "" {
		return "-"
	}
	return fmt.Sprintf("%d", r.Colors)
}

func notes(r listJSONPalette) string {
	switch {
	case r.Error != "":
		return "unreadable"
	case r.Truncated && r.Skipped > 0:
		return fmt.Sprintf("truncated, %d skipped", r.Skipped)
	case r.Truncated:
		return "truncated"
	case r.Skipped > 0:
		return fmt.Sprintf("%d skipped", r.Skipped)
	default:
		return "-"
	}
}
