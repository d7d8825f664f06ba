package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slotgrid/pkg/pipeline"
	"github.com/matzehuels/slotgrid/pkg/render/sink"
)

type previewOptions struct {
	cols, rows int
	color      bool
	theme      string
}

// previewCommand creates the preview command that draws the layout as text.
func (c *CLI) previewCommand() *cobra.Command {
	var po previewOptions
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview <document|preset:NAME>",
		Short: "Draw a grid layout in the terminal",
		Long: `Draw a grid layout in the terminal.

The layout is computed for the document's container (or --width/--height)
and then scaled onto a cols×rows character canvas, which defaults to the
terminal size. The spanning slot is drawn with a double border.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			return c.runPreview(cmd.Context(), opts, po)
		},
	}

	cols, rows := terminalSize()
	cmd.Flags().IntVar(&po.cols, "cols", cols, "canvas width in characters")
	cmd.Flags().IntVar(&po.rows, "rows", rows-1, "canvas height in characters")
	cmd.Flags().BoolVar(&po.color, "color", false, "color borders and labels")
	cmd.Flags().StringVar(&po.theme, "theme", "", "color theme used with --color")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "container width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "container height in pixels")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options, po previewOptions) error {
	if err := pipeline.ValidateTheme(po.theme); err != nil {
		return err
	}

	runner := c.newRunner()
	doc, err := runner.Load(ctx, opts.Source)
	if err != nil {
		return err
	}
	_, frame, err := runner.Layout(ctx, doc, opts)
	if err != nil {
		return err
	}

	textOpts := []sink.TextOption{sink.WithCells(po.cols, po.rows)}
	if po.color {
		if po.theme == "" {
			po.theme = doc.Theme
		}
		theme, _ := sink.LookupTheme(po.theme)
		textOpts = append(textOpts, sink.WithTextTheme(theme))
	}
	_, err = c.Out.Write(sink.RenderText(frame, textOpts...))
	return err
}
