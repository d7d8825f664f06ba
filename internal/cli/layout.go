package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/pipeline"
)

// layoutCommand creates the layout command that renders a grid document to files.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		formats string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout <document|preset:NAME>",
		Short: "Lay out a grid document and render it",
		Long: `Lay out a grid document and render it.

The source is a TOML, YAML or JSON grid document, or preset:NAME for a
built-in preset (see 'slotgrid presets'). Each requested format is written
to <output>.<format>; with a single format, -o names the file directly and
"-o -" writes to stdout.

Width and height override the container size named by the document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			opts.Formats = pipeline.ParseFormats(formats)
			return c.runLayout(cmd.Context(), opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or base name (default: source name)")
	cmd.Flags().StringVarP(&formats, "format", "f", pipeline.FormatSVG, "comma-separated formats: svg, png, json, txt")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "container width in pixels")
	cmd.Flags().IntVar(&opts.Height, "height", 0, "container height in pixels")
	cmd.Flags().StringVar(&opts.Theme, "theme", "", "color theme: light (default), dark")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().IntVar(&opts.Thumb, "thumb", 0, "shrink PNG output to fit this many pixels per side")

	return cmd
}

// runLayout executes the pipeline and writes every artifact.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string) error {
	prog := newProgress(c.Logger)
	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done("Layout complete")

	if output == "-" {
		if len(opts.Formats) != 1 {
			return errors.New(errors.ErrCodeInvalidInput, "-o - needs exactly one format, got %d", len(opts.Formats))
		}
		_, err := c.Out.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths, err := outputPaths(opts.Source, output, opts.Formats)
	if err != nil {
		return err
	}

	printSuccess(c.Out, "Laid out %s", opts.Source)
	for _, format := range opts.Formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(c.Out, path)
	}
	printStats(c.Out, result.Stats.Components, len(result.Frame.Boxes), result.Stats.Bytes)
	printNextStep(c.Out, "Preview in the terminal", appName+" preview "+opts.Source)
	return nil
}

// outputPaths maps each format to the file it is written to.
func outputPaths(source, output string, formats []string) (map[string]string, error) {
	base := output
	if base == "" {
		base = strings.TrimPrefix(source, pipeline.PresetPrefix)
		base = strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	} else if ext := filepath.Ext(base); len(formats) > 1 && pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}

	paths := make(map[string]string, len(formats))
	for _, f := range formats {
		path := base + "." + f
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := errors.ValidateOutputPath(path); err != nil {
			return nil, err
		}
		paths[f] = path
	}
	return paths, nil
}
