// Command slotgrid-window shows a grid document in a resizable window. Every
// resize runs a new layout pass, so the grid can be watched reflowing.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slotgrid/pkg/pipeline"
	"github.com/matzehuels/slotgrid/pkg/render/sink"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		theme   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "slotgrid-window [document|preset:NAME]",
		Short:        "Show a grid layout in a resizable window",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "preset:calculator"
			if len(args) == 1 {
				source = args[0]
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, TimeFormat: "15:04:05.00"})
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			return run(cmd.Context(), logger, source, theme)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "color theme: light, dark (default: the document's, else dark)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every layout pass")
	return cmd
}

func run(ctx context.Context, logger *log.Logger, source, themeName string) error {
	if err := pipeline.ValidateTheme(themeName); err != nil {
		return err
	}
	doc, err := pipeline.NewRunner(logger).Load(ctx, source)
	if err != nil {
		return err
	}
	if themeName == "" {
		themeName = doc.Theme
	}
	if themeName == "" {
		themeName = "dark"
	}
	theme, _ := sink.LookupTheme(themeName)
	game, err := newGame(doc, theme, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(doc.Width, doc.Height)
	ebiten.SetWindowTitle("slotgrid - " + source)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(game)
}
