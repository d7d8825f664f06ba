package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/pipeline"
	"github.com/matzehuels/slotgrid/pkg/render"
	"github.com/matzehuels/slotgrid/pkg/render/sink"
)

// Pixels per terminal character used to turn the window size into a
// container size for the layout pass.
const (
	watchCellWidth  = 8
	watchCellHeight = 16

	// watchChrome is the number of rows taken by the status and help lines.
	watchChrome = 2
)

var (
	watchStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	watchHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	watchErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// watchCommand creates the watch command that keeps a layout on screen and
// recomputes it whenever the terminal is resized.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		color bool
		theme string
	)

	cmd := &cobra.Command{
		Use:   "watch <document|preset:NAME>",
		Short: "Interactively lay out a grid as the terminal is resized",
		Long: `Interactively lay out a grid as the terminal is resized.

The terminal is treated as the container: every resize runs a new layout
pass. Keys:

  +/-   grow or shrink the gap
  r     reload the document
  q     quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateTheme(theme); err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), args[0], color, theme)
		},
	}

	cmd.Flags().BoolVar(&color, "color", true, "color borders and labels")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme used with --color (default: the document's, else dark)")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, source string, color bool, theme string) error {
	runner := c.newRunner()
	doc, err := runner.Load(ctx, source)
	if err != nil {
		return err
	}

	m := newWatchModel(source, doc, func() (*config.Document, error) {
		return runner.Load(ctx, source)
	})
	if color {
		if theme == "" {
			theme = doc.Theme
		}
		if theme == "" {
			theme = "dark"
		}
		t, _ := sink.LookupTheme(theme)
		m.theme = &t
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

// =============================================================================
// watchModel - Interactive layout view
// =============================================================================

// watchModel is the bubbletea model behind the watch command.
type watchModel struct {
	source string
	doc    *config.Document
	reload func() (*config.Document, error)
	theme  *sink.Theme

	gap        int
	cols, rows int
	frame      render.Frame
	err        error
}

func newWatchModel(source string, doc *config.Document, reload func() (*config.Document, error)) watchModel {
	cols, rows := terminalSize()
	m := watchModel{
		source: source,
		doc:    doc,
		reload: reload,
		gap:    doc.Gap,
		cols:   cols,
		rows:   rows - watchChrome,
	}
	return m.relayout()
}

func (m watchModel) Init() tea.Cmd {
	return nil
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.gap++
		case "-", "_":
			if m.gap > 0 {
				m.gap--
			}
		case "r":
			if m.reload != nil {
				doc, err := m.reload()
				if err != nil {
					m.err = err
					return m, nil
				}
				m.doc, m.gap = doc, doc.Gap
			}
		default:
			return m, nil
		}
		return m.relayout(), nil
	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, max(msg.Height-watchChrome, 0)
		return m.relayout(), nil
	}
	return m, nil
}

// relayout rebuilds the board with the current gap and lays it out in a
// container the size of the terminal.
func (m watchModel) relayout() watchModel {
	doc := *m.doc
	doc.Gap = m.gap
	board, err := doc.Build()
	if err != nil {
		m.err = err
		return m
	}

	frame, ok := board.Layout(m.cols*watchCellWidth, m.rows*watchCellHeight)
	if !ok {
		m.err = errors.New(errors.ErrCodeInvalidSize, "terminal too small for gap %d", m.gap)
		return m
	}
	m.frame, m.err = frame, nil
	return m
}

func (m watchModel) View() string {
	var b strings.Builder

	// A failed relayout keeps the last good frame on screen.
	if len(m.frame.Boxes) > 0 {
		opts := []sink.TextOption{sink.WithCells(m.cols, m.rows)}
		if m.theme != nil {
			opts = append(opts, sink.WithTextTheme(*m.theme))
		}
		b.Write(sink.RenderText(m.frame, opts...))
	}

	status := fmt.Sprintf("%s  %d components  gap %d  %dx%d",
		m.source, len(m.doc.Components), m.gap, m.cols*watchCellWidth, m.rows*watchCellHeight)
	if m.err != nil {
		status += "  " + watchErrorStyle.Render(errors.UserMessage(m.err))
	}
	b.WriteString(watchStatusStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(watchHelpStyle.Render("+/- gap  r reload  q quit"))

	return b.String()
}
