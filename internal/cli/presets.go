package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slotgrid/pkg/config"
	"github.com/matzehuels/slotgrid/pkg/preset"
)

// presetsCommand creates the presets command that lists built-in documents.
func (c *CLI) presetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in grid documents",
		Long: `List built-in grid documents.

Any preset can be used wherever a document is expected, as preset:NAME.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.printPresets()
			return nil
		},
	}

	cmd.AddCommand(c.presetsShowCommand())
	return cmd
}

// presetsShowCommand prints a preset's document so it can be saved and edited.
func (c *CLI) presetsShowCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:       "show <name>",
		Short:     "Print a preset as a grid document",
		Args:      cobra.ExactArgs(1),
		ValidArgs: preset.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPresetsShow(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatYAML), "document format: toml, yaml, json")
	return cmd
}

func (c *CLI) runPresetsShow(name, format string) error {
	f, err := config.ParseFormat(format)
	if err != nil {
		return err
	}
	p, err := preset.Get(name)
	if err != nil {
		return err
	}
	data, err := config.Encode(p.Document(), f)
	if err != nil {
		return err
	}
	_, err = c.Out.Write(data)
	return err
}

func (c *CLI) printPresets() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(colorCyan)

	rows := [][]string{}
	for _, p := range preset.All() {
		doc := p.Document()
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(len(doc.Components)),
			strconv.Itoa(doc.Gap),
			fmt.Sprintf("%dx%d", doc.Width, doc.Height),
			p.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Preset", "Components", "Gap", "Container", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return nameStyle
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	fmt.Fprintln(c.Out, t.Render())
	printNextStep(c.Out, "Render one", appName+" layout preset:"+preset.Names()[0])
}
