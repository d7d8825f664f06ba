package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slotgrid/pkg/errors"
	"github.com/matzehuels/slotgrid/pkg/grid"
	"github.com/matzehuels/slotgrid/pkg/pipeline"
)

// checkCommand creates the check command that validates a document without
// rendering it.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <document|preset:NAME>",
		Short: "Validate a grid document and report its sizes",
		Long: `Validate a grid document and report its sizes.

Every component is placed in document order. The first placement failure is
reported with its code:

  INVALID_FORMAT       the "at" value is not "row,column"
  ILLEGAL_POSITION     the slot is out of range or covered by the span
  SLOT_OCCUPIED        another component already holds the slot
  DUPLICATE_COMPONENT  the component was already placed

On success the aggregate preferred, minimum and maximum sizes are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runCheck(ctx context.Context, source string) error {
	runner := c.newRunner()
	doc, err := runner.Load(ctx, source)
	if err != nil {
		return err
	}

	board, err := doc.Build()
	if err != nil {
		printError(c.Out, string(errors.GetCode(err)), "%s", errors.UserMessage(err))
		return fmt.Errorf("%s failed check", source)
	}

	printSuccess(c.Out, "%s: %d components placed, %d of %d slots free",
		source, board.Len(), grid.MaxSlots-board.Len(), grid.MaxSlots)
	printKeyValue(c.Out, "gap", strconv.Itoa(board.Gap()))
	printKeyValue(c.Out, "container", grid.Size{Width: doc.Width, Height: doc.Height}.String())
	printKeyValue(c.Out, "preferred", board.PreferredSize().String())
	printKeyValue(c.Out, "minimum", board.MinimumSize().String())
	printKeyValue(c.Out, "maximum", board.MaximumSize().String())

	if _, _, err := pipeline.Layout(doc, pipeline.Options{}); err != nil {
		printInfo(c.Out, "%s", errors.UserMessage(err))
	}
	return nil
}
