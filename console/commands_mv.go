package console

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

const (
	mvCmd   = "mv"
	mvDesc  = "Move or rename remote files"
	mvUsage = "mv [-i] <src...> <dst>"
)

// MvCommand implements the 'mv' command
type MvCommand struct{}

func (c *MvCommand) Name() string        { return mvCmd }
func (c *MvCommand) Description() string { return mvDesc }
func (c *MvCommand) Usage() string       { return fmt.Sprintf("Usage: %s", mvUsage) }

func (c *MvCommand) Run(ctx *ExecutionContext, args []string) error {
	ui := ctx.UI()

	mvFlags := pflag.NewFlagSet(mvCmd, pflag.ContinueOnError)
	mvFlags.SetOutput(ui.Writer())

	interactive := mvFlags.BoolP("interactive", "i", false, "Prompt before overwriting an existing destination")

	mvFlags.Usage = func() {
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", c.Usage())
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", mvDesc)
		mvFlags.PrintDefaults()
	}

	if pErr := mvFlags.Parse(args); pErr != nil {
		if errors.Is(pErr, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flag error: %w", pErr)
	}

	if mvFlags.NArg() < 2 {
		return fmt.Errorf("at least 2 arguments required, got %d", mvFlags.NArg())
	}

	positional := mvFlags.Args()
	sources := positional[:len(positional)-1]
	target := positional[len(positional)-1]

	return runCopyMove(ctx, sources, target, copyMoveOptions{
		move:        true,
		interactive: *interactive,
	})
}
