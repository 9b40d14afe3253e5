package console

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

const (
	cpCmd   = "cp"
	cpDesc  = "Copy remote files"
	cpUsage = "cp [-r] [-i] <src...> <dst>"
)

// CpCommand implements the 'cp' command
type CpCommand struct{}

func (c *CpCommand) Name() string        { return cpCmd }
func (c *CpCommand) Description() string { return cpDesc }
func (c *CpCommand) Usage() string       { return fmt.Sprintf("Usage: %s", cpUsage) }

func (c *CpCommand) Run(ctx *ExecutionContext, args []string) error {
	ui := ctx.UI()

	cpFlags := pflag.NewFlagSet(cpCmd, pflag.ContinueOnError)
	cpFlags.SetOutput(ui.Writer())

	recursive := cpFlags.BoolP("recursive", "r", false, "Copy directories (server-side recursive copy)")
	interactive := cpFlags.BoolP("interactive", "i", false, "Prompt before overwriting an existing destination")

	cpFlags.Usage = func() {
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", c.Usage())
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", cpDesc)
		cpFlags.PrintDefaults()
	}

	if pErr := cpFlags.Parse(args); pErr != nil {
		if errors.Is(pErr, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flag error: %w", pErr)
	}

	if cpFlags.NArg() < 2 {
		return fmt.Errorf("at least 2 arguments required, got %d", cpFlags.NArg())
	}

	positional := cpFlags.Args()
	sources := positional[:len(positional)-1]
	target := positional[len(positional)-1]

	return runCopyMove(ctx, sources, target, copyMoveOptions{
		interactive: *interactive,
		recursive:   *recursive,
	})
}
