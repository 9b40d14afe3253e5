package console

import (
	"errors"
	"fmt"

	"davsh/pkg/rpath"

	"github.com/spf13/pflag"
)

const (
	rmCmd   = "rm"
	rmDesc  = "Delete remote file or directory"
	rmUsage = "rm [-f] <target...>"
)

// RmCommand implements the 'rm' command
type RmCommand struct{}

func (c *RmCommand) Name() string        { return rmCmd }
func (c *RmCommand) Description() string { return rmDesc }
func (c *RmCommand) Usage() string       { return fmt.Sprintf("Usage: %s", rmUsage) }

func (c *RmCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session
	ui := ctx.UI()

	rmFlags := pflag.NewFlagSet(rmCmd, pflag.ContinueOnError)
	rmFlags.SetOutput(ui.Writer())

	force := rmFlags.BoolP("force", "f", false, "Delete without confirmation")

	rmFlags.Usage = func() {
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", c.Usage())
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", rmDesc)
		rmFlags.PrintDefaults()
	}

	if pErr := rmFlags.Parse(args); pErr != nil {
		if errors.Is(pErr, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flag error: %w", pErr)
	}

	if rmFlags.NArg() == 0 {
		return fmt.Errorf("at least 1 argument required")
	}

	var results []TargetResult
	for _, token := range rmFlags.Args() {
		result, err := c.removeOne(session, ui, token, *force)
		if err != nil {
			printResults(ui, results)
			return err
		}
		results = append(results, result)
	}
	printResults(ui, results)
	return nil
}

func (c *RmCommand) removeOne(session *Session, ui UserInterface, token string, force bool) (TargetResult, error) {
	target := rpath.Resolve(token, session.remoteCwd)

	probe, pErr := probePath(session.dav, target)
	if pErr != nil {
		return failResult(token, pErr), nil
	}
	if probe.kind == pathMissing {
		return failResult(token, fmt.Errorf("no such file or directory")), nil
	}

	if !force {
		confirmed, cErr := ui.Confirm(fmt.Sprintf("Delete \"%s\"? (Y/n): ", target), true)
		if cErr != nil {
			return TargetResult{}, cErr
		}
		if !confirmed {
			return skipResult(token, "not deleted"), nil
		}
	}

	status, dErr := session.dav.Delete(target)
	if dErr != nil {
		return failResult(token, dErr), nil
	}
	return okResult(token, status, fmt.Sprintf("Deleted \"%s\"", target)), nil
}
