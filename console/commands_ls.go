package console

import (
	"errors"
	"fmt"

	"davsh/pkg/rpath"

	"github.com/spf13/pflag"
)

const (
	lsCmd   = "ls"
	lsDesc  = "List remote directory contents"
	lsUsage = "ls [-l] [-h] [path...]"
)

// LsCommand implements the 'ls' command
type LsCommand struct{}

func (c *LsCommand) Name() string        { return lsCmd }
func (c *LsCommand) Description() string { return lsDesc }
func (c *LsCommand) Usage() string       { return fmt.Sprintf("Usage: %s", lsUsage) }

func (c *LsCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session
	ui := ctx.UI()

	lsFlags := pflag.NewFlagSet(lsCmd, pflag.ContinueOnError)
	lsFlags.SetOutput(ui.Writer())

	long := lsFlags.BoolP("long", "l", false, "Use long listing format")
	human := lsFlags.BoolP("human-readable", "h", false, "Print sizes in human readable units")

	lsFlags.Usage = func() {
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", c.Usage())
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", lsDesc)
		lsFlags.PrintDefaults()
	}

	if pErr := lsFlags.Parse(args); pErr != nil {
		if errors.Is(pErr, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flag error: %w", pErr)
	}

	paths := lsFlags.Args()
	if len(paths) == 0 {
		paths = []string{session.remoteCwd}
	}

	for i, p := range paths {
		if len(paths) > 1 {
			if i > 0 {
				ui.Printf("\r\n")
			}
			ui.Printf("%s:\r\n", p)
		}
		if err := c.listPath(session, ui, p, *long, *human); err != nil {
			ui.PrintError("%s: %v", p, err)
		}
	}
	return nil
}

func (c *LsCommand) listPath(session *Session, ui UserInterface, token string, long, human bool) error {
	target := rpath.Resolve(token, session.remoteCwd)

	probe, err := probePath(session.dav, target)
	if err != nil {
		return err
	}

	var entries []Entry
	switch probe.kind {
	case pathMissing:
		return fmt.Errorf("no such file or directory")
	case pathFile:
		entries = []Entry{probe.entry}
	case pathDir:
		entries = probe.entries
	}

	if len(entries) == 0 {
		ui.PrintInfo("Directory is empty")
		return nil
	}

	sortEntries(entries)
	if long {
		renderLong(ui.Writer(), entries, human)
	} else {
		renderCompact(ui.Writer(), entries, ui.Width())
	}
	return nil
}
