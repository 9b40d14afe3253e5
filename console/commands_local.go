package console

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

const (
	lLsCmd   = "lls"
	lLsDesc  = "List local directory contents"
	lLsUsage = "lls [-l] [-h] [path]"
	lPwdCmd  = "lpwd"
	lPwdDesc = "Show current local directory"
	lCdCmd   = "lcd"
	lCdDesc  = "Change local directory"
	lCdUsage = "lcd <dir>"
)

// LocalLsCommand implements the 'lls' command
type LocalLsCommand struct{}

func (c *LocalLsCommand) Name() string        { return lLsCmd }
func (c *LocalLsCommand) Description() string { return lLsDesc }
func (c *LocalLsCommand) Usage() string       { return fmt.Sprintf("Usage: %s", lLsUsage) }

func (c *LocalLsCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session
	ui := ctx.UI()

	lsFlags := pflag.NewFlagSet(lLsCmd, pflag.ContinueOnError)
	lsFlags.SetOutput(ui.Writer())

	long := lsFlags.BoolP("long", "l", false, "Use long listing format")
	human := lsFlags.BoolP("human-readable", "h", false, "Print sizes in human readable units")

	lsFlags.Usage = func() {
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", c.Usage())
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", lLsDesc)
		lsFlags.PrintDefaults()
	}

	if pErr := lsFlags.Parse(args); pErr != nil {
		if errors.Is(pErr, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flag error: %w", pErr)
	}

	if lsFlags.NArg() > 1 {
		return fmt.Errorf("too many arguments")
	}

	path := session.localCwd
	if lsFlags.NArg() == 1 {
		path = lsFlags.Args()[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(session.localCwd, path)
		}
	}

	dirEntries, rErr := os.ReadDir(path)
	if rErr != nil {
		return fmt.Errorf("failed to list directory: %w", rErr)
	}

	if len(dirEntries) == 0 {
		ui.PrintInfo("Directory is empty")
		return nil
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{Name: de.Name(), Dir: de.IsDir()}
		if info, iErr := de.Info(); iErr == nil {
			if !entry.Dir {
				entry.Size = info.Size()
			}
			entry.ModTime = info.ModTime().Format(modTimeLayout)
		}
		entries = append(entries, entry)
	}

	sortEntries(entries)
	if *long {
		renderLong(ui.Writer(), entries, *human)
	} else {
		renderCompact(ui.Writer(), entries, ui.Width())
	}
	return nil
}

// LocalPwdCommand implements the 'lpwd' command
type LocalPwdCommand struct{}

func (c *LocalPwdCommand) Name() string        { return lPwdCmd }
func (c *LocalPwdCommand) Description() string { return lPwdDesc }
func (c *LocalPwdCommand) Usage() string       { return lPwdCmd }

func (c *LocalPwdCommand) Run(ctx *ExecutionContext, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("too many arguments")
	}
	ctx.UI().Printf("%s\r\n", ctx.session.localCwd)
	return nil
}

// LocalCdCommand implements the 'lcd' command
type LocalCdCommand struct{}

func (c *LocalCdCommand) Name() string        { return lCdCmd }
func (c *LocalCdCommand) Description() string { return lCdDesc }
func (c *LocalCdCommand) Usage() string       { return fmt.Sprintf("Usage: %s", lCdUsage) }

func (c *LocalCdCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session

	if len(args) != 1 {
		return fmt.Errorf("exactly 1 argument required, got %d", len(args))
	}

	newPath := args[0]
	if !filepath.IsAbs(newPath) {
		newPath = filepath.Join(session.localCwd, newPath)
	}

	stat, err := os.Stat(newPath)
	if err != nil {
		return fmt.Errorf("%s: no such directory", args[0])
	}
	if !stat.IsDir() {
		return fmt.Errorf("%s: not a directory", args[0])
	}

	session.localCwd = filepath.Clean(newPath)
	return nil
}
