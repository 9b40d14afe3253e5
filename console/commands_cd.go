package console

import (
	"fmt"

	"davsh/pkg/rpath"
)

const (
	cdCmd   = "cd"
	cdDesc  = "Change remote directory"
	cdUsage = "cd <dir>"
)

// CdCommand implements the 'cd' command
type CdCommand struct{}

func (c *CdCommand) Name() string        { return cdCmd }
func (c *CdCommand) Description() string { return cdDesc }
func (c *CdCommand) Usage() string       { return fmt.Sprintf("Usage: %s", cdUsage) }

func (c *CdCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session

	// No args - go to the remote root
	var token string
	switch len(args) {
	case 0:
		token = "/"
	case 1:
		token = args[0]
	default:
		return fmt.Errorf("too many arguments")
	}

	newPath := rpath.Resolve(token, session.remoteCwd)

	probe, err := probePath(session.dav, newPath)
	if err != nil {
		return err
	}
	switch probe.kind {
	case pathMissing:
		return fmt.Errorf("%s: no such file or directory", token)
	case pathFile:
		return fmt.Errorf("%s: not a directory", token)
	}

	// The remote cwd only moves on a successful cd
	session.remoteCwd = newPath
	return nil
}
