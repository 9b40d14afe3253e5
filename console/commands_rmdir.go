package console

import (
	"fmt"

	"davsh/pkg/rpath"
)

const (
	rmdirCmd   = "rmdir"
	rmdirDesc  = "Delete empty remote directory"
	rmdirUsage = "rmdir <dir...>"
)

// RmdirCommand implements the 'rmdir' command. It never deletes a
// non-empty directory.
type RmdirCommand struct{}

func (c *RmdirCommand) Name() string        { return rmdirCmd }
func (c *RmdirCommand) Description() string { return rmdirDesc }
func (c *RmdirCommand) Usage() string       { return fmt.Sprintf("Usage: %s", rmdirUsage) }

func (c *RmdirCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session
	ui := ctx.UI()

	if len(args) == 0 {
		return fmt.Errorf("at least 1 argument required")
	}

	var results []TargetResult
	for _, token := range args {
		result, err := c.removeOne(session, ui, token)
		if err != nil {
			printResults(ui, results)
			return err
		}
		results = append(results, result)
	}
	printResults(ui, results)
	return nil
}

func (c *RmdirCommand) removeOne(session *Session, ui UserInterface, token string) (TargetResult, error) {
	target := rpath.Resolve(token, session.remoteCwd)

	probe, pErr := probePath(session.dav, target)
	if pErr != nil {
		return failResult(token, pErr), nil
	}
	switch probe.kind {
	case pathMissing:
		return failResult(token, fmt.Errorf("no such file or directory")), nil
	case pathFile:
		return failResult(token, fmt.Errorf("not a directory")), nil
	}
	// Emptiness is judged on the raw record count: children hidden from
	// listings (same name as the directory, or the username artifact)
	// must still block the delete, which the server runs recursively.
	if probe.records > 1 {
		return failResult(token, fmt.Errorf("directory not empty")), nil
	}

	confirmed, cErr := ui.Confirm(fmt.Sprintf("Delete directory \"%s\"? (Y/n): ", target), true)
	if cErr != nil {
		return TargetResult{}, cErr
	}
	if !confirmed {
		return skipResult(token, "not deleted"), nil
	}

	status, dErr := session.dav.Delete(target)
	if dErr != nil {
		return failResult(token, dErr), nil
	}
	return okResult(token, status, fmt.Sprintf("Deleted directory \"%s\"", target)), nil
}
