package console

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"davsh/pkg/rpath"

	"github.com/spf13/pflag"
)

const (
	mkdirCmd   = "mkdir"
	mkdirDesc  = "Create remote directory"
	mkdirUsage = "mkdir [-p] <dir...>"
)

// MkdirCommand implements the 'mkdir' command
type MkdirCommand struct{}

func (c *MkdirCommand) Name() string        { return mkdirCmd }
func (c *MkdirCommand) Description() string { return mkdirDesc }
func (c *MkdirCommand) Usage() string       { return fmt.Sprintf("Usage: %s", mkdirUsage) }

func (c *MkdirCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session
	ui := ctx.UI()

	mkdirFlags := pflag.NewFlagSet(mkdirCmd, pflag.ContinueOnError)
	mkdirFlags.SetOutput(ui.Writer())

	parents := mkdirFlags.BoolP("parents", "p", false, "Create parent directories as needed")

	mkdirFlags.Usage = func() {
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", c.Usage())
		_, _ = fmt.Fprintf(ui.Writer(), "%s\n\n", mkdirDesc)
		mkdirFlags.PrintDefaults()
	}

	if pErr := mkdirFlags.Parse(args); pErr != nil {
		if errors.Is(pErr, pflag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flag error: %w", pErr)
	}

	if mkdirFlags.NArg() == 0 {
		return fmt.Errorf("at least 1 argument required")
	}

	var results []TargetResult
	for _, token := range mkdirFlags.Args() {
		results = append(results, c.makeOne(session, token, *parents))
	}
	printResults(ui, results)
	return nil
}

func (c *MkdirCommand) makeOne(session *Session, token string, parents bool) TargetResult {
	target := rpath.Resolve(token, session.remoteCwd)
	if target == "/" {
		return failResult(token, fmt.Errorf("refusing to create the root"))
	}

	if !parents {
		status, err := session.dav.Mkcol(target)
		if err != nil {
			return failResult(token, err)
		}
		if status == http.StatusMethodNotAllowed {
			return skipResult(token, "already exists")
		}
		return okResult(token, status, fmt.Sprintf("Created directory \"%s\"", target))
	}

	// Walk the path segment by segment. Intermediate segments tolerate
	// "already exists"; the final segment reports its true outcome.
	segments := strings.Split(strings.TrimPrefix(target, "/"), "/")
	partial := ""
	var status int
	for _, segment := range segments {
		partial += "/" + segment
		var err error
		status, err = session.dav.Mkcol(partial)
		if err != nil {
			return failResult(token, err)
		}
	}
	if status == http.StatusMethodNotAllowed {
		return skipResult(token, "already exists")
	}
	return okResult(token, status, fmt.Sprintf("Created directory \"%s\"", target))
}
