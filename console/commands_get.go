package console

import (
	"fmt"
	"os"
	"path/filepath"

	"davsh/pkg/rpath"
	"davsh/pkg/sio"
)

const (
	getCmd   = "get"
	getDesc  = "Download remote file to the local directory"
	getUsage = "get <file...>"
)

// GetCommand implements the 'get' command
type GetCommand struct{}

func (c *GetCommand) Name() string        { return getCmd }
func (c *GetCommand) Description() string { return getDesc }
func (c *GetCommand) Usage() string       { return fmt.Sprintf("Usage: %s", getUsage) }

func (c *GetCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session
	ui := ctx.UI()

	if len(args) == 0 {
		return fmt.Errorf("at least 1 argument required")
	}

	var results []TargetResult
	for _, token := range args {
		results = append(results, c.downloadOne(session, ui, token))
	}
	printResults(ui, results)
	return nil
}

func (c *GetCommand) downloadOne(session *Session, ui UserInterface, token string) TargetResult {
	remotePath := rpath.Resolve(token, session.remoteCwd)

	probe, pErr := probePath(session.dav, remotePath)
	if pErr != nil {
		return failResult(token, pErr)
	}
	switch probe.kind {
	case pathMissing:
		return failResult(token, fmt.Errorf("no such file or directory"))
	case pathDir:
		return failResult(token, fmt.Errorf("is a directory"))
	}

	body, size, gErr := session.dav.Get(remotePath)
	if gErr != nil {
		return failResult(token, gErr)
	}
	defer func() { _ = body.Close() }()

	localName := rpath.Base(remotePath)
	localPath := filepath.Join(session.localCwd, localName)

	lFile, cErr := os.Create(localPath)
	if cErr != nil {
		return failResult(token, fmt.Errorf("failed to create local file: %w", cErr))
	}

	written, cpErr := sio.CopyWithProgress(lFile, body, size, fmt.Sprintf("Download %s", localName), ui)
	clErr := lFile.Close()
	if cpErr == nil && clErr != nil {
		cpErr = clErr
	}
	if cpErr != nil {
		// Never leave a partially written local file behind
		_ = os.Remove(localPath)
		return failResult(token, fmt.Errorf("download failed: %w", cpErr))
	}

	return okResult(token, 0, fmt.Sprintf("Downloaded \"%s\" (%d bytes)", localName, written))
}
