package console

import (
	"fmt"
	"os"
	"path/filepath"

	"davsh/pkg/rpath"
	"davsh/pkg/sio"
)

const (
	putCmd   = "put"
	putDesc  = "Upload local file to the remote directory"
	putUsage = "put <local...> [dir]"
)

// PutCommand implements the 'put' command
type PutCommand struct{}

func (c *PutCommand) Name() string        { return putCmd }
func (c *PutCommand) Description() string { return putDesc }
func (c *PutCommand) Usage() string       { return fmt.Sprintf("Usage: %s", putUsage) }

func (c *PutCommand) Run(ctx *ExecutionContext, args []string) error {
	session := ctx.session
	ui := ctx.UI()

	if len(args) == 0 {
		return fmt.Errorf("at least 1 argument required")
	}

	// The last argument is used as the remote destination only when it
	// probes as a directory, otherwise every argument is a local file
	// uploaded to the remote cwd
	locals := args
	destDir := session.remoteCwd
	if len(args) > 1 {
		candidate := rpath.Resolve(args[len(args)-1], session.remoteCwd)
		probe, pErr := probePath(session.dav, candidate)
		if pErr != nil {
			// A transport or parse failure here would otherwise get
			// misreported as a missing local file
			return fmt.Errorf("%s: %w", args[len(args)-1], pErr)
		}
		if probe.kind == pathDir {
			destDir = candidate
			locals = args[:len(args)-1]
		}
	}

	var results []TargetResult
	for _, local := range locals {
		results = append(results, c.uploadOne(session, ui, local, destDir))
	}
	printResults(ui, results)
	return nil
}

func (c *PutCommand) uploadOne(session *Session, ui UserInterface, local, destDir string) TargetResult {
	localPath := local
	if !filepath.IsAbs(localPath) {
		localPath = filepath.Join(session.localCwd, localPath)
	}

	info, sErr := os.Stat(localPath)
	if sErr != nil {
		return failResult(local, fmt.Errorf("no such local file"))
	}
	if !info.Mode().IsRegular() {
		return failResult(local, fmt.Errorf("not a regular file"))
	}

	lFile, oErr := os.Open(localPath)
	if oErr != nil {
		return failResult(local, fmt.Errorf("failed to open local file: %w", oErr))
	}
	defer func() { _ = lFile.Close() }()

	baseName := filepath.Base(localPath)
	remotePath := rpath.Join(destDir, baseName)

	reader := sio.NewProgressReader(lFile, info.Size(), fmt.Sprintf("Upload %s", baseName), ui)
	status, pErr := session.dav.Put(remotePath, reader, info.Size())
	if pErr != nil {
		return failResult(local, pErr)
	}

	return okResult(local, status, fmt.Sprintf("Uploaded \"%s\" to \"%s\"", local, remotePath))
}
