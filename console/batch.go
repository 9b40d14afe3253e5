package console

import (
	"fmt"

	"davsh/pkg/rpath"
)

// ResultKind tags the outcome of one target within a batch command
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultSkipped
	ResultFailed
)

// TargetResult is the outcome of one target of a multi-target command.
// The executor produces these and the presentation layer renders them,
// one line per target.
type TargetResult struct {
	Target string
	Kind   ResultKind
	// Status carries the reported protocol status on success
	Status int
	// Detail is the success message
	Detail string
	// Reason explains a skip
	Reason string
	// Err is the per-target failure
	Err error
}

func okResult(target string, status int, detail string) TargetResult {
	return TargetResult{Target: target, Kind: ResultOK, Status: status, Detail: detail}
}

func skipResult(target, reason string) TargetResult {
	return TargetResult{Target: target, Kind: ResultSkipped, Reason: reason}
}

func failResult(target string, err error) TargetResult {
	return TargetResult{Target: target, Kind: ResultFailed, Err: err}
}

// printResults renders every per-target outcome. One failing target
// never suppresses the report of the others.
func printResults(ui UserInterface, results []TargetResult) {
	for _, r := range results {
		switch r.Kind {
		case ResultOK:
			ui.PrintSuccess("%s", r.Detail)
		case ResultSkipped:
			ui.PrintWarn("%s: skipped (%s)", r.Target, r.Reason)
		case ResultFailed:
			ui.PrintError("%s: %v", r.Target, r.Err)
		}
	}
}

type copyMoveOptions struct {
	move        bool
	interactive bool
	recursive   bool
}

// runCopyMove drives a multi-source copy or move. The destination is
// resolved and probed once up front; each source is then handled
// independently so one failure never aborts the rest of the batch.
func runCopyMove(ctx *ExecutionContext, sources []string, target string, opts copyMoveOptions) error {
	session := ctx.session
	ui := ctx.UI()

	dst := rpath.Resolve(target, session.remoteCwd)
	dstProbe, pErr := probePath(session.dav, dst)
	if pErr != nil {
		return pErr
	}
	dstIsDir := dstProbe.kind == pathDir

	// With several sources the destination has to be a directory;
	// reject the whole batch before issuing any request
	if len(sources) > 1 && !dstIsDir {
		return fmt.Errorf("target \"%s\" is not a directory", target)
	}

	var results []TargetResult
	for _, src := range sources {
		result, cErr := copyMoveOne(session, ui, src, dst, dstIsDir, opts)
		if cErr != nil {
			// Interrupt during a prompt aborts only this command
			printResults(ui, results)
			return cErr
		}
		results = append(results, result)
	}
	printResults(ui, results)
	return nil
}

func copyMoveOne(session *Session, ui UserInterface, src, dst string, dstIsDir bool, opts copyMoveOptions) (TargetResult, error) {
	srcPath := rpath.Resolve(src, session.remoteCwd)

	probe, pErr := probePath(session.dav, srcPath)
	if pErr != nil {
		return failResult(src, pErr), nil
	}
	switch {
	case probe.kind == pathMissing:
		return failResult(src, fmt.Errorf("no such file or directory")), nil
	case probe.kind == pathDir && opts.move:
		return failResult(src, fmt.Errorf("is a directory")), nil
	case probe.kind == pathDir && !opts.recursive:
		return failResult(src, fmt.Errorf("is a directory (use \"-r\")")), nil
	}

	dstPath := dst
	if dstIsDir {
		dstPath = rpath.Join(dst, rpath.Base(srcPath))
	}

	if dstPath == srcPath {
		return skipResult(src, "source and destination are the same"), nil
	}

	if opts.interactive {
		dstProbe, dErr := probePath(session.dav, dstPath)
		if dErr != nil {
			return failResult(src, dErr), nil
		}
		if dstProbe.kind != pathMissing {
			overwrite, cErr := ui.Confirm(fmt.Sprintf("Overwrite \"%s\"? (Y/n): ", dstPath), true)
			if cErr != nil {
				return TargetResult{}, cErr
			}
			if !overwrite {
				return skipResult(src, "not overwritten"), nil
			}
		}
	}

	var status int
	var opErr error
	verb := "Copied"
	if opts.move {
		verb = "Moved"
		status, opErr = session.dav.Move(srcPath, dstPath, true)
	} else {
		status, opErr = session.dav.Copy(srcPath, dstPath, true)
	}
	if opErr != nil {
		return failResult(src, opErr), nil
	}
	return okResult(src, status, fmt.Sprintf("%s \"%s\" to \"%s\"", verb, srcPath, dstPath)), nil
}
