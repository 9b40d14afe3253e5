package console

import (
	"errors"
	"net/http"
	"strings"

	"davsh/pkg/rpath"
	"davsh/pkg/webdav"
)

// Entry is the normalized metadata of one remote filesystem object.
// Entries are transient, rebuilt fresh on every listing request.
type Entry struct {
	Name string
	Dir  bool
	// Size is meaningful for files only
	Size int64
	// ModTime is the normalized timestamp, the raw protocol string when
	// normalization fails, or empty when the server sent none
	ModTime string
}

const modTimeLayout = "2006-01-02 15:04"

func entryFromRecord(rec webdav.Record) Entry {
	entry := Entry{
		Name: rpath.Base(strings.TrimSuffix(rec.Path, "/")),
		Dir:  rec.Dir,
		Size: rec.Size,
	}
	if rec.LastModified != "" {
		if t, err := http.ParseTime(rec.LastModified); err == nil {
			entry.ModTime = t.Local().Format(modTimeLayout)
		} else {
			// Keep the raw protocol string rather than failing the listing
			entry.ModTime = rec.LastModified
		}
	}
	return entry
}

type pathKind int

const (
	pathMissing pathKind = iota
	pathFile
	pathDir
)

// probeResult classifies one canonical remote path
type probeResult struct {
	kind pathKind
	// entry holds the single record when the path denotes a file
	entry Entry
	// entries holds the directory children, excluding the directory's
	// own record and server artifacts
	entries []Entry
	// records is the raw record count of the listing response. Children
	// hidden by the display exclusions still count here, so emptiness
	// checks must use records, not entries.
	records int
}

// probePath classifies a path with one depth-one listing request. The
// trailing separator on the request signals "list contents" to the
// server. A 404 yields pathMissing rather than an error; transport and
// parse failures surface as errors for the caller to report.
func probePath(dav Dav, p string) (*probeResult, error) {
	listPath := p
	if !strings.HasSuffix(listPath, "/") {
		listPath += "/"
	}

	records, err := dav.Propfind(listPath)
	if err != nil {
		if errors.Is(err, webdav.ErrNotFound) {
			return &probeResult{kind: pathMissing}, nil
		}
		return nil, err
	}

	// A single record whose protocol path lacks a trailing separator
	// means the target itself is a file
	if len(records) == 1 && !records[0].Dir {
		return &probeResult{
			kind:    pathFile,
			entry:   entryFromRecord(records[0]),
			records: 1,
		}, nil
	}

	result := &probeResult{kind: pathDir, records: len(records)}
	base := rpath.Base(p)
	for _, rec := range records {
		entry := entryFromRecord(rec)
		// Skip the directory's own record, the server's virtual root
		// artifact named after the user, and blank hrefs
		if entry.Name == "" || entry.Name == "/" || entry.Name == dav.Username() || entry.Name == base {
			continue
		}
		result.entries = append(result.entries, entry)
	}
	return result, nil
}
