package console

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"davsh/pkg/rpath"
	"davsh/pkg/webdav"
)

// fakeNode is one object in the in-memory remote tree
type fakeNode struct {
	dir      bool
	content  []byte
	modified string
}

// fakeDav is an in-memory Dav implementation. It mirrors the server's
// observable behavior: depth-one listings, trailing-slash requests,
// 404 as webdav.ErrNotFound, 405 on an existing collection.
type fakeDav struct {
	user  string
	nodes map[string]fakeNode
	// calls records every request in "METHOD path" form
	calls []string
}

func newFakeDav(user string) *fakeDav {
	return &fakeDav{
		user:  user,
		nodes: map[string]fakeNode{"/": {dir: true}},
	}
}

func (f *fakeDav) addDir(p string) {
	f.nodes[p] = fakeNode{dir: true}
}

func (f *fakeDav) addFile(p, content, modified string) {
	f.nodes[p] = fakeNode{content: []byte(content), modified: modified}
}

func (f *fakeDav) record(method, p string) {
	f.calls = append(f.calls, method+" "+p)
}

func (f *fakeDav) callsFor(method string) []string {
	var out []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, method+" ") {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeDav) Username() string { return f.user }

func (f *fakeDav) canonical(p string) string {
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func (f *fakeDav) Propfind(p string) ([]webdav.Record, error) {
	f.record("PROPFIND", p)
	target := f.canonical(p)
	node, ok := f.nodes[target]
	if !ok {
		return nil, webdav.ErrNotFound
	}

	if !node.dir {
		return []webdav.Record{{
			Path:         target,
			Size:         int64(len(node.content)),
			LastModified: node.modified,
		}}, nil
	}

	records := []webdav.Record{{Path: target + "/", Dir: true}}
	var children []string
	for path := range f.nodes {
		if path != target && rpath.Dir(path) == target {
			children = append(children, path)
		}
	}
	sort.Strings(children)
	for _, child := range children {
		childNode := f.nodes[child]
		rec := webdav.Record{
			Path:         child,
			Dir:          childNode.dir,
			Size:         int64(len(childNode.content)),
			LastModified: childNode.modified,
		}
		if rec.Dir {
			rec.Path += "/"
		}
		records = append(records, rec)
	}
	return records, nil
}

func (f *fakeDav) Get(p string) (io.ReadCloser, int64, error) {
	f.record("GET", p)
	node, ok := f.nodes[f.canonical(p)]
	if !ok {
		return nil, 0, webdav.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(node.content)), int64(len(node.content)), nil
}

func (f *fakeDav) Put(p string, body io.Reader, size int64) (int, error) {
	f.record("PUT", p)
	content, rErr := io.ReadAll(body)
	if rErr != nil {
		return 0, rErr
	}
	f.nodes[f.canonical(p)] = fakeNode{content: content}
	return http.StatusCreated, nil
}

func (f *fakeDav) Mkcol(p string) (int, error) {
	f.record("MKCOL", p)
	target := f.canonical(p)
	if _, ok := f.nodes[target]; ok {
		return http.StatusMethodNotAllowed, nil
	}
	if _, ok := f.nodes[rpath.Dir(target)]; !ok {
		return 0, &webdav.StatusError{Code: http.StatusConflict, Status: "409 Conflict"}
	}
	f.addDir(target)
	return http.StatusCreated, nil
}

func (f *fakeDav) Delete(p string) (int, error) {
	f.record("DELETE", p)
	target := f.canonical(p)
	if _, ok := f.nodes[target]; !ok {
		return 0, webdav.ErrNotFound
	}
	for path := range f.nodes {
		if path == target || strings.HasPrefix(path, target+"/") {
			delete(f.nodes, path)
		}
	}
	return http.StatusNoContent, nil
}

func (f *fakeDav) Copy(src, dst string, overwrite bool) (int, error) {
	f.record("COPY", src)
	return f.copyTree(src, dst, false)
}

func (f *fakeDav) Move(src, dst string, overwrite bool) (int, error) {
	f.record("MOVE", src)
	return f.copyTree(src, dst, true)
}

func (f *fakeDav) copyTree(src, dst string, move bool) (int, error) {
	src, dst = f.canonical(src), f.canonical(dst)
	node, ok := f.nodes[src]
	if !ok {
		return 0, webdav.ErrNotFound
	}
	f.nodes[dst] = node
	for path, child := range f.nodes {
		if strings.HasPrefix(path, src+"/") {
			f.nodes[dst+strings.TrimPrefix(path, src)] = child
		}
	}
	if move {
		for path := range f.nodes {
			if path == src || strings.HasPrefix(path, src+"/") {
				delete(f.nodes, path)
			}
		}
	}
	return http.StatusCreated, nil
}

// fakeUI records output and answers confirmations from a script
type fakeUI struct {
	out     bytes.Buffer
	infos   []string
	warns   []string
	errors  []string
	oks     []string
	prompts []string
	answers []bool
	// confirmErr aborts the next confirmation, simulating an interrupt
	confirmErr error
}

func (u *fakeUI) PrintInfo(format string, args ...interface{}) {
	u.infos = append(u.infos, fmt.Sprintf(format, args...))
}

func (u *fakeUI) PrintWarn(format string, args ...interface{}) {
	u.warns = append(u.warns, fmt.Sprintf(format, args...))
}

func (u *fakeUI) PrintError(format string, args ...interface{}) {
	u.errors = append(u.errors, fmt.Sprintf(format, args...))
}

func (u *fakeUI) PrintSuccess(format string, args ...interface{}) {
	u.oks = append(u.oks, fmt.Sprintf(format, args...))
}

func (u *fakeUI) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(&u.out, format, args...)
}

func (u *fakeUI) Confirm(prompt string, defaultYes bool) (bool, error) {
	u.prompts = append(u.prompts, prompt)
	if u.confirmErr != nil {
		return false, u.confirmErr
	}
	if len(u.answers) == 0 {
		return defaultYes, nil
	}
	answer := u.answers[0]
	u.answers = u.answers[1:]
	return answer, nil
}

func (u *fakeUI) Width() int { return 80 }

func (u *fakeUI) Writer() io.Writer { return &u.out }

func newTestContext(dav Dav, localCwd string) (*ExecutionContext, *fakeUI) {
	ui := &fakeUI{}
	session := NewSession(dav, localCwd)
	return NewExecutionContext(session, ui, NewCommandRegistry()), ui
}
