package console

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"davsh/pkg/webdav"
)

func TestCdChangesRemoteCwd(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")

	ctx, _ := newTestContext(dav, t.TempDir())
	cmd := &CdCommand{}

	if err := cmd.Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("cd returned error: %v", err)
	}
	if cwd := ctx.session.RemoteCwd(); cwd != "/docs" {
		t.Errorf("expected cwd /docs, got %q", cwd)
	}
}

func TestCdWithoutArgsGoesToRoot(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")

	ctx, _ := newTestContext(dav, t.TempDir())
	ctx.session.remoteCwd = "/docs"

	if err := (&CdCommand{}).Run(ctx, nil); err != nil {
		t.Fatalf("cd returned error: %v", err)
	}
	if cwd := ctx.session.RemoteCwd(); cwd != "/" {
		t.Errorf("expected cwd /, got %q", cwd)
	}
}

func TestCdMissingAndFileTargets(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addFile("/notes.txt", "x", "")

	ctx, _ := newTestContext(dav, t.TempDir())
	cmd := &CdCommand{}

	if err := cmd.Run(ctx, []string{"nope"}); err == nil || !strings.Contains(err.Error(), "no such file") {
		t.Errorf("expected missing-target error, got %v", err)
	}
	if err := cmd.Run(ctx, []string{"notes.txt"}); err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("expected not-a-directory error, got %v", err)
	}
	// A failed cd never moves the cwd
	if cwd := ctx.session.RemoteCwd(); cwd != "/" {
		t.Errorf("cwd moved on failed cd: %q", cwd)
	}
}

func TestPwdPrintsRemoteCwd(t *testing.T) {
	dav := newFakeDav("alice")
	ctx, ui := newTestContext(dav, t.TempDir())
	ctx.session.remoteCwd = "/docs/reports"

	if err := (&PwdCommand{}).Run(ctx, nil); err != nil {
		t.Fatalf("pwd returned error: %v", err)
	}
	if !strings.Contains(ui.out.String(), "/docs/reports") {
		t.Errorf("pwd output missing cwd: %q", ui.out.String())
	}
}

func TestLsEmptyDirectory(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&LsCommand{}).Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}
	if len(ui.infos) != 1 || !strings.Contains(ui.infos[0], "empty") {
		t.Errorf("expected empty-directory notice, got %v", ui.infos)
	}
}

func TestLsFileTargetListsJustThatFile(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addFile("/notes.txt", "hello", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&LsCommand{}).Run(ctx, []string{"notes.txt"}); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}
	if !strings.Contains(ui.out.String(), "notes.txt") {
		t.Errorf("expected file in output: %q", ui.out.String())
	}
}

func TestLsLongHumanReadable(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")
	dav.addDir("/docs/notes")
	dav.addFile("/docs/photo.jpg", strings.Repeat("x", 1024), "Mon, 02 Jan 2006 15:04:05 GMT")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&LsCommand{}).Run(ctx, []string{"-lh", "docs"}); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}

	out := ui.out.String()
	if !strings.Contains(out, "1.0K") {
		t.Errorf("expected human readable size: %q", out)
	}
	// Directories sort before files
	if strings.Index(out, "notes/") > strings.Index(out, "photo.jpg") {
		t.Errorf("expected notes/ before photo.jpg: %q", out)
	}
}

func TestLsMultiplePathsPrintHeaders(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")
	dav.addFile("/docs/a.txt", "a", "")
	dav.addDir("/photos")
	dav.addFile("/photos/b.jpg", "b", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&LsCommand{}).Run(ctx, []string{"docs", "photos"}); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}

	out := ui.out.String()
	if !strings.Contains(out, "docs:") || !strings.Contains(out, "photos:") {
		t.Errorf("expected per-path headers: %q", out)
	}
}

func TestLsMissingPathReportsAndContinues(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")
	dav.addFile("/docs/a.txt", "a", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&LsCommand{}).Run(ctx, []string{"nope", "docs"}); err != nil {
		t.Fatalf("ls returned error: %v", err)
	}
	if len(ui.errors) != 1 {
		t.Errorf("expected one error line, got %v", ui.errors)
	}
	if !strings.Contains(ui.out.String(), "a.txt") {
		t.Error("later path must still be listed")
	}
}

func TestMkdirCreatesAndReportsExisting(t *testing.T) {
	dav := newFakeDav("alice")

	ctx, ui := newTestContext(dav, t.TempDir())
	cmd := &MkdirCommand{}

	if err := cmd.Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("mkdir returned error: %v", err)
	}
	if _, ok := dav.nodes["/docs"]; !ok {
		t.Fatal("expected /docs to exist")
	}
	if len(ui.oks) != 1 {
		t.Errorf("expected one success line, got %v", ui.oks)
	}

	if err := cmd.Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("mkdir returned error: %v", err)
	}
	if len(ui.warns) != 1 || !strings.Contains(ui.warns[0], "already exists") {
		t.Errorf("expected already-exists skip, got %v", ui.warns)
	}
}

func TestMkdirParents(t *testing.T) {
	dav := newFakeDav("alice")

	ctx, _ := newTestContext(dav, t.TempDir())
	if err := (&MkdirCommand{}).Run(ctx, []string{"-p", "a/b/c"}); err != nil {
		t.Fatalf("mkdir -p returned error: %v", err)
	}
	for _, p := range []string{"/a", "/a/b", "/a/b/c"} {
		if _, ok := dav.nodes[p]; !ok {
			t.Errorf("expected %s to exist", p)
		}
	}
}

func TestMkdirWithoutParentsFailsOnMissingParent(t *testing.T) {
	dav := newFakeDav("alice")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&MkdirCommand{}).Run(ctx, []string{"a/b"}); err != nil {
		t.Fatalf("mkdir returned error: %v", err)
	}
	if len(ui.errors) != 1 {
		t.Errorf("expected per-target failure, got %v", ui.errors)
	}
}

func TestRmForceSkipsConfirmation(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addFile("/a.txt", "a", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&RmCommand{}).Run(ctx, []string{"-f", "a.txt"}); err != nil {
		t.Fatalf("rm returned error: %v", err)
	}
	if len(ui.prompts) != 0 {
		t.Errorf("force delete must not prompt, got %v", ui.prompts)
	}
	if _, ok := dav.nodes["/a.txt"]; ok {
		t.Error("expected /a.txt to be deleted")
	}
}

func TestRmDeclineKeepsFile(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addFile("/a.txt", "a", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	ui.answers = []bool{false}

	if err := (&RmCommand{}).Run(ctx, []string{"a.txt"}); err != nil {
		t.Fatalf("rm returned error: %v", err)
	}
	if _, ok := dav.nodes["/a.txt"]; !ok {
		t.Error("declined delete must keep the file")
	}
	if len(ui.warns) != 1 {
		t.Errorf("expected a skip line, got %v", ui.warns)
	}
}

func TestRmMissingTarget(t *testing.T) {
	dav := newFakeDav("alice")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&RmCommand{}).Run(ctx, []string{"-f", "nope"}); err != nil {
		t.Fatalf("rm returned error: %v", err)
	}
	if len(ui.errors) != 1 || !strings.Contains(ui.errors[0], "no such file") {
		t.Errorf("expected missing-target failure, got %v", ui.errors)
	}
}

func TestRmdirRefusesNonEmpty(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")
	dav.addFile("/docs/a.txt", "a", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&RmdirCommand{}).Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("rmdir returned error: %v", err)
	}
	if len(ui.errors) != 1 || !strings.Contains(ui.errors[0], "not empty") {
		t.Errorf("expected not-empty failure, got %v", ui.errors)
	}
	if calls := dav.callsFor("DELETE"); len(calls) != 0 {
		t.Errorf("non-empty directory must never be deleted, got %v", calls)
	}
}

func TestRmdirDeletesEmptyDirectory(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")

	ctx, _ := newTestContext(dav, t.TempDir())
	if err := (&RmdirCommand{}).Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("rmdir returned error: %v", err)
	}
	if _, ok := dav.nodes["/docs"]; ok {
		t.Error("expected /docs to be deleted")
	}
}

func TestRmdirRefusesDirWithSameNamedChild(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/backup")
	// A child carrying the directory's own name is hidden from listings
	// but must still count against emptiness
	dav.addFile("/backup/backup", "payload", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&RmdirCommand{}).Run(ctx, []string{"/backup"}); err != nil {
		t.Fatalf("rmdir returned error: %v", err)
	}
	if len(ui.errors) != 1 || !strings.Contains(ui.errors[0], "not empty") {
		t.Errorf("expected not-empty failure, got %v", ui.errors)
	}
	if calls := dav.callsFor("DELETE"); len(calls) != 0 {
		t.Errorf("hidden child must block the delete, got %v", calls)
	}
}

func TestRmdirRefusesDirWithUsernameChild(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")
	dav.addFile("/docs/alice", "x", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&RmdirCommand{}).Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("rmdir returned error: %v", err)
	}
	if len(ui.errors) != 1 || !strings.Contains(ui.errors[0], "not empty") {
		t.Errorf("expected not-empty failure, got %v", ui.errors)
	}
	if calls := dav.callsFor("DELETE"); len(calls) != 0 {
		t.Errorf("hidden child must block the delete, got %v", calls)
	}
}

func TestRmdirRejectsFileTarget(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addFile("/notes.txt", "x", "")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&RmdirCommand{}).Run(ctx, []string{"notes.txt"}); err != nil {
		t.Fatalf("rmdir returned error: %v", err)
	}
	if len(ui.errors) != 1 || !strings.Contains(ui.errors[0], "not a directory") {
		t.Errorf("expected not-a-directory failure, got %v", ui.errors)
	}
}

func TestGetDownloadsFile(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addFile("/docs/notes.txt", "hello world", "")
	dav.addDir("/docs")

	localDir := t.TempDir()
	ctx, ui := newTestContext(dav, localDir)

	if err := (&GetCommand{}).Run(ctx, []string{"/docs/notes.txt"}); err != nil {
		t.Fatalf("get returned error: %v", err)
	}

	content, rErr := os.ReadFile(filepath.Join(localDir, "notes.txt"))
	if rErr != nil {
		t.Fatalf("downloaded file missing: %v", rErr)
	}
	if string(content) != "hello world" {
		t.Errorf("unexpected content: %q", content)
	}
	if len(ui.oks) != 1 || !strings.Contains(ui.oks[0], "notes.txt") {
		t.Errorf("expected a success line, got %v", ui.oks)
	}
}

func TestGetRejectsDirectory(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&GetCommand{}).Run(ctx, []string{"docs"}); err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if len(ui.errors) != 1 || !strings.Contains(ui.errors[0], "is a directory") {
		t.Errorf("expected directory rejection, got %v", ui.errors)
	}
}

func TestPutUploadsToRemoteCwd(t *testing.T) {
	dav := newFakeDav("alice")
	localDir := t.TempDir()
	localFile := filepath.Join(localDir, "report.txt")
	if err := os.WriteFile(localFile, []byte("quarterly"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, ui := newTestContext(dav, localDir)
	if err := (&PutCommand{}).Run(ctx, []string{"report.txt"}); err != nil {
		t.Fatalf("put returned error: %v", err)
	}
	node, ok := dav.nodes["/report.txt"]
	if !ok {
		t.Fatal("expected /report.txt to exist")
	}
	if string(node.content) != "quarterly" {
		t.Errorf("unexpected uploaded content: %q", node.content)
	}
	if len(ui.oks) != 1 {
		t.Errorf("expected a success line, got %v", ui.oks)
	}
}

func TestPutLastArgAsDestinationDirectory(t *testing.T) {
	dav := newFakeDav("alice")
	dav.addDir("/docs")

	localDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(localDir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, _ := newTestContext(dav, localDir)
	if err := (&PutCommand{}).Run(ctx, []string{"a.txt", "docs"}); err != nil {
		t.Fatalf("put returned error: %v", err)
	}
	if _, ok := dav.nodes["/docs/a.txt"]; !ok {
		t.Error("expected upload into /docs")
	}
}

func TestPutLastArgNotADirIsUploaded(t *testing.T) {
	dav := newFakeDav("alice")

	localDir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(localDir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ctx, _ := newTestContext(dav, localDir)
	if err := (&PutCommand{}).Run(ctx, []string{"a.txt", "b.txt"}); err != nil {
		t.Fatalf("put returned error: %v", err)
	}
	for _, p := range []string{"/a.txt", "/b.txt"} {
		if _, ok := dav.nodes[p]; !ok {
			t.Errorf("expected %s to exist", p)
		}
	}
}

func TestPutDestinationProbeFailureAbortsCommand(t *testing.T) {
	dav := &errDav{err: &webdav.StatusError{Code: 502, Status: "502 Bad Gateway"}}

	localDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(localDir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, _ := newTestContext(dav, localDir)
	err := (&PutCommand{}).Run(ctx, []string{"a.txt", "docs"})
	if err == nil {
		t.Fatal("expected the destination probe failure to surface")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected transport status in error, got %v", err)
	}
	if calls := dav.callsFor("PUT"); len(calls) != 0 {
		t.Errorf("no upload should be attempted, got %v", calls)
	}
}

func TestPutMissingLocalFile(t *testing.T) {
	dav := newFakeDav("alice")

	ctx, ui := newTestContext(dav, t.TempDir())
	if err := (&PutCommand{}).Run(ctx, []string{"nope.txt"}); err != nil {
		t.Fatalf("put returned error: %v", err)
	}
	if len(ui.errors) != 1 || !strings.Contains(ui.errors[0], "no such local file") {
		t.Errorf("expected missing-local failure, got %v", ui.errors)
	}
}

func TestLocalCdAndPwd(t *testing.T) {
	dav := newFakeDav("alice")
	localDir := t.TempDir()
	sub := filepath.Join(localDir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, ui := newTestContext(dav, localDir)
	if err := (&LocalCdCommand{}).Run(ctx, []string{"sub"}); err != nil {
		t.Fatalf("lcd returned error: %v", err)
	}
	if err := (&LocalPwdCommand{}).Run(ctx, nil); err != nil {
		t.Fatalf("lpwd returned error: %v", err)
	}
	if !strings.Contains(ui.out.String(), sub) {
		t.Errorf("expected lpwd to print %q, got %q", sub, ui.out.String())
	}

	if err := (&LocalCdCommand{}).Run(ctx, []string{"missing"}); err == nil {
		t.Error("lcd into a missing directory must fail")
	}
}

func TestLocalLs(t *testing.T) {
	dav := newFakeDav("alice")
	localDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(localDir, "x.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, ui := newTestContext(dav, localDir)
	if err := (&LocalLsCommand{}).Run(ctx, nil); err != nil {
		t.Fatalf("lls returned error: %v", err)
	}
	if !strings.Contains(ui.out.String(), "x.txt") {
		t.Errorf("expected x.txt in output: %q", ui.out.String())
	}
}

func TestRegistryAliasesAndAutocomplete(t *testing.T) {
	registry := initCommands(nil)

	if _, ok := registry.Get("dir"); !ok {
		t.Error("expected dir alias for ls")
	}
	if _, ok := registry.Get("quit"); !ok {
		t.Error("expected quit alias for exit")
	}

	if line, _ := registry.Autocomplete("rmd"); line != "rmdir" {
		t.Errorf("expected rmdir completion, got %q", line)
	}
}

func TestUnknownCommand(t *testing.T) {
	dav := newFakeDav("alice")
	ctx, _ := newTestContext(dav, t.TempDir())

	registry := initCommands(nil)
	if err := registry.Execute(ctx, "frobnicate", nil); err == nil {
		t.Fatal("expected unknown command error")
	}
}

func TestFieldsWithQuotes(t *testing.T) {
	got := fieldsWithQuotes(`get "my report.txt" notes.txt`)
	want := []string{"get", "my report.txt", "notes.txt"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
