package files

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestAtomicWrite_ReplacesContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "history.json")

	if err := AtomicWrite(path, []byte(`[{"id":"1"}]`), 0600); err != nil {
		t.Fatalf("initial write failed: %v", err)
	}
	if err := AtomicWrite(path, []byte(`[{"id":"2"}]`), 0600); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(content), `"2"`) || strings.Contains(string(content), `"1"`) {
		t.Errorf("content not fully replaced: %s", string(content))
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "history.json")
	if err := AtomicWrite(path, []byte("[]"), 0600); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestRejectSymlinkPath_Target(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	target := filepath.Join(tmp, "target.txt")
	if err := os.WriteFile(target, []byte("original"), 0600); err != nil {
		t.Fatalf("write target: %v", err)
	}
	link := filepath.Join(tmp, "out.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := RejectSymlinkPath(link); err == nil {
		t.Fatalf("expected symlink rejection")
	}
}

func TestRejectSymlinkPath_ParentDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink not permitted on Windows")
	}
	tmp := t.TempDir()
	realDir := filepath.Join(tmp, "real")
	if err := os.MkdirAll(realDir, 0700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	linkDir := filepath.Join(tmp, "link")
	if err := os.Symlink(realDir, linkDir); err != nil {
		t.Fatalf("symlink dir: %v", err)
	}
	path := filepath.Join(linkDir, "out.txt")

	if err := RejectSymlinkPath(path); err == nil {
		t.Fatalf("expected symlinked directory rejection")
	}
}

func TestRejectSymlinkPath_MissingFileAllowed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-yet-written.json")
	if err := RejectSymlinkPath(path); err != nil {
		t.Fatalf("missing destination should be allowed: %v", err)
	}
}
