package fsutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("<div></div>\n"), 0640); err != nil {
			t.Fatalf("setup: %v", err)
		}

		content, info, err := ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if string(content) != "<div></div>\n" {
			t.Errorf("content = %q", content)
		}
		if info == nil {
			t.Fatal("expected non-nil FileInfo")
		}
		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}
		if info.Mode.Perm() != 0640 {
			t.Errorf("Mode = %v, want 0640", info.Mode.Perm())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, ErrIsDirectory) {
			t.Errorf("err = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := ReadFile(ctx, "irrelevant")
		if err == nil {
			t.Error("expected error for cancelled context")
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("unmodified file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("<div>"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}

		modified, err := CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified: %v", err)
		}
		if modified {
			t.Error("unmodified file reported as modified")
		}
	})

	t.Run("modified after read", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("<div>"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}

		if err := os.WriteFile(path, []byte("<span>"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}

		modified, err := CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified: %v", err)
		}
		if !modified {
			t.Error("rewritten file not reported as modified")
		}
	})

	t.Run("same size different content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("<div>"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}

		// Keep size and mod time but change content; the hash tier catches it.
		if err := os.WriteFile(path, []byte("<dov>"), 0644); err != nil {
			t.Fatalf("rewrite: %v", err)
		}
		if err := os.Chtimes(path, time.Now(), info.ModTime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}

		modified, err := CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified: %v", err)
		}
		if !modified {
			t.Error("content change not caught by hash check")
		}
	})

	t.Run("deleted file counts as modified", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		if err := os.WriteFile(path, []byte("<div>"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, info, err := ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}

		if err := os.Remove(path); err != nil {
			t.Fatalf("remove: %v", err)
		}

		modified, err := CheckModified(context.Background(), info)
		if err != nil {
			t.Fatalf("CheckModified: %v", err)
		}
		if !modified {
			t.Error("deleted file not reported as modified")
		}
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		_, err := CheckModified(context.Background(), nil)
		if !errors.Is(err, ErrNilFileInfo) {
			t.Errorf("err = %v, want ErrNilFileInfo", err)
		}
	})
}
