package command

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTool creates a fake executable (or plain file) in dir
func writeTool(t *testing.T, dir, name string, executable bool) string {
	t.Helper()

	mode := os.FileMode(0644)
	if executable {
		mode = 0755
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), mode); err != nil {
		t.Fatalf("failed to write tool %s: %v", name, err)
	}
	return path
}

func TestResolverResolve(t *testing.T) {
	dir := t.TempDir()
	want := writeTool(t, dir, "lame", true)
	writeTool(t, dir, "notes.txt", false)

	r := NewResolverDirs([]string{dir})

	got, ok := r.Resolve("lame")
	if !ok {
		t.Fatal("expected lame to resolve")
	}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	// Non-executable files do not count
	if _, ok := r.Resolve("notes.txt"); ok {
		t.Error("expected non-executable file to not resolve")
	}

	// Unknown names do not resolve
	if _, ok := r.Resolve("oggenc"); ok {
		t.Error("expected unknown name to not resolve")
	}
}

func TestResolverFirstDirectoryWins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := writeTool(t, first, "flac", true)
	writeTool(t, second, "flac", true)

	r := NewResolverDirs([]string{first, second})

	got, ok := r.Resolve("flac")
	if !ok {
		t.Fatal("expected flac to resolve")
	}
	if got != want {
		t.Errorf("expected first directory to win, got %s", got)
	}
}

func TestResolverSkipsMissingDirectories(t *testing.T) {
	dir := t.TempDir()
	writeTool(t, dir, "oggdec", true)

	r := NewResolverDirs([]string{filepath.Join(dir, "does-not-exist"), "", dir})

	if _, ok := r.Resolve("oggdec"); !ok {
		t.Error("expected resolver to skip unreadable entries and keep scanning")
	}
}

func TestResolverRefresh(t *testing.T) {
	dir := t.TempDir()
	r := NewResolverDirs([]string{dir})

	if _, ok := r.Resolve("wavpack"); ok {
		t.Fatal("expected empty directory to resolve nothing")
	}

	// Tool appears after the initial scan; only Refresh picks it up
	writeTool(t, dir, "wavpack", true)
	if _, ok := r.Resolve("wavpack"); ok {
		t.Error("expected stale cache before refresh")
	}

	r.Refresh()
	if _, ok := r.Resolve("wavpack"); !ok {
		t.Error("expected wavpack to resolve after refresh")
	}
}
