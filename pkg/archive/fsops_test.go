package archive

import (
	"os"
	"path/filepath"
	"testing"
)

func seedTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCopyDir(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	seedTree(t, source, map[string]string{
		"Main.java":          "class Main {}",
		"org/json/JSON.java": "package org.json;",
	})

	target := filepath.Join(dir, "dst")
	if err := CopyDir(source, target); err != nil {
		t.Fatalf("CopyDir() error: %v", err)
	}

	if got := readFile(t, filepath.Join(target, "Main.java")); got != "class Main {}" {
		t.Errorf("Main.java = %q", got)
	}
	if got := readFile(t, filepath.Join(target, "org", "json", "JSON.java")); got != "package org.json;" {
		t.Errorf("JSON.java = %q", got)
	}
}

func TestCopyDirReplacesTarget(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src")
	seedTree(t, source, map[string]string{"fresh.txt": "new"})

	target := filepath.Join(dir, "dst")
	seedTree(t, target, map[string]string{"stale.txt": "old"})

	if err := CopyDir(source, target); err != nil {
		t.Fatalf("CopyDir() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "stale.txt")); !os.IsNotExist(err) {
		t.Error("stale file survived the copy")
	}
	if got := readFile(t, filepath.Join(target, "fresh.txt")); got != "new" {
		t.Errorf("fresh.txt = %q", got)
	}
}

func TestCopyDirMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := CopyDir(filepath.Join(dir, "absent"), filepath.Join(dir, "dst")); err == nil {
		t.Error("CopyDir() succeeded with a missing source")
	}
}

func TestCopyDirSourceIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CopyDir(file, filepath.Join(dir, "dst")); err == nil {
		t.Error("CopyDir() accepted a plain file as source")
	}
}

func TestRemoveTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "tree")
	seedTree(t, root, map[string]string{
		"a.txt":       "a",
		"sub/b.txt":   "b",
		"sub/c/d.txt": "d",
	})

	if err := RemoveTree(root); err != nil {
		t.Fatalf("RemoveTree() error: %v", err)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Error("tree still present after RemoveTree")
	}
}

func TestRemoveTreeMissing(t *testing.T) {
	if err := RemoveTree(filepath.Join(t.TempDir(), "never-existed")); err != nil {
		t.Errorf("RemoveTree() on missing path: %v", err)
	}
}
