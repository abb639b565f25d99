package maven

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matzehuels/mvnsrc/pkg/errors"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests rely on sh stubs")
	}
}

// writeStub drops an executable script at dir/name and returns its path.
func writeStub(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindFromMavenHome(t *testing.T) {
	requireShell(t)

	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	if err := os.Mkdir(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	writeStub(t, bin, "mvn", `echo "Apache Maven 3.9.6"`)
	t.Setenv("MAVEN_HOME", home)

	got, err := Find(context.Background())
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	want := filepath.Join(bin, "mvn")
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestFindFromPath(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	writeStub(t, dir, "mvn", `echo "Apache Maven 3.8.1"`)
	t.Setenv("MAVEN_HOME", "")
	t.Setenv("PATH", dir)

	got, err := Find(context.Background())
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if got != "mvn" {
		t.Errorf("Find() = %q, want bare %q when resolved from PATH", got, "mvn")
	}
}

func TestFindNotInstalled(t *testing.T) {
	requireShell(t)

	t.Setenv("MAVEN_HOME", "")
	t.Setenv("PATH", t.TempDir())

	_, err := Find(context.Background())
	if err == nil {
		t.Fatal("Find() succeeded with no maven anywhere")
	}
	if errors.GetCode(err) != errors.ErrCodeCommandNotFound {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeCommandNotFound)
	}
}

func TestFindRejectsImpostor(t *testing.T) {
	requireShell(t)

	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	if err := os.Mkdir(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	writeStub(t, bin, "mvn", `echo "Gradle 8.5"`)
	t.Setenv("MAVEN_HOME", home)
	t.Setenv("PATH", t.TempDir())

	_, err := Find(context.Background())
	if err == nil {
		t.Fatal("Find() accepted a binary that is not Maven")
	}
}

func TestAvailable(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	tests := []struct {
		name string
		cmd  string
		want bool
	}{
		{"real maven", writeStub(t, dir, "good", `echo "Apache Maven 3.9.6 (abc123)"`), true},
		{"wrong banner", writeStub(t, dir, "banner", `echo "Apache Ant 1.10"`), false},
		{"failing probe", writeStub(t, dir, "broken", `exit 1`), false},
		{"missing binary", filepath.Join(dir, "nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Available(context.Background(), tt.cmd); got != tt.want {
				t.Errorf("Available(%q) = %t, want %t", tt.cmd, got, tt.want)
			}
		})
	}
}
