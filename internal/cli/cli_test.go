package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/repository"
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

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "mvnsrc" {
		t.Errorf("Use = %q, want %q", root.Use, "mvnsrc")
	}

	for _, name := range []string{"extract", "tree", "completion"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("RootCommand() is missing the %q subcommand", name)
		}
	}

	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("RootCommand() is missing the --config flag")
	}
}

func TestResolveProjectDir(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveProjectDir(dir)
	if err != nil {
		t.Fatalf("resolveProjectDir(%q) error: %v", dir, err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("resolveProjectDir(%q) = %q, want an absolute path", dir, got)
	}

	if _, err := resolveProjectDir(filepath.Join(dir, "missing")); err == nil {
		t.Error("resolveProjectDir() accepted a missing directory")
	}

	file := filepath.Join(dir, "pom.xml")
	if err := os.WriteFile(file, []byte("<project/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := resolveProjectDir(file); err == nil {
		t.Error("resolveProjectDir() accepted a plain file")
	}
}

func TestResolveOutputDir(t *testing.T) {
	t.Setenv(envOutput, "")
	project := t.TempDir()
	abs := filepath.Join(t.TempDir(), "elsewhere")

	tests := []struct {
		name string
		flag string
		cfg  Config
		want string
	}{
		{"default", "", Config{}, filepath.Join(project, "third")},
		{"relative flag joins project", "out", Config{}, filepath.Join(project, "out")},
		{"absolute flag wins", abs, Config{}, abs},
		{"config fallback", "", Config{Output: "src"}, filepath.Join(project, "src")},
		{"flag beats config", "out", Config{Output: "src"}, filepath.Join(project, "out")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveOutputDir(tt.flag, tt.cfg, project); got != tt.want {
				t.Errorf("resolveOutputDir(%q) = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}

	t.Run("environment beats config", func(t *testing.T) {
		t.Setenv(envOutput, "envdir")
		want := filepath.Join(project, "envdir")
		if got := resolveOutputDir("", Config{Output: "src"}, project); got != want {
			t.Errorf("resolveOutputDir() = %q, want %q", got, want)
		}
	})
}

func TestResolveRepositoryRoot(t *testing.T) {
	t.Setenv(envRepository, "")

	if got := resolveRepositoryRoot("/r-flag", Config{Repository: "/r-cfg"}); got != "/r-flag" {
		t.Errorf("flag should win, got %q", got)
	}
	if got := resolveRepositoryRoot("", Config{Repository: "/r-cfg"}); got != "/r-cfg" {
		t.Errorf("config should win over default, got %q", got)
	}
	if got := resolveRepositoryRoot("", Config{}); got != repository.DefaultRoot() {
		t.Errorf("want default root, got %q", got)
	}

	t.Setenv(envRepository, "/r-env")
	if got := resolveRepositoryRoot("", Config{Repository: "/r-cfg"}); got != "/r-env" {
		t.Errorf("environment should win over config, got %q", got)
	}
}

func TestResolveMavenExplicit(t *testing.T) {
	requireShell(t)

	mvn := writeStub(t, t.TempDir(), "mvn", `echo "Apache Maven 3.9.6"`)

	got, err := resolveMaven(context.Background(), mvn)
	if err != nil {
		t.Fatalf("resolveMaven(%q) error: %v", mvn, err)
	}
	if got != mvn {
		t.Errorf("resolveMaven() = %q, want %q", got, mvn)
	}
}

func TestResolveMavenExplicitUnusable(t *testing.T) {
	requireShell(t)

	_, err := resolveMaven(context.Background(), filepath.Join(t.TempDir(), "mvn"))
	if err == nil {
		t.Fatal("resolveMaven() accepted a missing executable")
	}
	if !errors.Is(err, errors.ErrCodeCommandNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeCommandNotFound)
	}
}

func TestNewDecompiler(t *testing.T) {
	t.Setenv(envDecompiler, "")

	if d := newDecompiler("", Config{}); d != nil {
		t.Error("newDecompiler() built a decompiler without a configured jar")
	}

	if d := newDecompiler(filepath.Join(t.TempDir(), "missing.jar"), Config{}); d != nil {
		t.Error("newDecompiler() built a decompiler for a missing jar")
	}

	jar := filepath.Join(t.TempDir(), "fernflower.jar")
	if err := os.WriteFile(jar, []byte("PK"), 0o644); err != nil {
		t.Fatal(err)
	}
	if d := newDecompiler(jar, Config{}); d == nil {
		t.Error("newDecompiler() rejected an existing jar")
	}
}
