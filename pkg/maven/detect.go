package maven

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/matzehuels/mvnsrc/pkg/errors"
	"github.com/matzehuels/mvnsrc/pkg/procutil"
)

// versionProbeTimeout bounds the `mvn --version` validation run.
const versionProbeTimeout = 10 * time.Second

// Find locates a working Maven executable.
//
// MAVEN_HOME takes priority: when set, $MAVEN_HOME/bin/mvn (mvn.cmd on
// Windows) is validated and returned as a full path. Otherwise mvn from
// PATH is validated and returned by bare name, leaving resolution to the
// OS on each invocation.
func Find(ctx context.Context) (string, error) {
	if home := os.Getenv("MAVEN_HOME"); strings.TrimSpace(home) != "" {
		candidate := filepath.Join(home, "bin", executableName())
		if _, err := os.Stat(candidate); err == nil && Available(ctx, candidate) {
			return candidate, nil
		}
	}

	name := executableName()
	if _, err := exec.LookPath(name); err == nil && Available(ctx, name) {
		return name, nil
	}

	return "", errors.New(errors.ErrCodeCommandNotFound,
		"maven not found: install Maven or set MAVEN_HOME")
}

// Available reports whether cmd responds to --version like a real Maven
// installation. A slow or wedged wrapper script is cut off after ten
// seconds and treated as unavailable.
func Available(ctx context.Context, cmd string) bool {
	res, err := procutil.Run(ctx, procutil.Options{
		Command: []string{cmd, "--version"},
		Timeout: versionProbeTimeout,
	})
	return err == nil && res.Success() && strings.Contains(res.Stdout, "Apache Maven")
}

func executableName() string {
	if runtime.GOOS == "windows" {
		return "mvn.cmd"
	}
	return "mvn"
}
