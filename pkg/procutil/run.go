// Package procutil runs external commands with deadline enforcement and
// concurrent capture of both output streams.
//
// Maven and decompiler invocations can produce large amounts of interleaved
// output on stdout and stderr. Draining the two pipes sequentially can
// deadlock the parent once the child blocks on a full pipe buffer, so both
// streams are always drained concurrently while the parent waits for the
// process to exit or the deadline to expire, whichever comes first.
package procutil

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"strings"
	"time"

	"github.com/matzehuels/mvnsrc/pkg/errors"
)

// readerGrace bounds how long the output readers may keep flushing after the
// child process has exited or been killed. Output not flushed in time is lost.
const readerGrace = time.Second

// Result holds the outcome of one subprocess invocation.
type Result struct {
	ExitCode int    // Exit code of the process (-1 if killed before exiting)
	Stdout   string // Captured standard output
	Stderr   string // Captured standard error
	TimedOut bool   // True if the process was killed by the deadline
}

// Success reports whether the process exited with code zero within its
// deadline. A timed-out process never counts as successful, regardless of
// the exit code the kill produced.
func (r *Result) Success() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// Tail returns the output stream most useful for error reporting,
// preferring stderr over stdout and keeping only the last 2000 bytes of
// long streams.
func (r *Result) Tail() string {
	out := strings.TrimSpace(r.Stderr)
	if out == "" {
		out = strings.TrimSpace(r.Stdout)
	}
	const max = 2000
	if len(out) > max {
		out = "..." + out[len(out)-max:]
	}
	return out
}

// Options configures a single Run invocation.
type Options struct {
	Command []string      // argv; Command[0] is the executable
	Dir     string        // working directory; inherits the parent's when empty
	Timeout time.Duration // kill the process after this duration; 0 waits forever
}

// Run executes the command described by opts and returns the captured result.
//
// A non-zero exit code is a valid outcome, reported through Result rather
// than through the error return: callers decide via [Result.Success]. The
// error return is reserved for conditions where no meaningful result exists
// or the caller must stop: the command could not be spawned, the parent
// context was cancelled, or the deadline expired. In the timeout case the
// returned Result is still populated with whatever output was captured and
// carries TimedOut=true, alongside an error with code ErrCodeTimeout.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if len(opts.Command) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty command")
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, opts.Command[0], opts.Command[1:]...)
	cmd.Dir = opts.Dir

	// Both streams drain concurrently (the exec package copies each pipe in
	// its own goroutine). WaitDelay bounds how long those copies may run on
	// once the process is gone, e.g. when a grandchild inherited the pipe.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = readerGrace

	err := cmd.Run()

	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	timedOut := opts.Timeout > 0 &&
		stderrors.Is(runCtx.Err(), context.DeadlineExceeded) &&
		ctx.Err() == nil
	if err != nil && timedOut {
		res.TimedOut = true
		res.ExitCode = exitCode(cmd, err)
		return res, errors.New(errors.ErrCodeTimeout,
			"command timed out after %s: %s", opts.Timeout, strings.Join(opts.Command, " "))
	}

	if ctx.Err() != nil {
		res.ExitCode = exitCode(cmd, err)
		return res, ctx.Err()
	}

	switch {
	case err == nil:
		res.ExitCode = 0
	case stderrors.Is(err, exec.ErrWaitDelay):
		// The process exited but a reader did not finish within the grace
		// period. Keep the partial output.
		res.ExitCode = cmd.ProcessState.ExitCode()
	default:
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.Wrap(errors.ErrCodeProcess, err,
				"failed to run %s", opts.Command[0])
		}
		res.ExitCode = exitErr.ExitCode()
	}

	return res, nil
}

// exitCode extracts the exit code after Run has returned, tolerating the
// killed-before-exit case where no process state exists yet.
func exitCode(cmd *exec.Cmd, err error) int {
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	return -1
}
