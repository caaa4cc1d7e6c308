// Package transport launches an MCP server subprocess, feeds it one
// newline-terminated JSON-RPC request on stdin, and collects whatever
// it writes before exiting. Every invocation pays full startup cost:
// there is no process reuse and no session state.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/davebream/mcpcall/internal/protocol"
)

// DefaultTimeout bounds how long a single invocation waits for the
// server process to exit.
const DefaultTimeout = 30 * time.Second

// ErrTimeout is returned when the server does not exit within the
// timeout. The process is killed; partial output is still returned.
var ErrTimeout = errors.New("server did not respond within timeout")

// Result holds the raw output of one server invocation.
type Result struct {
	Stdout []byte
	Stderr []byte
}

// Invoker sends a single request to a server and returns its output.
type Invoker interface {
	Invoke(ctx context.Context, msg *protocol.Message) (*Result, error)
}

// Runner is the stdio Invoker: it spawns Command with Args for each
// request, resolved Env appended to the inherited environment.
type Runner struct {
	Command string
	Args    []string
	Env     map[string]string
	Timeout time.Duration
	Logger  *slog.Logger
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (r *Runner) timeout() time.Duration {
	if r.Timeout > 0 {
		return r.Timeout
	}
	return DefaultTimeout
}

// Invoke serializes msg, runs the server to completion, and returns
// captured stdout/stderr. A non-zero exit is not an error here: the
// caller decides what to surface based on the output itself. On
// timeout the process is killed and the partial Result is returned
// alongside ErrTimeout.
func (r *Runner) Invoke(ctx context.Context, msg *protocol.Message) (*Result, error) {
	data, err := msg.Serialize()
	if err != nil {
		return nil, fmt.Errorf("serialize request: %w", err)
	}
	data = append(data, '\n')

	ctx, cancel := context.WithTimeout(ctx, r.timeout())
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Command, r.Args...)
	cmd.Stdin = bytes.NewReader(data)
	// Don't let an orphaned grandchild holding the output pipes keep
	// Wait blocked after the process itself has been killed.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.Env = os.Environ()
	for k, v := range r.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	log := r.logger()
	start := time.Now()
	log.Debug("invoking server", "command", r.Command, "method", msg.Method)

	runErr := cmd.Run()
	elapsed := time.Since(start)

	result := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	if ctx.Err() == context.DeadlineExceeded {
		log.Warn("server timed out, killed",
			"command", r.Command, "method", msg.Method, "timeout", r.timeout())
		return result, fmt.Errorf("%w (%s)", ErrTimeout, r.timeout())
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// Server exited non-zero but may still have written a
			// response or a diagnostic; pass the output through.
			log.Debug("server exited non-zero",
				"command", r.Command, "code", exitErr.ExitCode(), "duration", elapsed)
			return result, nil
		}
		return nil, fmt.Errorf("start server %s: %w", r.Command, runErr)
	}

	log.Debug("server exited",
		"command", r.Command, "method", msg.Method,
		"duration", elapsed, "stdout_bytes", len(result.Stdout))
	return result, nil
}
