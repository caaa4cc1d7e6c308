package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/davebream/mcpcall/internal/config"
	"github.com/davebream/mcpcall/internal/logging"
	"github.com/davebream/mcpcall/internal/protocol"
	"github.com/davebream/mcpcall/internal/render"
	"github.com/davebream/mcpcall/internal/transport"
	"github.com/spf13/cobra"
)

// newInvoker is a seam for tests: protocol command tests swap it for a
// stub so no subprocess is ever launched.
var newInvoker = func(r *transport.Runner) transport.Invoker { return r }

// runRequest is the shared tail of every protocol command: resolve the
// target server, send the request, print the outcome.
func runRequest(cmd *cobra.Command, msg *protocol.Message) error {
	logger, cleanup := setupLogger()
	defer cleanup()

	runner, err := buildRunner(logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reqLine, err := msg.Serialize()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "→ Request: %s\n\n", reqLine)

	logger.Info("sending request", "method", msg.Method, "command", runner.Command)

	result, err := newInvoker(runner).Invoke(cmd.Context(), msg)
	if err != nil {
		// A killed-on-timeout server may still have left a diagnostic.
		if errors.Is(err, transport.ErrTimeout) && result != nil && render.StderrLooksLikeError(result.Stderr) {
			fmt.Fprintf(out, "Errors: %s\n", result.Stderr)
		}
		logger.Error("invocation failed", "method", msg.Method, "error", err)
		return err
	}

	printResult(out, result)
	return nil
}

func printResult(out io.Writer, result *transport.Result) {
	line := render.FirstLine(result.Stdout)
	if pretty, ok := render.PrettyJSON(line); ok {
		fmt.Fprintln(out, "← Response:")
		fmt.Fprintln(out, pretty)
	} else {
		fmt.Fprintln(out, "No response received")
	}

	if render.StderrLooksLikeError(result.Stderr) {
		fmt.Fprintf(out, "\nErrors: %s\n", result.Stderr)
	}
}

// buildRunner resolves the server launch spec: --command beats
// --server beats the config default.
func buildRunner(logger *slog.Logger) (*transport.Runner, error) {
	timeout := flagTimeout

	if flagCommand != "" {
		fields := strings.Fields(flagCommand)
		if len(fields) == 0 {
			return nil, fmt.Errorf("--command is empty")
		}
		if timeout == 0 {
			timeout = transport.DefaultTimeout
		}
		return &transport.Runner{
			Command: fields[0],
			Args:    fields[1:],
			Timeout: timeout,
			Logger:  logger,
		}, nil
	}

	path, err := config.FindConfigFile()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("no server to launch: pass --command or create a config (%v)", err)
	}

	sc, err := cfg.Server(flagServer)
	if err != nil {
		return nil, err
	}

	if timeout == 0 {
		timeout, err = cfg.ParseTimeout(transport.DefaultTimeout)
		if err != nil {
			return nil, err
		}
	}

	return &transport.Runner{
		Command: sc.Command,
		Args:    sc.Args,
		Env:     config.ResolveEnv(sc.Env),
		Timeout: timeout,
		Logger:  logger,
	}, nil
}

// setupLogger opens the invocation log. Logging failures never block
// the actual call; we fall back to a discard logger.
func setupLogger() (*slog.Logger, func()) {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}

	logDir, err := config.LogDir()
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	if err := config.EnsureDir(logDir, 0700); err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logger, cleanup, err := logging.Setup(logDir, level, flagVerbose)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}
	return logging.InvocationLogger(logger), cleanup
}
