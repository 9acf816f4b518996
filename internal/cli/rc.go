package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"revcomp/internal/logger"
	"revcomp/internal/shell"
	"revcomp/internal/writers"
)

func (a *app) rcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rc SEQUENCE [SEQUENCE...]",
		Short: "Reverse-complement the given sequences ('-' reads lines from stdin)",
		Example: `  revcomp rc ATCG GAATTC
  echo atcg | revcomp rc -o jsonl -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.transformAll(cmd.Context(), args)
		},
	}
}

// transformAll streams one Result per sequence through the configured
// writer. Rejected sequences are reported in the output and turn the exit
// code to 1.
func (a *app) transformAll(ctx context.Context, args []string) error {
	in, done := writers.StartResultWriter(a.stdout, a.cfg.Output, a.writerOptions(), 0)

	rejected := 0
	send := func(seq string) {
		r := writers.Transform(strings.TrimSpace(seq))
		if r.Err != nil {
			rejected++
			logger.L().Debug("transform.rejected", "input", r.Input, "err", r.Err)
		}
		in <- r
	}

	var readErr error
	for _, arg := range args {
		if arg != "-" {
			send(arg)
			continue
		}
		if readErr = eachLine(ctx, a.stdin, send); readErr != nil {
			break
		}
	}
	close(in)

	if err := outputErr(<-done); err != nil {
		return err
	}
	if readErr != nil {
		if ctx.Err() != nil {
			return readErr
		}
		return &exitError{code: exitUsage, err: fmt.Errorf("stdin: %w", readErr)}
	}
	if rejected > 0 {
		return &exitError{code: exitInvalid}
	}
	return nil
}

// eachLine calls fn for every non-blank line of r and returns early when
// ctx is cancelled, even while a read is blocked.
func eachLine(ctx context.Context, r io.Reader, fn func(string)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, errc := shell.Lines(ctx, r)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if line = strings.TrimSpace(line); line != "" {
				fn(line)
			}
		}
	}
}
