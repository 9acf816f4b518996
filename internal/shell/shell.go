// Package shell runs the interactive read-transform-print loop.
package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"revcomp/internal/writers"
)

type Options struct {
	Prompt    string
	ExitWords []string // compared case-insensitively; the empty line always exits
	Banner    bool
	Format    string // writers format
	Writer    writers.Options
	Logger    *slog.Logger
}

// Stats summarizes one session.
type Stats struct {
	Transformed int
	Rejected    int
}

// Run reads sequences from in until an exit word, the empty line, EOF, or
// ctx cancellation. Prompt, banner and farewell are printed only for text
// output so json/jsonl sessions emit records alone.
func Run(ctx context.Context, in io.Reader, out io.Writer, opt Options) (Stats, error) {
	var st Stats
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opt.Format == "" {
		opt.Format = "text"
	}
	chrome := opt.Format == "text"

	if !writers.Known(opt.Format) {
		return st, fmt.Errorf("unknown output format %q", opt.Format)
	}
	if chrome && opt.Banner {
		if err := writers.Banner(out, opt.Writer, describeExit(opt.ExitWords)); err != nil {
			return st, err
		}
	}

	// Stops the reader once the loop returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, errc := Lines(ctx, in)

	goodbye := func(prefix string) error {
		if !chrome {
			return nil
		}
		_, err := fmt.Fprint(out, prefix+"Goodbye!\n")
		return err
	}

	log.Info("shell.start", "format", opt.Format)
	for {
		if chrome {
			if _, err := fmt.Fprint(out, opt.Prompt); err != nil {
				return st, err
			}
		}

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			log.Info("shell.interrupted", "transformed", st.Transformed, "rejected", st.Rejected)
			_ = goodbye("\n")
			return st, ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			err := <-errc
			log.Info("shell.eof", "transformed", st.Transformed, "rejected", st.Rejected, "err", err)
			if gerr := goodbye("\n"); err == nil {
				err = gerr
			}
			return st, err
		}

		seq := strings.TrimSpace(line)
		if isExit(seq, opt.ExitWords) {
			log.Info("shell.exit", "transformed", st.Transformed, "rejected", st.Rejected)
			return st, goodbye("")
		}

		r := writers.Transform(seq)
		if r.Err != nil {
			st.Rejected++
			log.Debug("transform.rejected", "input", seq, "err", r.Err)
		} else {
			st.Transformed++
			log.Debug("transform.ok", "length", len(seq))
		}
		if err := writers.WriteResult(opt.Format, out, r, opt.Writer); err != nil {
			return st, err
		}
	}
}

func isExit(s string, words []string) bool {
	if s == "" {
		return true
	}
	for _, w := range words {
		if strings.EqualFold(s, w) {
			return true
		}
	}
	return false
}

// describeExit renders exit words as 'quit' or 'exit'.
func describeExit(words []string) string {
	if len(words) == 0 {
		return "an empty line"
	}
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
