package writers

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"revcomp/internal/jsonutil"
	"revcomp/pkg/api"
)

// Reuse a 64 KiB buffered writer across stream writers to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StartResultWriter spins up a writer goroutine for Result items.
// text and jsonl stream record by record; json collects everything into
// one array written when the input channel closes.
func StartResultWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if opt.Color && opt.Renderer == nil {
		// Detect the terminal through out, not the pooled buffer.
		opt.Renderer = lipgloss.NewRenderer(out)
	}
	in := make(chan Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		// Rebind to the actual output while keeping the pooled buffer.
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		err := drain(bw, in, format, opt)
		if ferr := bw.Flush(); err == nil && ferr != nil && !IsBrokenPipe(ferr) {
			err = ferr
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

func drain(w io.Writer, in <-chan Result, format string, opt Options) error {
	if format == "json" {
		list := []api.ResultV1{}
		for r := range in {
			list = append(list, ToAPIResult(r))
		}
		return jsonutil.EncodePretty(w, list)
	}
	if !Known(format) {
		for range in {
		}
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	for r := range in {
		if err := WriteResult(format, w, r, opt); err != nil {
			// Keep draining so the producer never blocks.
			for range in {
			}
			return err
		}
	}
	return nil
}
