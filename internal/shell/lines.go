package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// MaxLine bounds one input line; the tool is meant for sequences typed or
// pasted by hand.
const MaxLine = 1 << 20

// ErrInput marks failures reading input, as opposed to writing output.
var ErrInput = errors.New("read input")

// Lines feeds r line by line on a goroutine so callers can select on
// ctx.Done() while a terminal read blocks. errc receives exactly one value
// once lines is closed: nil at EOF, ctx.Err() on cancellation, or an
// ErrInput-wrapped read error.
func Lines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64<<10), MaxLine)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		if err := sc.Err(); err != nil {
			errc <- fmt.Errorf("%w: %w", ErrInput, err)
			return
		}
		errc <- nil
	}()
	return lines, errc
}
