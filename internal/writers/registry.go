// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"revcomp/internal/dna"
	"revcomp/pkg/api"
)

// Result is one transform outcome: either RC is set or Err is.
type Result struct {
	Input string
	RC    string
	Err   error
}

// Transform runs the reverse complement on seq and wraps the outcome.
func Transform(seq string) Result {
	rc, err := dna.ReverseComplement(seq)
	return Result{Input: seq, RC: rc, Err: err}
}

// Options tune presentation only.
type Options struct {
	Color bool
	// Renderer detects the terminal profile. Set it when w wraps the real
	// destination (buffers, pools) so styling still matches the terminal.
	Renderer *lipgloss.Renderer
}

type resultFunc func(w io.Writer, r Result, opt Options) error

// ResultWriters maps an output format to its handler.
// Register in init() blocks from the format files.
var ResultWriters = map[string]resultFunc{}

// RegisterResult is idempotent, last wins.
func RegisterResult(format string, fn resultFunc) { ResultWriters[format] = fn }

// WriteResult dispatches r to the writer registered for format.
func WriteResult(format string, w io.Writer, r Result, opt Options) error {
	fn, ok := ResultWriters[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r, opt)
}

// Formats lists registered formats in sorted order.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for k := range ResultWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a registered writer.
func Known(format string) bool {
	_, ok := ResultWriters[format]
	return ok
}

// ToAPIResult converts a Result to the stable wire schema (v1).
func ToAPIResult(r Result) api.ResultV1 {
	v := api.ResultV1{
		Input:             r.Input,
		ReverseComplement: r.RC,
		Length:            utf8.RuneCountInString(r.Input),
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
		var ise *dna.InvalidSequenceError
		if errors.As(r.Err, &ise) {
			for _, c := range ise.Invalid {
				v.Invalid = append(v.Invalid, string(c))
			}
		}
		return v
	}
	// The empty sequence is vacuously palindromic; the flag only marks
	// real sites.
	if r.Input != "" {
		v.Palindromic, _ = dna.IsPalindromic(r.Input)
	}
	return v
}
