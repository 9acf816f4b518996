package writers

import (
	"io"

	"revcomp/internal/jsonutil"
)

func init() {
	RegisterResult("json", func(w io.Writer, r Result, _ Options) error {
		return jsonutil.EncodePretty(w, ToAPIResult(r))
	})
	RegisterResult("jsonl", func(w io.Writer, r Result, _ Options) error {
		return jsonutil.EncodeLine(w, ToAPIResult(r))
	})
}
