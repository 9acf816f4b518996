package dna

import (
	"errors"
	"sort"
	"strings"
)

// ErrInvalidSequence classifies every *InvalidSequenceError.
var ErrInvalidSequence = errors.New("invalid sequence")

// InvalidSequenceError lists every distinct character of a rejected
// sequence that is not A, T, G or C (either case), in code point order.
type InvalidSequenceError struct {
	Invalid []rune
}

func (e *InvalidSequenceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	quoted := make([]string, len(e.Invalid))
	for i, r := range e.Invalid {
		quoted[i] = "'" + string(r) + "'"
	}
	return "invalid characters found in sequence: {" + strings.Join(quoted, ", ") + "}"
}

func (e *InvalidSequenceError) Is(target error) bool {
	return target == ErrInvalidSequence
}

// IsValidBase reports whether r belongs to the accepted alphabet.
func IsValidBase(r rune) bool {
	return r >= 0 && r < 256 && complement[r] != 0
}

// Validate checks seq against the alphabet. The whole sequence is scanned
// so the error names all offending characters at once.
func Validate(seq string) error {
	ok := true
	for i := 0; i < len(seq); i++ {
		if complement[seq[i]] == 0 {
			ok = false
			break
		}
	}
	if ok {
		return nil
	}

	seen := map[rune]struct{}{}
	var bad []rune
	for _, r := range seq {
		if IsValidBase(r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		bad = append(bad, r)
	}
	sort.Slice(bad, func(i, j int) bool { return bad[i] < bad[j] })
	return &InvalidSequenceError{Invalid: bad}
}
