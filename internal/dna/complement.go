// internal/dna/complement.go
package dna

// complement maps each accepted base to its pairing partner. Zero marks a
// byte outside the alphabet.
var complement [256]byte

func init() {
	for _, pair := range []string{"AT", "GC", "at", "gc"} {
		complement[pair[0]] = pair[1]
		complement[pair[1]] = pair[0]
	}
}

// ReverseComplement returns the reverse complement of seq. Every character
// must be one of A, T, G, C in either case; case is kept per base. The empty
// sequence maps to itself. If any character is invalid, nothing is
// transformed and the returned error is an *InvalidSequenceError.
func ReverseComplement(seq string) (string, error) {
	c, err := Complement(seq)
	if err != nil {
		return "", err
	}
	out := []byte(c)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// Complement substitutes every base with its partner without reversing.
// The whole sequence is validated before any base is mapped.
func Complement(seq string) (string, error) {
	if err := Validate(seq); err != nil {
		return "", err
	}
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complement[seq[i]]
	}
	return string(out), nil
}

// IsPalindromic reports whether seq equals its own reverse complement,
// as restriction sites like GAATTC (EcoRI) do.
func IsPalindromic(seq string) (bool, error) {
	rc, err := ReverseComplement(seq)
	if err != nil {
		return false, err
	}
	return rc == seq, nil
}
