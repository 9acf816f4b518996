package dna

import "testing"

// Snapshot: every byte value against the complement table. Only the eight
// accepted bases may pass validation.
func TestComplementTable_Snapshot(t *testing.T) {
	var accepted []byte
	for b := 0; b < 256; b++ {
		if IsValidBase(rune(b)) {
			accepted = append(accepted, byte(b))
		}
	}
	if string(accepted) != "ACGTacgt" {
		t.Fatalf("accepted bases changed:\n got  %q\n want %q", accepted, "ACGTacgt")
	}

	got, err := ReverseComplement("ACGTacgt")
	if err != nil {
		t.Fatal(err)
	}
	if want := "acgtACGT"; got != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}
