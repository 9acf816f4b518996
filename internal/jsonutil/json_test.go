package jsonutil

import (
	"bytes"
	"testing"
)

func TestEncodeLineKeepsMarkup(t *testing.T) {
	var b bytes.Buffer
	if err := EncodeLine(&b, map[string]string{"bad": "<&>"}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "{\"bad\":\"<&>\"}\n"; got != want {
		t.Fatalf("EncodeLine = %q, want %q", got, want)
	}
}

func TestEncodePrettyIndents(t *testing.T) {
	var b bytes.Buffer
	if err := EncodePretty(&b, map[string]int{"n": 1}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "{\n  \"n\": 1\n}\n"; got != want {
		t.Fatalf("EncodePretty = %q, want %q", got, want)
	}
}
