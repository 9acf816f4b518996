// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/JSONL schema for one transformed sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Input             string `json:"input"`
	ReverseComplement string `json:"reverse_complement"`
	Length            int    `json:"length"`
	Palindromic       bool   `json:"palindromic,omitempty"`

	// Set only for rejected input.
	Error   string   `json:"error,omitempty"`
	Invalid []string `json:"invalid,omitempty"`
}
