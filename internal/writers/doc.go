// Package writers turns transform results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text blocks, JSON/JSONL).
//   • The dna package stays domain-only; callers build a Result and pick a format.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
