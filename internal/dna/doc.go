// Package dna computes reverse complements of DNA sequences over the
// alphabet A, T, G, C (upper or lower case).
//
// All functions are pure and safe for concurrent use.
package dna
