package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"revcomp/internal/writers"
)

// demoSequences covers upper and lower case plus two palindromic
// restriction sites.
var demoSequences = []string{
	"ATCG",
	"AAATTTGGGCCC",
	"GAATTC", // EcoRI
	"AAGCTT", // HindIII
	"atcg",
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print reverse complements of a few sample sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Output != "text" {
				return a.transformAll(cmd.Context(), demoSequences)
			}
			return outputErr(a.writeDemoTable())
		},
	}
}

func (a *app) writeDemoTable() error {
	w := bufio.NewWriter(a.stdout)
	fmt.Fprintln(w, "Test Results:")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, seq := range demoSequences {
		r := writers.Transform(seq)
		if r.Err != nil {
			return r.Err
		}
		fmt.Fprintf(w, "%-15s -> %s\n", seq, r.RC)
	}
	fmt.Fprintln(w)
	return w.Flush()
}
