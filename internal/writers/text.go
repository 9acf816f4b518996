package writers

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// InvalidHint follows every rejected sequence in text output.
const InvalidHint = "Please enter a valid DNA sequence using only A, T, G, C"

func init() { RegisterResult("text", writeText) }

// palette styles text output. Unless Options carries a renderer, one is
// bound to w so pipes and buffers get plain text.
type palette struct {
	enabled bool
	label   lipgloss.Style
	seq     lipgloss.Style
	fail    lipgloss.Style
}

func newPalette(w io.Writer, opt Options) palette {
	if !opt.Color {
		return palette{}
	}
	r := opt.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	return palette{
		enabled: true,
		label:   r.NewStyle().Bold(true),
		seq:     r.NewStyle().Foreground(lipgloss.Color("2")),
		fail:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func (p palette) paint(st lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}
	return st.Render(s)
}

func writeText(w io.Writer, r Result, opt Options) error {
	p := newPalette(w, opt)
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s %v\n%s\n\n", p.paint(p.fail, "Error:"), r.Err, InvalidHint)
		return err
	}
	_, err := fmt.Fprintf(w, "%s          %s\n%s %s\n\n",
		p.paint(p.label, "Original:"), p.paint(p.seq, "5'-"+r.Input+"-3'"),
		p.paint(p.label, "Reverse complement:"), p.paint(p.seq, "3'-"+r.RC+"-5'"),
	)
	return err
}

// Banner is printed once before an interactive session.
func Banner(w io.Writer, opt Options, exitWords string) error {
	p := newPalette(w, opt)
	title := "DNA Reverse Complement Tool"
	_, err := fmt.Fprintf(w, "%s\n%s\nEnter DNA sequences (A, T, G, C only)\nType %s to stop\n\n",
		p.paint(p.label, title), "==============================", exitWords)
	return err
}
