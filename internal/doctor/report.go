package doctor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	nameStyle = lipgloss.NewStyle().Width(18)
)

// Report writes a human-readable pass/fail summary of the results.
func Report(w io.Writer, results []Result) {
	for _, r := range results {
		mark := passStyle.Render("ok")
		if !r.OK {
			if r.Optional {
				mark = warnStyle.Render("warn")
			} else {
				mark = failStyle.Render("FAIL")
			}
		}
		fmt.Fprintf(w, "%-6s %s %s\n", mark, nameStyle.Render(r.Name), r.Detail)
	}

	if Healthy(results) {
		fmt.Fprintln(w, "\nAll checks passed.")
	} else {
		fmt.Fprintln(w, "\nSome checks failed; fix the items marked FAIL.")
	}
}
