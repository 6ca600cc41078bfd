// Package planout renders a found plan into the judge server's
// stdout wire format: one line per time step, one pipe-separated
// action per agent.
package planout

import (
	"bufio"
	"io"
	"strings"

	"github.com/hospital-search/searchclient/internal/action"
)

// WriteHeader writes the two lines the server expects before any plan
// or level data: the client name, followed by an optional comment.
func WriteHeader(w *bufio.Writer, comment string) error {
	if _, err := io.WriteString(w, "SearchClient\n"); err != nil {
		return err
	}
	if comment != "" {
		if _, err := io.WriteString(w, "#"+comment+"\n"); err != nil {
			return err
		}
	}
	return w.Flush()
}

// WritePlan writes one line per joint action in plan, agents'
// individual actions separated by '|', e.g. "Move(N)|Push(E,E)".
func WritePlan(w *bufio.Writer, plan [][]action.Action) error {
	var b strings.Builder
	for _, joint := range plan {
		b.Reset()
		for i, a := range joint {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(a.String())
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return w.Flush()
}
