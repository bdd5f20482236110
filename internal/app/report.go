package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mazepath/bestfirst"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Report is the printable outcome of a run.
type Report struct {
	Strategy bestfirst.Strategy
	Result   *bestfirst.Result
	// Optimal is the breadth-first shortest length, -1 when unreachable.
	Optimal int
	Trace   bool
}

// Write renders the report as aligned key/value lines.
func (r *Report) Write(w io.Writer) error {
	res := r.Result
	outcome := "no path"
	if res.Found() {
		outcome = "found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "algorithm:   %s\n", r.Strategy)
	fmt.Fprintf(&b, "outcome:     %s\n", outcome)
	fmt.Fprintf(&b, "path length: %s\n", lengthString(res.Length()))
	fmt.Fprintf(&b, "optimal:     %s\n", lengthString(r.Optimal))
	fmt.Fprintf(&b, "expansions:  %d\n", res.Expansions)
	fmt.Fprintf(&b, "discovered:  %d\n", len(res.Discovered))
	if res.Found() {
		fmt.Fprintf(&b, "path:        %s\n", joinCells(res.Path))
	}
	if r.Trace {
		fmt.Fprintf(&b, "trace:       %s\n", joinCells(res.Discovered))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func lengthString(n int) string {
	if n < 0 {
		return "-"
	}
	return fmt.Sprint(n)
}

func joinCells(cells []gridgraph.Cell) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
