package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamsumansaha/MNC-HR-Analysis/internal/runner"
)

// Text writes every outcome as a header, an aligned column table and the
// insight line, in the order given. Failed reports print the reason instead
// of a table. Output is deterministic for a given input.
func Text(w io.Writer, outcomes []runner.Outcome) error {
	for i, out := range outcomes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		header := fmt.Sprintf("%s — %s", out.ID, out.Title)
		if _, err := fmt.Fprintf(w, "%s\n%s\n", header, strings.Repeat("=", len([]rune(header)))); err != nil {
			return err
		}

		if out.Err != nil {
			if _, err := fmt.Fprintf(w, "FAILED: %v\n", out.Err); err != nil {
				return err
			}
			continue
		}

		if err := writeTable(w, out.Result.Columns, out.Result.Rows); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Insight: %s\n", out.Insight); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(no rows)")
		return err
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len([]rune(c))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	if err := writeRow(w, columns, widths); err != nil {
		return err
	}

	sep := make([]string, len(columns))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	if err := writeRow(w, sep, widths); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - len([]rune(cell))
		if pad < 0 {
			pad = 0
		}
		parts[i] = cell + strings.Repeat(" ", pad)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}
