// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package method

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// A Result is the output of a pathway analysis method:
// an ordered table of scored pathways or gene sets.
type Result struct {
	// Columns are the column names of the table.
	Columns []string

	// Rows are the table rows,
	// already sorted by the method.
	Rows [][]string

	// Notes is a free text
	// with hints for interpreting the results.
	Notes string
}

// Add appends a row to the result.
// It returns an error if the number of values
// does not match the number of columns.
func (r *Result) Add(row ...string) error {
	if len(row) != len(r.Columns) {
		return fmt.Errorf("result: got %d values, want %d", len(row), len(r.Columns))
	}
	r.Rows = append(r.Rows, row)
	return nil
}

// TSV writes the result as a tab-delimited table.
func (r *Result) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'

	if err := tab.Write(r.Columns); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, row := range r.Rows {
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("while writing data: %v", err)
		}
	}
	tab.Flush()
	return tab.Error()
}

// Markdown writes the result as a Markdown table
// with the given title.
func (r *Result) Markdown(w io.Writer, title string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n\n", title)
	fmt.Fprintf(bw, "| %s |\n", strings.Join(r.Columns, " | "))

	sep := make([]string, len(r.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintf(bw, "| %s |\n", strings.Join(sep, " | "))

	for _, row := range r.Rows {
		fmt.Fprintf(bw, "| %s |\n", strings.Join(row, " | "))
	}
	if r.Notes != "" {
		fmt.Fprintf(bw, "\n%s\n", strings.TrimSpace(r.Notes))
	}
	return bw.Flush()
}
