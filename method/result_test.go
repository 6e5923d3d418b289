// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package method_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kn-bibs/patago/method"
)

func newResult(t testing.TB) *method.Result {
	t.Helper()

	r := &method.Result{
		Columns: []string{"name", "score"},
		Notes:   "an example note",
	}
	if err := r.Add("first pathway", "0.95"); err != nil {
		t.Fatalf("unable to add row: %v", err)
	}
	if err := r.Add("second pathway", "0.05"); err != nil {
		t.Fatalf("unable to add row: %v", err)
	}
	return r
}

func TestResultAdd(t *testing.T) {
	r := newResult(t)
	if err := r.Add("only a name"); err == nil {
		t.Errorf("expecting error for a short row")
	}
	if len(r.Rows) != 2 {
		t.Errorf("got %d rows, want 2", len(r.Rows))
	}
}

func TestResultTSV(t *testing.T) {
	r := newResult(t)

	var w bytes.Buffer
	if err := r.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV: %v", err)
	}

	want := "name\tscore\nfirst pathway\t0.95\nsecond pathway\t0.05\n"
	if w.String() != want {
		t.Errorf("tsv output:\ngot:\n%swant:\n%s", w.String(), want)
	}
}

func TestResultMarkdown(t *testing.T) {
	r := newResult(t)

	var w bytes.Buffer
	if err := r.Markdown(&w, "test results"); err != nil {
		t.Fatalf("unable to write Markdown: %v", err)
	}

	out := w.String()
	for _, want := range []string{
		"# test results",
		"| name | score |",
		"| --- | --- |",
		"| first pathway | 0.95 |",
		"an example note",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output: missing %q:\n%s", want, out)
		}
	}
}
