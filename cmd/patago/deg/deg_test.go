// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package deg

import (
	"math"
	"reflect"
	"testing"

	"github.com/kn-bibs/patago/expr"
)

func newExperiment(t testing.TB) *expr.Experiment {
	t.Helper()

	cases := expr.NewCollection("tumour")
	cases.Samples = append(cases.Samples,
		expr.NewSample("t1", map[string]float64{
			"upGene":   2,
			"flatGene": 1,
			"badGene":  math.NaN(),
		}),
		expr.NewSample("t2", map[string]float64{
			"upGene":   4,
			"flatGene": 2,
			"badGene":  math.NaN(),
		}),
	)
	control := expr.NewCollection("healthy")
	control.Samples = append(control.Samples,
		expr.NewSample("h1", map[string]float64{
			"upGene":   1,
			"flatGene": 1,
			"badGene":  math.NaN(),
		}),
		expr.NewSample("h2", map[string]float64{
			"upGene":   2,
			"flatGene": 2,
			"badGene":  math.NaN(),
		}),
	)

	ex, err := expr.NewExperiment(cases, control)
	if err != nil {
		t.Fatalf("unable to build experiment: %v", err)
	}
	return ex
}

func TestDegTable(t *testing.T) {
	ex := newExperiment(t)

	out, err := degTable(ex, 1)
	if err != nil {
		t.Fatalf("unable to build table: %v", err)
	}

	// badGene has no defined p-value,
	// so it must not appear in the table,
	// and the adjusted values of the other genes
	// must be corrected over two tests, not three
	want := [][]string{
		{"upGene", "2", "1", "0.311753", "0.623506"},
		{"flatGene", "1", "0", "1", "1"},
	}
	if !reflect.DeepEqual(out.Rows, want) {
		t.Errorf("table rows:\ngot:  %v\nwant: %v", out.Rows, want)
	}
}

func TestDegTableThreshold(t *testing.T) {
	ex := newExperiment(t)

	out, err := degTable(ex, 0.5)
	if err != nil {
		t.Fatalf("unable to build table: %v", err)
	}

	want := [][]string{
		{"upGene", "2", "1", "0.311753", "0.623506"},
	}
	if !reflect.DeepEqual(out.Rows, want) {
		t.Errorf("table rows:\ngot:  %v\nwant: %v", out.Rows, want)
	}
}
