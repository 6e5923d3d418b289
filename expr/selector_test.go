// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package expr_test

import (
	"reflect"
	"testing"

	"github.com/kn-bibs/patago/expr"
)

func TestParseSelector(t *testing.T) {
	tests := map[string]struct {
		sel  string
		n    int
		want []int
	}{
		"indices":     {sel: "0,2,3", n: 5, want: []int{0, 2, 3}},
		"spaces":      {sel: " 1 , 3 ", n: 5, want: []int{1, 3}},
		"out of data": {sel: "1,10", n: 5, want: []int{1}},
		"slice":       {sel: "1:3", n: 5, want: []int{1, 2}},
		"open end":    {sel: "3:", n: 5, want: []int{3, 4}},
		"open start":  {sel: ":2", n: 5, want: []int{0, 1}},
		"long slice":  {sel: "2:10", n: 4, want: []int{2, 3}},
	}

	for name, test := range tests {
		sel, err := expr.ParseSelector(test.sel)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if g := sel.Sel(test.n); !reflect.DeepEqual(g, test.want) {
			t.Errorf("%s: selection %q over %d columns: got %v, want %v", name, test.sel, test.n, g, test.want)
		}
	}
}

func TestParseSelectorError(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"not a number":   "1,two,3",
		"negative":       "-1,2",
		"inverted slice": "5:2",
		"double slice":   "1:2:3",
	}

	for name, sel := range tests {
		if _, err := expr.ParseSelector(sel); err == nil {
			t.Errorf("%s: selection %q: expecting error", name, sel)
		}
	}
}

func TestInvert(t *testing.T) {
	sel, err := expr.ParseSelector("1:3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{0, 3, 4}
	if g := (expr.Invert{Selector: sel}).Sel(5); !reflect.DeepEqual(g, want) {
		t.Errorf("invert: got %v, want %v", g, want)
	}
}
