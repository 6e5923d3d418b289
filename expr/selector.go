// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// A Selector picks a subset
// of the sample columns of an expression file.
// Column numbers are 0-based
// and counted over the sample columns only
// (the gene identifier and description columns
// are not counted).
type Selector interface {
	// Sel returns the selected indices
	// among n available columns,
	// in increasing order.
	Sel(n int) []int
}

// ParseSelector parses a column selection string:
// either a comma-separated list of 0-based indices
// ("0,2,3"),
// or a range in slice notation
// with an optional start and end
// ("3:10", ":4", "5:").
func ParseSelector(s string) (Selector, error) {
	if strings.Contains(s, ":") {
		return parseSlice(s)
	}
	return parseIndices(s)
}

// Indices is a selection
// of explicitly enumerated columns.
type Indices map[int]bool

func parseIndices(s string) (Indices, error) {
	in := make(Indices)
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid column index %q: %v", v, err)
		}
		if i < 0 {
			return nil, fmt.Errorf("invalid column index %q: indices must be positive", v)
		}
		in[i] = true
	}
	if len(in) == 0 {
		return nil, fmt.Errorf("empty column selection %q", s)
	}
	return in, nil
}

// Sel implements the Selector interface.
func (in Indices) Sel(n int) []int {
	var sel []int
	for i := 0; i < n; i++ {
		if in[i] {
			sel = append(sel, i)
		}
	}
	return sel
}

// Slice is a half-open column range,
// as in the slice notation "start:end".
type Slice struct {
	Start, End int
	openEnd    bool
}

func parseSlice(s string) (Slice, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Slice{}, fmt.Errorf("invalid slice %q", s)
	}

	sl := Slice{}
	if p := strings.TrimSpace(parts[0]); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, fmt.Errorf("invalid slice %q: %v", s, err)
		}
		sl.Start = v
	}
	if p := strings.TrimSpace(parts[1]); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, fmt.Errorf("invalid slice %q: %v", s, err)
		}
		sl.End = v
	} else {
		sl.openEnd = true
	}
	if sl.Start < 0 || (!sl.openEnd && sl.End < sl.Start) {
		return Slice{}, fmt.Errorf("invalid slice %q", s)
	}
	return sl, nil
}

// Sel implements the Selector interface.
func (sl Slice) Sel(n int) []int {
	end := sl.End
	if sl.openEnd || end > n {
		end = n
	}
	var sel []int
	for i := sl.Start; i < end; i++ {
		sel = append(sel, i)
	}
	return sel
}

// Invert is a selector that picks
// every column not selected by the wrapped selector.
type Invert struct {
	Selector
}

// Sel implements the Selector interface.
func (iv Invert) Sel(n int) []int {
	drop := make(map[int]bool)
	for _, i := range iv.Selector.Sel(n) {
		drop[i] = true
	}
	var sel []int
	for i := 0; i < n; i++ {
		if !drop[i] {
			sel = append(sel, i)
		}
	}
	return sel
}
