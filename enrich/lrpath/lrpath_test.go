// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lrpath

import (
	"math"
	"testing"
)

func TestLogistic(t *testing.T) {
	// two groups of ten observations:
	// 8 of 10 successes when x = 1,
	// 2 of 10 when x = 0,
	// so the slope is log(16)
	// and its variance 1/(10*0.16) + 1/(10*0.16)
	var x, y []float64
	for i := 0; i < 10; i++ {
		x = append(x, 0)
		if i < 2 {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}
	for i := 0; i < 10; i++ {
		x = append(x, 1)
		if i < 8 {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}

	b1, se1, ok := logistic(x, y)
	if !ok {
		t.Fatalf("regression did not converge")
	}

	wantB := math.Log(16)
	if math.Abs(b1-wantB) > 1e-4 {
		t.Errorf("slope: got %.6f, want %.6f", b1, wantB)
	}
	wantSE := math.Sqrt(1.25)
	if math.Abs(se1-wantSE) > 1e-4 {
		t.Errorf("standard error: got %.6f, want %.6f", se1, wantSE)
	}
}

func TestLogisticNoEffect(t *testing.T) {
	// alternating memberships over an increasing score
	var x, y []float64
	for i := 0; i < 20; i++ {
		x = append(x, float64(i))
		y = append(y, float64(i%2))
	}

	b1, se1, ok := logistic(x, y)
	if !ok {
		t.Fatalf("regression did not converge")
	}
	if math.Abs(b1) > 0.1 {
		t.Errorf("slope: got %.6f, want a value near 0", b1)
	}
	if se1 <= 0 {
		t.Errorf("standard error: got %.6f, want a positive value", se1)
	}
}
