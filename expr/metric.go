// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package expr

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// A Metric is a differential expression metric:
// it scores the expression change of a single gene
// between the case and the control sample group.
type Metric func(cases, control []float64) float64

var metrics = map[string]Metric{
	"difference":      Difference,
	"ratio":           Ratio,
	"signal_to_noise": SignalToNoise,
}

// MetricByName returns a registered ranking metric.
func MetricByName(name string) (Metric, error) {
	m, ok := metrics[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric %q, use one of: %v", name, MetricNames())
	}
	return m, nil
}

// MetricNames returns the names of the registered metrics.
func MetricNames() []string {
	ns := make([]string, 0, len(metrics))
	for n := range metrics {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Difference is the difference of the class means.
func Difference(cases, control []float64) float64 {
	return stat.Mean(cases, nil) - stat.Mean(control, nil)
}

// Ratio is the ratio of the class means.
func Ratio(cases, control []float64) float64 {
	return stat.Mean(cases, nil) / stat.Mean(control, nil)
}

// SignalToNoise is the ratio
// of the difference of the class means
// to the sum of the class standard deviations.
// It expects at least two samples per class,
// with non-zero variation.
func SignalToNoise(cases, control []float64) float64 {
	return (stat.Mean(cases, nil) - stat.Mean(control, nil)) /
		(stat.StdDev(cases, nil) + stat.StdDev(control, nil))
}
