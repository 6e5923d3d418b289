// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package method defines the common interface
// of the pathway analysis methods,
// and a registry used by the command line interface
// to discover the available methods.
package method

import (
	"fmt"
	"slices"

	"github.com/kn-bibs/patago/expr"
)

// A Method is a pathway analysis method:
// a named analysis routine
// that scores a collection of pathways or gene sets
// from a case-control experiment.
type Method interface {
	// Name is the method name
	// used in the command line interface.
	Name() string

	// Summary is a one line description of the method.
	Summary() string

	// Run executes the analysis on an experiment.
	Run(ex *expr.Experiment) (*Result, error)
}

var methods = make(map[string]Method)

// Register adds a method to the registry.
// It panics if the name is already in use.
func Register(m Method) {
	name := m.Name()
	if _, dup := methods[name]; dup {
		panic(fmt.Sprintf("method: %q already registered", name))
	}
	methods[name] = m
}

// ByName returns a registered method.
func ByName(name string) (Method, error) {
	m, ok := methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method %q, use one of: %v", name, Names())
	}
	return m, nil
}

// Names returns the names of the registered methods,
// sorted alphabetically.
func Names() []string {
	ns := make([]string, 0, len(methods))
	for n := range methods {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}
