// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package samples implements the sample specification flags
// shared by the analysis method commands:
// the case, control,
// and single-file data sources of an experiment.
package samples

import (
	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/project"
)

// Flags are the sample specification flags
// of a method command.
// When any of them is set,
// they override the datasets
// recorded in the project file.
type Flags struct {
	Case        string
	Control     string
	Data        string
	CaseCols    string
	ControlCols string
}

// Set registers the sample specification flags
// on a command.
func (f *Flags) Set(c *command.Command) {
	c.Flags().StringVar(&f.Case, "case", "", "")
	c.Flags().StringVar(&f.Control, "control", "", "")
	c.Flags().StringVar(&f.Data, "data", "", "")
	c.Flags().StringVar(&f.CaseCols, "case-cols", "", "")
	c.Flags().StringVar(&f.ControlCols, "control-cols", "", "")
}

// Usage is the usage string
// of the sample specification flags.
const Usage = `[--case <file>] [--control <file>]
	[--data <file> --case-cols <columns> --control-cols <columns>]`

// Help is the help text
// of the sample specification flags,
// shared by the method commands.
const Help = `
By default the samples are read from the datasets defined in the project. The
flags --case and --control define expression files (comma separated, if more
than one) to be used instead. As an alternative, the flag --data defines a
single expression file with both sample groups; in that case the flags
--case-cols and --control-cols indicate the sample columns of each group,
either as comma separated 0-based column numbers ("0,2,3"), or as a range in
slice notation ("3:10").
`

// Experiment returns the experiment of a project,
// after applying the flag overrides.
func (f *Flags) Experiment(p *project.Project) (*expr.Experiment, error) {
	if f.Case == "" && f.Control == "" && f.Data == "" {
		return p.Experiment()
	}

	np := project.New()
	np.SetName(p.Name())
	for _, s := range p.Sets() {
		np.Add(s, p.Path(s))
	}

	if f.Data != "" {
		np.Add(project.Case, "")
		np.Add(project.Control, "")
		np.Add(project.Data, f.Data)
		if f.CaseCols != "" {
			np.Add(project.CaseColumns, f.CaseCols)
		}
		if f.ControlCols != "" {
			np.Add(project.ControlColumns, f.ControlCols)
		}
		return np.Experiment()
	}

	np.Add(project.Data, "")
	if f.Case != "" {
		np.Add(project.Case, f.Case)
	}
	if f.Control != "" {
		np.Add(project.Control, f.Control)
	}
	return np.Experiment()
}
