// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add a dataset
// to a patago project.
package add

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/expr"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: "add --type <dataset-type> <project-file> <dataset>...",
	Short: "add a dataset to a project",
	Long: `
Command add adds the path of a dataset file to a patago project.

The first argument of the command is the name of the project file. If no
project exists, a new project will be created.

The remaining arguments are the dataset values. For the case and control
datasets several expression files can be given. If the dataset is already
defined in the project, its value will be replaced.

The type of the added dataset must be explicitly defined using the flag
--type with one of the following values:

	case		expression file(s) with the case samples
	control		expression file(s) with the control samples
	data		a single expression file with both groups
	case-columns	sample columns of the case group in a data file
	control-columns	sample columns of the control group in a data file
	genesets	a gene set database in GMT format
	pathways	a KEGG pathway cache

Expression files can be tab-delimited (the default), comma separated (with
the ".csv" extension), or in the Broad GCT format (with the ".gct"
extension); files with the ".gz" extension are decompressed on the fly.

Column selections are either comma separated 0-based column numbers
("0,2,3"), or a range in slice notation ("3:10").
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting dataset value")
	}
	if typeFlag == "" {
		return c.UsageError("flag --type undefined")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	var value string
	typeFlag = strings.ToLower(typeFlag)
	switch d := project.Dataset(typeFlag); d {
	case project.Case, project.Control:
		for _, f := range args[1:] {
			if err := checkFile(f); err != nil {
				return err
			}
		}
		value = strings.Join(args[1:], ",")
	case project.Data, project.GeneSets, project.Pathways:
		if err := checkFile(args[1]); err != nil {
			return err
		}
		value = args[1]
	case project.CaseColumns, project.ControlColumns:
		if _, err := expr.ParseSelector(args[1]); err != nil {
			return err
		}
		value = args[1]
	default:
		msg := fmt.Sprintf("flag --type: unknown value %q", typeFlag)
		return c.UsageError(msg)
	}

	p.Add(project.Dataset(typeFlag), value)
	p.SetName(args[0])
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		return project.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func checkFile(name string) error {
	if _, err := os.Stat(name); err != nil {
		return err
	}
	return nil
}
