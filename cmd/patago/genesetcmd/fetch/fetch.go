// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fetch implements a command to download
// a gene set database from a remote mirror.
package fetch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/geneset"
	"github.com/kn-bibs/patago/project"
)

var Command = &command.Command{
	Usage: `fetch [--preset <name>] [--set <file-set>]
	[--version <version>] [--id <scheme>]
	[--remote <url>] [--dir <data-dir>]
	[<project-file>]`,
	Short: "download a gene set database",
	Long: `
Command fetch downloads a gene set database of the molecular signature
database (MSigDB) collection, in GMT format, from a remote mirror. If the
database file was downloaded before, the local copy is used.

By default the hallmark gene sets are downloaded. A different database can be
selected with the flag --preset, using one of the following values:

	H	hallmark gene sets

Alternatively, the flag --set defines an explicit file set name of the
mirror, for example "c2.cp.reactome".

The flag --version defines the database version, 6.1 by default. The flag
--id defines the gene identifier scheme, either "symbols" (the default) or
"entrez". The flag --remote defines the URL of the mirror. The flag --dir
defines the directory used to store the downloaded files, the current
directory by default.

If a project file is given as argument, the downloaded database will be set
as the genesets dataset of the project. If no project exists, a new project
will be created.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var presetFlag string
var setFlag string
var versionFlag string
var idFlag string
var remoteFlag string
var dirFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&presetFlag, "preset", "H", "")
	c.Flags().StringVar(&setFlag, "set", "", "")
	c.Flags().StringVar(&versionFlag, "version", "6.1", "")
	c.Flags().StringVar(&idFlag, "id", "symbols", "")
	c.Flags().StringVar(&remoteFlag, "remote", geneset.DefaultRemote, "")
	c.Flags().StringVar(&dirFlag, "dir", ".", "")
}

func run(c *command.Command, args []string) error {
	set := setFlag
	if set == "" {
		p, ok := geneset.Presets[strings.ToUpper(presetFlag)]
		if !ok {
			msg := fmt.Sprintf("flag --preset: unknown value %q, valid presets: %s", presetFlag, strings.Join(geneset.PresetNames(), " "))
			return c.UsageError(msg)
		}
		set = p.Set
	}
	if idFlag != "symbols" && idFlag != "entrez" {
		msg := fmt.Sprintf("flag --id: unknown value %q", idFlag)
		return c.UsageError(msg)
	}

	path := geneset.RemotePath(set, versionFlag, idFlag)
	local, err := geneset.Fetch(remoteFlag, path, dirFlag)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%s\n", local)

	if len(args) < 1 {
		return nil
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}
	p.Add(project.GeneSets, local)
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
