// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genesetcmd is a metapackage for commands
// that dealt with gene set databases.
package genesetcmd

import (
	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/genesetcmd/fetch"
	"github.com/kn-bibs/patago/cmd/patago/genesetcmd/list"
)

var Command = &command.Command{
	Usage: "geneset <command> [<argument>...]",
	Short: "commands for gene set databases",
}

func init() {
	Command.Add(fetch.Command)
	Command.Add(list.Command)
}
