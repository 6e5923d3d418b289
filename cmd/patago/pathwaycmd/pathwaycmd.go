// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pathwaycmd is a metapackage for commands
// that dealt with the KEGG pathway cache.
package pathwaycmd

import (
	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/pathwaycmd/fetch"
	"github.com/kn-bibs/patago/cmd/patago/pathwaycmd/list"
)

var Command = &command.Command{
	Usage: "pathway <command> [<argument>...]",
	Short: "commands for the KEGG pathway cache",
}

func init() {
	Command.Add(fetch.Command)
	Command.Add(list.Command)
}
