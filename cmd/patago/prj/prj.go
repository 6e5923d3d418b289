// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj is a metapackage for commands
// that dealt with patago project files.
package prj

import (
	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/prj/add"
	"github.com/kn-bibs/patago/cmd/patago/prj/list"
	"github.com/kn-bibs/patago/cmd/patago/prj/remove"
)

var Command = &command.Command{
	Usage: "prj <command> [<argument>...]",
	Short: "commands for project files",
}

func init() {
	Command.Add(add.Command)
	Command.Add(list.Command)
	Command.Add(remove.Command)
}
