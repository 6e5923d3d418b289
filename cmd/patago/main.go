// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Patago is a tool for pathway enrichment analysis
// of gene expression experiments.
package main

import (
	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/deg"
	"github.com/kn-bibs/patago/cmd/patago/genesetcmd"
	"github.com/kn-bibs/patago/cmd/patago/gseacmd"
	"github.com/kn-bibs/patago/cmd/patago/impactcmd"
	"github.com/kn-bibs/patago/cmd/patago/lrpathcmd"
	"github.com/kn-bibs/patago/cmd/patago/methods"
	"github.com/kn-bibs/patago/cmd/patago/pathwaycmd"
	"github.com/kn-bibs/patago/cmd/patago/prj"
	"github.com/kn-bibs/patago/cmd/patago/spiacmd"
)

var app = &command.Command{
	Usage: "patago <command> [<argument>...]",
	Short: "a tool for pathway enrichment analysis",
}

func init() {
	app.Add(deg.Command)
	app.Add(genesetcmd.Command)
	app.Add(gseacmd.Command)
	app.Add(impactcmd.Command)
	app.Add(lrpathcmd.Command)
	app.Add(methods.Command)
	app.Add(pathwaycmd.Command)
	app.Add(prj.Command)
	app.Add(spiacmd.Command)
}

func main() {
	app.Main()
}
