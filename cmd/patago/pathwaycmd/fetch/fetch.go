// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package fetch implements a command to populate
// the KEGG pathway cache of a project.
package fetch

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/kn-bibs/patago/cmd/patago/samples"
	"github.com/kn-bibs/patago/pathway"
	"github.com/kn-bibs/patago/project"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: `fetch [--org <organism>] [--kegg <url>]
	[--cache <db-file>] [-v|--verbose]
	` + samples.Usage + ` <project-file>`,
	Short: "populate the KEGG pathway cache",
	Long: `
Command fetch retrieves from the KEGG REST service the pathway data required
by the topology aware methods (impact, spia), and stores it in a local cache,
an SQLite database, so the analyses can run repeatedly and offline over the
same pathway snapshot.

For each gene of the experiment samples, the command retrieves the pathways
containing the gene, and for each of those pathways the KGML document with
the pathway topology. Genes already in the cache are not requested again, so
an interrupted download can be resumed by running the command again.

The argument of the command is the name of the project file. The cache is
read from the pathways dataset of the project; if the dataset is not defined,
the file indicated by the flag --cache ("kegg-cache.db" by default) will be
created and added to the project.

The flag --org defines the organism of the experiment, by name or KEGG code,
"Homo sapiens" by default. The flag --kegg defines the base URL of the KEGG
REST service.

If the flag --verbose, or -v, is defined, the command will report each
retrieved gene and pathway.
` + samples.Help,
	SetFlags: setFlags,
	Run:      run,
}

var orgFlag string
var keggFlag string
var cacheFlag string
var verbose bool
var smpFlags samples.Flags

func setFlags(c *command.Command) {
	c.Flags().StringVar(&orgFlag, "org", "Homo sapiens", "")
	c.Flags().StringVar(&keggFlag, "kegg", "", "")
	c.Flags().StringVar(&cacheFlag, "cache", "kegg-cache.db", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
	smpFlags.Set(c)
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if p.Path(project.Pathways) == "" {
		p.Add(project.Pathways, cacheFlag)
		if err := p.Write(); err != nil {
			return err
		}
	}

	ex, err := smpFlags.Experiment(p)
	if err != nil {
		return err
	}

	cache, err := p.PathwayCache()
	if err != nil {
		return err
	}
	defer cache.Close()

	cl := &pathway.Client{Base: keggFlag}

	ok, err := cache.HasOrganisms()
	if err != nil {
		return err
	}
	if !ok {
		codes, err := cl.Organisms()
		if err != nil {
			return err
		}
		if err := cache.SetOrganisms(codes); err != nil {
			return err
		}
	}
	org, err := cache.OrganismCode(orgFlag)
	if err != nil {
		return err
	}

	names, err := cl.Pathways(org)
	if err != nil {
		return err
	}

	want := make(map[string]bool)
	for _, g := range ex.Genes() {
		symbol := g.Name()
		ids, fetched, err := cache.PathwaysByGene(org, symbol)
		if err != nil {
			return err
		}
		if !fetched {
			entry, err := cl.FindGene(org, symbol)
			if err != nil {
				return err
			}
			if entry != "" {
				ids, err = cl.PathwaysOfGene(entry)
				if err != nil {
					return err
				}
			}
			if err := cache.SetGenePathways(org, symbol, ids); err != nil {
				return err
			}
			if verbose {
				fmt.Fprintf(c.Stdout(), "gene %s: %d pathways\n", symbol, len(ids))
			}
		}
		for _, id := range ids {
			want[id] = true
		}
	}

	stored, err := cache.Pathways(org)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(want))
	for id := range want {
		if _, ok := stored[id]; ok {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		kgml, err := cl.KGML(id)
		if err != nil {
			return err
		}
		if err := cache.AddPathway(id, org, names[id], kgml); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(c.Stdout(), "pathway %s: %s\n", id, names[id])
		}
	}
	fmt.Fprintf(c.Stdout(), "%s: %d pathways in cache\n", org, len(stored)+len(ids))
	return nil
}
