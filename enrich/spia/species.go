// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package spia

import (
	"fmt"
	"strings"
)

// species maps the common synonyms of an organism
// to its KEGG organism code.
var species = [][]string{
	{"anopheles", "Anopheles gambiae", "Ag", "aga"},
	{"bovine", "Bos taurus", "Bt", "bta"},
	{"canine", "Canis familiaris", "Cf", "cfa"},
	{"chicken", "Gallus gallus", "Gg", "gga"},
	{"chimp", "Pan troglodytes", "Pt", "ptr"},
	{"ecoliK12", "Escherichia coli K12", "EcK12", "eco"},
	{"ecoliSakai", "Escherichia coli Sakai", "EcSakai", "ecs"},
	{"fly", "Drosophila melanogaster", "Dm", "dme"},
	{"human", "Homo sapiens", "Hs", "hsa"},
	{"mouse", "Mus musculus", "Mm", "mmu"},
	{"pig", "Sus scrofa", "Ss", "ssc"},
	{"rat", "Rattus norvegicus", "Rn", "rno"},
	{"rhesus", "Macaca mulatta", "Mmu", "mcc"},
	{"worm", "Caenorhabditis elegans", "Ce", "cel"},
	{"xenopus", "Xenopus laevis", "Xl", "xla"},
	{"yeast", "Saccharomyces cerevisiae", "Sc", "sce"},
	{"zebrafish", "Danio rerio", "Dr", "dre"},
}

// organismCode returns the KEGG code of an organism
// given any of its synonyms
// ("human", "Homo sapiens", "hsa").
func organismCode(org string) (string, error) {
	for _, sp := range species {
		code := sp[3]
		if strings.EqualFold(org, code) {
			return code, nil
		}
		for _, syn := range sp {
			if strings.EqualFold(org, syn) {
				return code, nil
			}
		}
	}
	return "", fmt.Errorf("unknown organism %q", org)
}
