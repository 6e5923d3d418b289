// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(expressionFilesGuide)
	app.Add(geneSetFilesGuide)
	app.Add(pathwayCacheGuide)
	app.Add(projectsGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Patago requires several files to read and process an expression experiment.
To reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files required in the analysis. This guide
explains the structure of the file, but most of the time, the best and most
secure way to edit or view this file is by using patago commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# patago project files
	dataset	path
	case	tumour.tsv
	control	healthy.tsv
	genesets	h.all.v6.1.symbols.gmt.gz
	pathways	kegg-cache.db

The valid dataset types are:

- Case samples. Defined by the dataset keyword "case". One or more expression
  files (comma separated) with the samples of the studied condition. The
  recommended way to add the case samples is by using the command
  'patago prj add --type case'.
- Control samples. Defined by the dataset keyword "control". One or more
  expression files with the reference samples.
- Single-file experiments. Defined by the dataset keyword "data", with a
  single expression file holding both sample groups. The groups are defined
  with the "case-columns" and "control-columns" datasets, which store column
  selections instead of file paths.
- Gene sets. Defined by the dataset keyword "genesets". A gene set database
  in GMT format, as used by the gsea and lrpath methods. The recommended way
  to add a database is by using the command 'patago geneset fetch'.
- Pathway cache. Defined by the dataset keyword "pathways". A local cache of
  KEGG pathway data, as used by the impact and spia methods. The recommended
  way to create and populate the cache is by using the command
  'patago pathway fetch'.
	`,
}

var expressionFilesGuide = &command.Command{
	Usage: "expression-files",
	Short: "about expression files",
	Long: `
In patago, gene expression data is stored in column delimited files: one row
per gene, with the gene identifier in the first column, and one column per
sample. The first non comment row contains the sample names. Lines starting
with '#' are ignored.

By default files are read as tab-delimited. Files with the ".csv" extension
are read as comma separated, and files with the ".gct" extension are read in
the Broad GCT format, in which the two first rows contain the version tag
and the table dimensions, and the second column contains a gene description.
Files with the ".gz" extension are decompressed on the fly.

Here is an example file:

	# expression of the tumour group
	gene	smp-01	smp-02	smp-03
	TP53	12.01	11.43	12.53
	BRCA1	3.16	2.93	3.25
	MYC	8.42	9.11	8.76

Gene identifiers must use the same scheme across all the files of a project
(for example HGNC symbols), and the same scheme used by the gene set
database of the project.
	`,
}

var geneSetFilesGuide = &command.Command{
	Usage: "geneset-files",
	Short: "about gene set database files",
	Long: `
The gsea and lrpath methods test the enrichment of predefined gene sets, for
example the gene sets of the molecular signature database (MSigDB). In
patago, gene set databases are stored in the GMT (Gene Matrix Transposed)
format: one gene set per row, with the set name, a URL (or any description),
and the member genes, all separated by tabs.

Here is an example file:

	HALLMARK_APOPTOSIS	http://www.broadinstitute.org/gsea/msigdb/cards/HALLMARK_APOPTOSIS	CASP3	CASP9	FAS
	HALLMARK_HYPOXIA	http://www.broadinstitute.org/gsea/msigdb/cards/HALLMARK_HYPOXIA	VEGFA	SLC2A1	PGK1

The recommended way to download a database is by using the command
'patago geneset fetch', which retrieves a database from an MSigDB mirror. In
a patago project, the database file is indicated with the "genesets"
keyword.
	`,
}

var pathwayCacheGuide = &command.Command{
	Usage: "pathway-cache",
	Short: "about the KEGG pathway cache",
	Long: `
The topology aware methods (impact, spia) require the gene interaction
graphs of the KEGG pathways. As the KEGG REST service is slow, and a given
analysis is usually run several times, patago stores the retrieved data in a
local cache, an SQLite database, so the analyses run offline over the same
pathway snapshot.

The cache stores the KEGG organism table, the pathways of each gene of the
experiment, and the KGML document of each pathway with the pathway topology.

The recommended way to create and populate the cache is by using the command
'patago pathway fetch'. The command can be run again at any time to fetch
the pathways of new experiment genes; data already in the cache is not
requested again. Use the command 'patago pathway list' to view the cached
pathways.

In a patago project, the cache file is indicated with the "pathways"
keyword.
	`,
}
