// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pathway implements directed gene interaction graphs
// for topology aware pathway analysis,
// built from the KEGG pathway database.
package pathway

import (
	"slices"
	"strings"
)

// A Graph is a directed gene interaction graph.
// Each node is a set of gene names
// (a KEGG entry can stand for several paralogs),
// stored as a comma-separated string.
// Edges represent interactions between nodes
// and carry the interaction types.
type Graph struct {
	// ID is the pathway identifier
	// (for example "hsa04110").
	ID string

	// Name is the pathway description.
	Name string

	nodes map[string]bool
	edges map[[2]string][]string
}

// NewGraph creates a new empty pathway graph.
func NewGraph(id, name string) *Graph {
	return &Graph{
		ID:    id,
		Name:  name,
		nodes: make(map[string]bool),
		edges: make(map[[2]string][]string),
	}
}

// An Edge is a directed interaction
// between two nodes of a pathway graph.
type Edge struct {
	From, To string

	// Types are the interaction types of the edge
	// (for example "activation" or "inhibition").
	Types []string
}

// AddNode adds a node to the graph.
func (g *Graph) AddNode(n string) {
	g.nodes[n] = true
}

// AddEdge adds a directed interaction to the graph,
// adding the nodes if needed.
// If the edge already exists
// the interaction type is appended.
func (g *Graph) AddEdge(from, to, typ string) {
	g.nodes[from] = true
	g.nodes[to] = true
	k := [2]string{from, to}
	g.edges[k] = append(g.edges[k], typ)
}

// Nodes returns the nodes of the graph,
// sorted alphabetically.
func (g *Graph) Nodes() []string {
	ns := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Genes returns the individual gene names
// of all nodes of the graph.
func (g *Graph) Genes() []string {
	seen := make(map[string]bool)
	for n := range g.nodes {
		for _, gene := range strings.Split(n, ",") {
			gene = strings.TrimSpace(gene)
			if gene == "" {
				continue
			}
			seen[gene] = true
		}
	}

	gs := make([]string, 0, len(seen))
	for gene := range seen {
		gs = append(gs, gene)
	}
	slices.Sort(gs)
	return gs
}

// InEdges returns the edges pointing to a node,
// sorted by the source node.
func (g *Graph) InEdges(n string) []Edge {
	var es []Edge
	for k, types := range g.edges {
		if k[1] == n {
			es = append(es, Edge{From: k[0], To: k[1], Types: types})
		}
	}
	slices.SortFunc(es, func(a, b Edge) int {
		return strings.Compare(a.From, b.From)
	})
	return es
}

// OutDegree returns the number of edges
// going out of a node.
func (g *Graph) OutDegree(n string) int {
	d := 0
	for k := range g.edges {
		if k[0] == n {
			d++
		}
	}
	return d
}

// NumEdges returns the number of edges of the graph.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Weights are the interaction type weights
// used when propagating expression perturbations,
// based on the Onto-Tools weight table
// (Khatri et al. 2007, Nucleic Acids Res. 35).
var Weights = map[string]float64{
	"activation":          1,
	"complex":             1,
	"compound":            1,
	"dissociation":        1,
	"glycosylation":       1,
	"indirect":            1,
	"indirect effect":     1,
	"phosphorylation":     1,
	"state":               1,
	"state change":        1,
	"binding/association": 1,
	"dephosphorylation":   1,
	"expression":          1,
	"inhibition":          -1,
	"methylation":         1,
	"repression":          -1,
	"ubiquination":        1,
	"ubiquitination":      1,
}

// Weight returns the mean weight
// of a list of interaction types.
// Unknown types count as zero.
func Weight(types []string) float64 {
	if len(types) == 0 {
		return 0
	}
	sum := 0.0
	for _, t := range types {
		sum += Weights[t]
	}
	return sum / float64(len(types))
}
