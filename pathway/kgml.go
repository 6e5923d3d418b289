// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pathway

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// KGML document structure,
// as defined on
// https://www.kegg.jp/kegg/xml/docs/.
type kgmlPathway struct {
	XMLName   xml.Name       `xml:"pathway"`
	Name      string         `xml:"name,attr"`
	Title     string         `xml:"title,attr"`
	Entries   []kgmlEntry    `xml:"entry"`
	Relations []kgmlRelation `xml:"relation"`
}

type kgmlEntry struct {
	ID       int          `xml:"id,attr"`
	Name     string       `xml:"name,attr"`
	Type     string       `xml:"type,attr"`
	Graphics kgmlGraphics `xml:"graphics"`
}

type kgmlGraphics struct {
	Name string `xml:"name,attr"`
}

type kgmlRelation struct {
	Entry1   int           `xml:"entry1,attr"`
	Entry2   int           `xml:"entry2,attr"`
	Type     string        `xml:"type,attr"`
	SubTypes []kgmlSubType `xml:"subtype"`
}

type kgmlSubType struct {
	Name string `xml:"name,attr"`
}

// ParseKGML builds a pathway graph
// from a KGML document.
// Only gene entries are kept as nodes;
// the node label is the gene name list
// of the entry graphics.
// Relations between two gene entries
// become directed edges
// (the interaction is assumed
// to go from entry1 to entry2)
// labeled with the relation subtypes.
func ParseKGML(id, name string, data []byte) (*Graph, error) {
	var doc kgmlPathway
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("pathway %q: %v", id, err)
	}

	if name == "" {
		name = doc.Title
	}
	g := NewGraph(id, name)

	labels := make(map[int]string, len(doc.Entries))
	for _, e := range doc.Entries {
		if e.Type != "gene" {
			continue
		}
		l := entryLabel(e)
		if l == "" {
			continue
		}
		labels[e.ID] = l
		g.AddNode(l)
	}

	for _, r := range doc.Relations {
		from, ok := labels[r.Entry1]
		if !ok {
			continue
		}
		to, ok := labels[r.Entry2]
		if !ok {
			continue
		}
		if len(r.SubTypes) == 0 {
			g.AddEdge(from, to, r.Type)
			continue
		}
		for _, st := range r.SubTypes {
			g.AddEdge(from, to, st.Name)
		}
	}

	return g, nil
}

// entryLabel returns the gene name list of an entry,
// taken from its graphics element.
// KEGG truncates long lists with an ellipsis.
func entryLabel(e kgmlEntry) string {
	name := strings.TrimSpace(e.Graphics.Name)
	name = strings.TrimSuffix(name, "...")

	var gs []string
	for _, g := range strings.Split(name, ",") {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		gs = append(gs, g)
	}
	return strings.Join(gs, ",")
}
