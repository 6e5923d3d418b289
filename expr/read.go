// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package expr

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Format is the format of an expression data file.
type Format int

// Valid expression file formats.
const (
	// Tab-delimited file:
	// sample names on the first row,
	// gene identifier and expression values
	// on the remaining rows.
	TSV Format = iota

	// As TSV, with comma as the delimiter.
	CSV

	// Gene Cluster Text file format,
	// as defined by the Broad Institute:
	// a "#1.2" version line,
	// a line with the row and sample counts,
	// and a matrix with Name and Description columns.
	GCT
)

// ReadOptions are the options
// for reading an expression data file.
type ReadOptions struct {
	// Format of the file.
	// ReadFile sets it from the file extension.
	Format Format

	// Description indicates that the file
	// has a gene description column,
	// after the gene identifier column.
	Description bool

	// Columns selects a subset of the sample columns.
	Columns Selector

	// Samples selects samples by their header name.
	// Do not use together with Columns.
	Samples []string
}

// ReadFile reads a collection of samples
// named group
// from an expression data file.
// The format is deduced from the file extension:
// ".gct" and ".csv" files are recognized,
// anything else is read as a tab-delimited file.
// Files with the ".gz" extension
// are decompressed on the fly.
func ReadFile(name, group string, opt ReadOptions) (*Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	base := name
	if strings.HasSuffix(base, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		defer gz.Close()
		r = gz
		base = strings.TrimSuffix(base, ".gz")
	}

	switch {
	case strings.HasSuffix(base, ".gct"):
		opt.Format = GCT
	case strings.HasSuffix(base, ".csv"):
		opt.Format = CSV
	default:
		opt.Format = TSV
	}

	c, err := Read(r, group, opt)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}

// Read reads a collection of samples
// named group
// from an expression data stream.
func Read(r io.Reader, group string, opt ReadOptions) (*Collection, error) {
	if opt.Format == GCT {
		return readGCT(r, group, opt)
	}

	delim := byte('\t')
	if opt.Format == CSV {
		delim = ','
	}
	return read(r, group, delim, opt)
}

func read(r io.Reader, group string, delim byte, opt ReadOptions) (*Collection, error) {
	tab := csv.NewReader(r)
	tab.Comma = rune(delim)
	tab.Comment = '#'
	tab.LazyQuotes = true

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}

	shift := 1
	if opt.Description {
		shift = 2
	} else if len(head) > 1 && strings.EqualFold(head[1], "description") {
		return nil, errors.New(`file contains a "description" column: set the description option`)
	}
	if len(head) <= shift {
		return nil, errors.New("no sample columns found")
	}
	avail := head[shift:]

	sel, err := selectColumns(avail, opt)
	if err != nil {
		return nil, err
	}

	c := NewCollection(group)
	for _, i := range sel {
		c.Samples = append(c.Samples, &Sample{
			Name: avail[i],
			Data: make(map[Gene]float64),
		})
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		g := GeneID(strings.TrimSpace(row[0]))
		if opt.Description {
			g.SetDescription(strings.TrimSpace(row[1]))
		}

		for si, i := range sel {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[shift+i]), 64)
			if err != nil {
				return nil, fmt.Errorf("on row %d: sample %q: %v", ln, avail[i], err)
			}
			c.Samples[si].Data[g] = v
		}
	}

	if len(c.Samples) == 0 || len(c.Samples[0].Data) == 0 {
		return nil, errors.New("no expression data found")
	}
	return c, nil
}

func selectColumns(avail []string, opt ReadOptions) ([]int, error) {
	if len(opt.Samples) > 0 {
		if opt.Columns != nil {
			return nil, errors.New("provide either a column or a sample selection, not both")
		}
		byName := make(map[string]int, len(avail))
		for i, n := range avail {
			byName[n] = i
		}

		var sel []int
		var lacking []string
		for _, n := range opt.Samples {
			i, ok := byName[n]
			if !ok {
				lacking = append(lacking, n)
				continue
			}
			sel = append(sel, i)
		}
		if len(lacking) > 0 {
			return nil, fmt.Errorf("samples %v are not available; found samples: %s",
				lacking, strings.Join(avail, ", "))
		}
		return sel, nil
	}

	if opt.Columns != nil {
		sel := opt.Columns.Sel(len(avail))
		if len(sel) == 0 {
			return nil, errors.New("column selection is empty")
		}
		return sel, nil
	}

	sel := make([]int, len(avail))
	for i := range avail {
		sel[i] = i
	}
	return sel, nil
}

// readGCT reads the Gene Cluster Text file format.
// The version and size lines are validated,
// but a size mismatch with the data matrix
// is not an error,
// following the tolerant behavior of the GSEA tools.
func readGCT(r io.Reader, group string, opt ReadOptions) (*Collection, error) {
	br := bufio.NewReader(r)

	version, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("gct version line: %v", err)
	}
	if strings.TrimSpace(version) != "#1.2" {
		return nil, fmt.Errorf("unsupported gct version %q", strings.TrimSpace(version))
	}

	sizes, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("gct size line: %v", err)
	}
	fields := strings.Split(strings.TrimSpace(sizes), "\t")
	if len(fields) != 2 {
		return nil, fmt.Errorf("gct size line: got %d fields, want 2", len(fields))
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return nil, fmt.Errorf("gct size line: %v", err)
		}
	}

	opt.Description = true
	return read(br, group, '\t', opt)
}
