// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultKEGG is the base URL of the KEGG REST API.
const DefaultKEGG = "https://rest.kegg.jp"

// A Client is a client of the KEGG REST API.
// Results retrieved with a client
// are usually stored in a Cache,
// so the analysis methods can run offline.
type Client struct {
	// Base is the base URL of the API.
	// If empty, DefaultKEGG is used.
	Base string

	// HTTP is the client used for the requests.
	// If nil, a client with a 2 minute timeout is used.
	HTTP *http.Client
}

func (c *Client) get(path string) ([]byte, error) {
	base := c.Base
	if base == "" {
		base = DefaultKEGG
	}
	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: 2 * time.Minute}
	}

	url := base + path
	resp, err := hc.Get(url)
	if err != nil {
		return nil, fmt.Errorf("while fetching %q: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("while fetching %q: %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("while fetching %q: %v", url, err)
	}
	return data, nil
}

// Organisms returns the organisms known by KEGG,
// as a map from organism name to organism code
// (for example "Homo sapiens" to "hsa").
// Parenthesized name variants
// ("Homo sapiens (human)")
// are indexed under both forms.
func (c *Client) Organisms() (map[string]string, error) {
	data, err := c.get("/list/organism")
	if err != nil {
		return nil, err
	}

	codes := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		code := fields[1]
		org := fields[2]
		if i := strings.Index(org, "("); i >= 0 {
			v := strings.TrimSuffix(org[i+1:], ")")
			codes[strings.TrimSpace(v)] = code
			org = org[:i]
		}
		codes[strings.TrimSpace(org)] = code
	}
	return codes, nil
}

// Pathways returns the pathways of an organism,
// as a map from pathway ID to pathway description.
func (c *Client) Pathways(org string) (map[string]string, error) {
	data, err := c.get("/list/pathway/" + org)
	if err != nil {
		return nil, err
	}

	ps := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		id := strings.TrimPrefix(fields[0], "path:")
		ps[id] = fields[1]
	}
	return ps, nil
}

// FindGene returns the KEGG entry
// ("hsa:7157")
// of a gene symbol in an organism,
// or an empty string if the gene is unknown.
func (c *Client) FindGene(org, symbol string) (string, error) {
	data, err := c.get("/find/" + org + "/" + symbol)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		names, _, _ := strings.Cut(fields[1], ";")
		for _, n := range strings.Split(names, ",") {
			if strings.EqualFold(strings.TrimSpace(n), symbol) {
				return fields[0], nil
			}
		}
	}
	return "", nil
}

// PathwaysOfGene returns the IDs of the pathways
// containing a gene entry
// (as returned by FindGene).
func (c *Client) PathwaysOfGene(entry string) ([]string, error) {
	data, err := c.get("/link/pathway/" + entry)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		ids = append(ids, strings.TrimPrefix(fields[1], "path:"))
	}
	return ids, nil
}

// KGML returns the KGML document of a pathway.
func (c *Client) KGML(id string) ([]byte, error) {
	return c.get("/get/" + id + "/kgml")
}
