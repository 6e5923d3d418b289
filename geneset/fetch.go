// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package geneset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
)

// DefaultRemote is the default location
// of the molecular signature database mirror.
const DefaultRemote = "https://github.com/kn-bibs/pathways-data/raw/master/gsea/msigdb/"

// A Preset is a well known molecular signature database.
type Preset struct {
	Set   string // file set name, as used in the remote
	Label string
}

// Presets are the molecular signature databases
// known by their short name.
//
// Due to licensing restrictions,
// gene sets derived from KEGG,
// BioCarta,
// and the AAAS/STKE Cell Signaling Database
// are not available.
var Presets = map[string]Preset{
	"H": {Set: "h.all", Label: "hallmark gene sets"},
}

// PresetNames returns the names of the known presets.
func PresetNames() []string {
	ns := make([]string, 0, len(Presets))
	for n := range Presets {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// RemotePath returns the path of a database file
// relative to a remote mirror,
// for a given set name,
// database version,
// and gene identifier scheme
// ("symbols" or "entrez").
func RemotePath(set, version, identifiers string) string {
	return fmt.Sprintf("%s/%s.v%s.%s.gmt.gz", version, set, version, identifiers)
}

// Fetch downloads a database file
// from a remote mirror
// into a local data directory,
// and returns the path of the local file.
// If the local file already exists,
// no download is made.
func Fetch(remote, path, dataDir string) (string, error) {
	local := filepath.Join(dataDir, filepath.FromSlash(path))
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if err := os.MkdirAll(filepath.Dir(local), 0755); err != nil {
		return "", err
	}

	url := remote + path
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("while fetching %q: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("while fetching %q: %s", url, resp.Status)
	}

	f, err := os.Create(local)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(local)
		return "", fmt.Errorf("while fetching %q: %v", url, err)
	}
	return local, nil
}
