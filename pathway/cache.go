// Copyright © 2024 The kn-bibs authors.
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pathway

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// A Cache is a local store of KEGG data
// backed by an SQLite database,
// so the topology aware methods
// can run repeatedly and offline
// over the same pathway snapshot.
type Cache struct {
	db *sql.DB
}

var cacheSchema = `
CREATE TABLE IF NOT EXISTS organisms (
	name TEXT PRIMARY KEY,
	code TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS pathways (
	id   TEXT PRIMARY KEY,
	org  TEXT NOT NULL,
	name TEXT NOT NULL,
	kgml BLOB
);
CREATE TABLE IF NOT EXISTS genes (
	org  TEXT NOT NULL,
	gene TEXT NOT NULL,
	PRIMARY KEY (org, gene)
);
CREATE TABLE IF NOT EXISTS gene_pathways (
	org     TEXT NOT NULL,
	gene    TEXT NOT NULL,
	pathway TEXT NOT NULL,
	PRIMARY KEY (org, gene, pathway)
);
`

// OpenCache opens (creating it if needed)
// a pathway cache database.
func OpenCache(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("on cache %q: %v", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("on cache %q: %v", path, err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("on cache %q: %v", path, err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("on cache %q: %v", path, err)
	}

	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SetOrganisms stores the organism name to code table.
func (c *Cache) SetOrganisms(codes map[string]string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for name, code := range codes {
		if _, err := tx.Exec(`
			INSERT INTO organisms (name, code) VALUES (?, ?)
			ON CONFLICT (name) DO UPDATE SET code = excluded.code`,
			name, code); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// OrganismCode returns the KEGG code of an organism
// given its name
// ("Homo sapiens", "human")
// or the code itself.
func (c *Cache) OrganismCode(org string) (string, error) {
	var code string
	err := c.db.QueryRow(`SELECT code FROM organisms WHERE name = ?`, org).Scan(&code)
	if err == nil {
		return code, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	// maybe the user gave the code itself
	var n int
	if err := c.db.QueryRow(`SELECT count(*) FROM organisms WHERE code = ?`, org).Scan(&n); err != nil {
		return "", err
	}
	if n > 0 {
		return org, nil
	}
	return "", fmt.Errorf("unknown organism %q", org)
}

// HasOrganisms reports whether the organism table
// has been populated.
func (c *Cache) HasOrganisms() (bool, error) {
	var n int
	if err := c.db.QueryRow(`SELECT count(*) FROM organisms`).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddPathway stores a pathway and its KGML document.
func (c *Cache) AddPathway(id, org, name string, kgml []byte) error {
	_, err := c.db.Exec(`
		INSERT INTO pathways (id, org, name, kgml) VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET org = excluded.org, name = excluded.name, kgml = excluded.kgml`,
		id, org, name, kgml)
	return err
}

// Pathways returns the cached pathways of an organism,
// as a map from pathway ID to description.
func (c *Cache) Pathways(org string) (map[string]string, error) {
	rows, err := c.db.Query(`SELECT id, name FROM pathways WHERE org = ?`, org)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ps := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		ps[id] = name
	}
	return ps, rows.Err()
}

// Graph returns the interaction graph of a cached pathway.
func (c *Cache) Graph(id string) (*Graph, error) {
	var name string
	var kgml []byte
	err := c.db.QueryRow(`SELECT name, kgml FROM pathways WHERE id = ?`, id).Scan(&name, &kgml)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pathway %q not in cache", id)
	}
	if err != nil {
		return nil, err
	}
	if len(kgml) == 0 {
		return nil, fmt.Errorf("pathway %q has no topology in cache", id)
	}
	return ParseKGML(id, name, kgml)
}

// SetGenePathways records the pathways of a gene,
// and marks the gene as fetched
// (even when the pathway list is empty).
func (c *Cache) SetGenePathways(org, gene string, ids []string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO genes (org, gene) VALUES (?, ?)
		ON CONFLICT (org, gene) DO NOTHING`,
		org, gene); err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := tx.Exec(`
			INSERT INTO gene_pathways (org, gene, pathway) VALUES (?, ?, ?)
			ON CONFLICT (org, gene, pathway) DO NOTHING`,
			org, gene, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// PathwaysByGene returns the IDs of the cached pathways
// containing a gene.
// The second value reports whether the gene
// has been fetched into the cache at all.
func (c *Cache) PathwaysByGene(org, gene string) ([]string, bool, error) {
	var n int
	if err := c.db.QueryRow(`SELECT count(*) FROM genes WHERE org = ? AND gene = ?`, org, gene).Scan(&n); err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}

	rows, err := c.db.Query(`SELECT pathway FROM gene_pathways WHERE org = ? AND gene = ?`, org, gene)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, false, err
		}
		ids = append(ids, id)
	}
	return ids, true, rows.Err()
}
