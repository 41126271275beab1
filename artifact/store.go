/* ==================================================================================== *\
   store.go

   Optional sqlite3-backed persistence for the training artifact (the
   learned edge table) and a domain-graph dump. Neither is load-bearing
   for the core's semantics: both are side-channel files the simulation
   core never reads back mid-run, the same way the warts/rib outputs are
   treated upstream.
\* ==================================================================================== */
package artifact

import (
	"database/sql"
	"fmt"
	"math"

	_ "github.com/mattn/go-sqlite3"

	surveillance "github.com/anaximander-labs/surveillance-overlay"
)

// Store is a thin wrapper over a sqlite3 database file.
type Store struct {
	db *sql.DB
}

// Open creates (or reuses) the sqlite3 database at `path` and ensures
// its schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("[artifact.Store.Open]: %w", err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS learned_edges (
	src INTEGER NOT NULL,
	dst INTEGER NOT NULL,
	distance REAL NOT NULL,
	intensity INTEGER NOT NULL,
	min_time REAL, -- NULL means "never observed" (+Inf)
	PRIMARY KEY (src, dst)
);
CREATE TABLE IF NOT EXISTS domain_edges (
	u INTEGER NOT NULL,
	v INTEGER NOT NULL,
	weight REAL NOT NULL,
	PRIMARY KEY (u, v)
);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("[artifact.Store.createSchema]: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveLearnedEdges persists the training artifact emitted by
// surveillance.SurveillanceController.OnEndOfTime.
func (s *Store) SaveLearnedEdges(edges []surveillance.LearnedEdge) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("[artifact.Store.SaveLearnedEdges]: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO learned_edges (src, dst, distance, intensity, min_time) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("[artifact.Store.SaveLearnedEdges]: %w", err)
	}
	defer stmt.Close()

	for _, e := range edges {
		var minTime interface{}
		if !math.IsInf(e.MinTime, 1) {
			minTime = e.MinTime
		}
		if _, err := stmt.Exec(e.Src, e.Dst, e.Distance, e.Intensity, minTime); err != nil {
			tx.Rollback()
			return fmt.Errorf("[artifact.Store.SaveLearnedEdges]: %w", err)
		}
	}
	return tx.Commit()
}

// LoadLearnedEdges reads back a previously persisted training artifact.
func (s *Store) LoadLearnedEdges() ([]surveillance.LearnedEdge, error) {
	rows, err := s.db.Query(`SELECT src, dst, distance, intensity, min_time FROM learned_edges ORDER BY src, dst`)
	if err != nil {
		return nil, fmt.Errorf("[artifact.Store.LoadLearnedEdges]: %w", err)
	}
	defer rows.Close()

	var edges []surveillance.LearnedEdge
	for rows.Next() {
		var e surveillance.LearnedEdge
		var minTime sql.NullFloat64
		if err := rows.Scan(&e.Src, &e.Dst, &e.Distance, &e.Intensity, &minTime); err != nil {
			return nil, fmt.Errorf("[artifact.Store.LoadLearnedEdges]: %w", err)
		}
		if minTime.Valid {
			e.MinTime = minTime.Float64
		} else {
			e.MinTime = math.Inf(1)
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// DomainEdge is one row of the opaque domain-graph dump.
type DomainEdge struct {
	U, V   int
	Weight float64
}

// SaveDomainGraph dumps the domain graph's edge list.
func (s *Store) SaveDomainGraph(edges []DomainEdge) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("[artifact.Store.SaveDomainGraph]: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO domain_edges (u, v, weight) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("[artifact.Store.SaveDomainGraph]: %w", err)
	}
	defer stmt.Close()

	for _, e := range edges {
		if _, err := stmt.Exec(e.U, e.V, e.Weight); err != nil {
			tx.Rollback()
			return fmt.Errorf("[artifact.Store.SaveDomainGraph]: %w", err)
		}
	}
	return tx.Commit()
}
