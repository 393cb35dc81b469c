// Package database links near-Earth objects to their close approaches and
// answers lookups and queries over the joined data set.
//
// A Database is built once from unlinked collections and read many times.
// Construction resolves every approach's designation against the object
// index and wires the back-references both ways; after that nothing mutates
// the graph, so reads need no synchronization.
package database

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/HatemSelim94/NEO/internal/metrics"
	"github.com/HatemSelim94/NEO/internal/neo"
)

// Predicate decides whether a close approach belongs in a query's results.
type Predicate func(*neo.CloseApproach) bool

// Database owns the full NEO and close-approach collections plus the
// designation and name indices over the objects.
type Database struct {
	neos       []*neo.NearEarthObject
	approaches []*neo.CloseApproach

	byDesignation map[string]int
	byName        map[string]int
}

// New links the supplied collections into a Database.
//
// Both collections must be unlinked: no object has approaches attached and
// no approach has its NEO reference set. New mutates them in place — each
// approach gains its NEO reference and is appended to that object's
// Approaches in input order — and the resulting graph belongs to the
// returned Database.
//
// An approach whose designation resolves to no object is a data-integrity
// fault and fails construction.
func New(neos []*neo.NearEarthObject, approaches []*neo.CloseApproach, logger *slog.Logger) (*Database, error) {
	db := &Database{
		neos:          neos,
		approaches:    approaches,
		byDesignation: make(map[string]int, len(neos)),
		byName:        make(map[string]int),
	}

	// Duplicate designations are not validated; the last occurrence wins.
	for i, n := range neos {
		if n.Designation != "" {
			db.byDesignation[n.Designation] = i
		}
		if n.Name != "" {
			db.byName[n.Name] = i
		}
	}

	for _, ca := range approaches {
		i, ok := db.byDesignation[ca.Designation]
		if !ok {
			return nil, fmt.Errorf("linking close approach at %s: unknown designation %q", ca.TimeStr(), ca.Designation)
		}
		obj := db.neos[i]
		ca.NEO = obj
		obj.Approaches = append(obj.Approaches, ca)
	}

	logger.Info("database linked",
		"neos", len(neos),
		"approaches", len(approaches),
		"named", len(db.byName),
	)

	return db, nil
}

// GetByDesignation returns the NEO with the given primary designation, or
// nil when no object matches. Matching is exact.
func (db *Database) GetByDesignation(designation string) *neo.NearEarthObject {
	i, ok := db.byDesignation[designation]
	if !ok {
		metrics.IncLookupMiss("designation")
		return nil
	}
	metrics.IncLookupHit("designation")
	return db.neos[i]
}

// GetByName returns the NEO with the given IAU name, or nil when no object
// matches. Unnamed objects are never indexed, so the empty string always
// misses.
func (db *Database) GetByName(name string) *neo.NearEarthObject {
	i, ok := db.byName[name]
	if !ok {
		metrics.IncLookupMiss("name")
		return nil
	}
	metrics.IncLookupHit("name")
	return db.neos[i]
}

// Query returns a lazy sequence of the close approaches satisfying pred, in
// construction order. A nil predicate yields every approach. Each call
// restarts from the beginning, elements are produced only as the consumer
// pulls them, and breaking out early skips the remaining predicate checks.
func (db *Database) Query(pred Predicate) iter.Seq[*neo.CloseApproach] {
	return func(yield func(*neo.CloseApproach) bool) {
		metrics.IncQueries()
		start := time.Now()
		yielded := 0
		defer func() {
			metrics.AddQueryResults(yielded)
			metrics.ObserveQueryDuration(time.Since(start).Seconds())
		}()

		for _, ca := range db.approaches {
			if pred != nil && !pred(ca) {
				continue
			}
			yielded++
			if !yield(ca) {
				return
			}
		}
	}
}

// NEOCount returns the number of objects in the database.
func (db *Database) NEOCount() int {
	return len(db.neos)
}

// ApproachCount returns the number of close approaches in the database.
func (db *Database) ApproachCount() int {
	return len(db.approaches)
}
