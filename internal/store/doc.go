// Package store mirrors the combined match table into MySQL.
//
// The store is an optional sink next to the CSV file. Each run replaces the
// contents of the world_cup_matches table inside a single transaction, so the
// table always holds exactly the rows of the most recent successful run, in
// run order (the position column).
package store
