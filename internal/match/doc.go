// Package match provides the record and table types for World Cup match results.
//
// A Match is one row of the dataset: home team, score text, away team and the
// tournament year. A Table is an ordered slice of matches. Year tables are built
// from the three column slices produced by the scraper, and combined tables are
// the in-order concatenation of year tables. Tables are never re-sorted or
// deduplicated.
package match
