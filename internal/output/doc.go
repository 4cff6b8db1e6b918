// Package output provides CSV persistence for match tables.
//
// Tables are written with a "home,score,away,year" header, comma delimited,
// one row per match and no index column. Writing a file always truncates any
// existing file at the path. Reading a file back yields the same tuples in the
// same order with the year parsed as an integer.
package output
