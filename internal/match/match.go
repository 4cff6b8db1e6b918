package match

import (
	"errors"
	"fmt"
)

// ErrColumnMismatch is returned when the extracted columns differ in length.
var ErrColumnMismatch = errors.New("column length mismatch")

// Match represents a single World Cup match result.
// Field order defines the CSV column order.
type Match struct {
	Home  string `csv:"home" json:"home"`
	Score string `csv:"score" json:"score"` // e.g. "2–1", or a placeholder for unplayed matches
	Away  string `csv:"away" json:"away"`
	Year  int    `csv:"year" json:"year"`
}

// Header returns the column names in output order
func Header() []string {
	return []string{"home", "score", "away", "year"}
}

// Columns holds the three parallel text sequences pulled from one page
type Columns struct {
	Home  []string
	Score []string
	Away  []string
}

// Len returns the number of rows if all three columns agree
func (c Columns) Len() (int, error) {
	n := len(c.Home)
	if len(c.Score) != n || len(c.Away) != n {
		return 0, fmt.Errorf("%w: home=%d score=%d away=%d",
			ErrColumnMismatch, len(c.Home), len(c.Score), len(c.Away))
	}
	return n, nil
}

// Append adds one extracted match to the columns
func (c *Columns) Append(home, score, away string) {
	c.Home = append(c.Home, home)
	c.Score = append(c.Score, score)
	c.Away = append(c.Away, away)
}
