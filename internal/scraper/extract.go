package scraper

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/wc-matches/internal/match"
)

// Markup selectors for Wikipedia football boxes
const (
	SelectorMatchBox = "div.footballbox"
	SelectorHome     = "th.fhome"
	SelectorScore    = "th.fscore"
	SelectorAway     = "th.faway"
)

// ErrMissingCell is returned when a match container lacks an expected cell
var ErrMissingCell = errors.New("match container missing cell")

// Extractor turns raw page markup into match columns
type Extractor interface {
	Extract(r io.Reader) (match.Columns, error)
}

// FootballBoxExtractor reads Wikipedia footballbox containers
type FootballBoxExtractor struct{}

// Extract returns home, score and away text for every container in document order
func (FootballBoxExtractor) Extract(r io.Reader) (match.Columns, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return match.Columns{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var cols match.Columns
	var extractErr error

	doc.Find(SelectorMatchBox).EachWithBreak(func(i int, box *goquery.Selection) bool {
		home, err := cellText(box, SelectorHome)
		if err != nil {
			extractErr = fmt.Errorf("container %d: %w", i, err)
			return false
		}
		score, err := cellText(box, SelectorScore)
		if err != nil {
			extractErr = fmt.Errorf("container %d: %w", i, err)
			return false
		}
		away, err := cellText(box, SelectorAway)
		if err != nil {
			extractErr = fmt.Errorf("container %d: %w", i, err)
			return false
		}

		cols.Append(home, score, away)
		return true
	})

	if extractErr != nil {
		return match.Columns{}, extractErr
	}

	return cols, nil
}

// cellText returns the trimmed text of the first element matching selector
func cellText(box *goquery.Selection, selector string) (string, error) {
	cell := box.Find(selector).First()
	if cell.Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingCell, selector)
	}
	return strings.TrimSpace(cell.Text()), nil
}
