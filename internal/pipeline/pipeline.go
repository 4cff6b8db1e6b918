package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/wc-matches/internal/logger"
	"github.com/pfrederiksen/wc-matches/internal/match"
	"github.com/pfrederiksen/wc-matches/internal/output"
	"github.com/pfrederiksen/wc-matches/internal/scraper"
)

const (
	DefaultOutput        = "fifa_worldcup_historical_data.csv"
	DefaultFixtureOutput = "fifa_worldcup_fixture.csv"
	DefaultFixtureYear   = 2022
)

// DefaultYears lists every tournament from 1930 through 2018
var DefaultYears = []int{
	1930, 1934, 1938, 1950, 1954, 1958, 1962, 1966, 1970, 1974, 1978,
	1982, 1986, 1990, 1994, 1998, 2002, 2006, 2010, 2014, 2018,
}

// ErrNoYears is returned when the pipeline has nothing to scrape
var ErrNoYears = errors.New("no tournament years configured")

// Fetcher returns the raw markup of the tournament page for a year
type Fetcher interface {
	FetchPage(ctx context.Context, year int) (string, error)
}

// Sink receives the combined table after the file has been written
type Sink interface {
	Name() string
	Save(ctx context.Context, t match.Table) error
}

// Pipeline wires the fetch, extract, build, concat and write steps
type Pipeline struct {
	Fetcher   Fetcher
	Extractor scraper.Extractor
	Years     []int
	Output    string
	Sinks     []Sink
}

// YearResult summarizes one scraped year
type YearResult struct {
	Year int `json:"year"`
	Rows int `json:"rows"`
}

// Report describes a completed run
type Report struct {
	Output   string        `json:"output"`
	Years    []YearResult  `json:"years"`
	Total    int           `json:"total"`
	Duration time.Duration `json:"duration"`
}

// New creates a pipeline over the default years and output file
func New(fetcher Fetcher) *Pipeline {
	years := make([]int, len(DefaultYears))
	copy(years, DefaultYears)

	return &Pipeline{
		Fetcher:   fetcher,
		Extractor: scraper.FootballBoxExtractor{},
		Years:     years,
		Output:    DefaultOutput,
	}
}

// ScrapeYear fetches one tournament page and builds its year table
func (p *Pipeline) ScrapeYear(ctx context.Context, year int) (match.Table, error) {
	page, err := p.Fetcher.FetchPage(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("fetching %d page: %w", year, err)
	}

	cols, err := p.Extractor.Extract(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("extracting %d matches: %w", year, err)
	}

	table, err := match.NewYearTable(cols, year)
	if err != nil {
		return nil, fmt.Errorf("building %d table: %w", year, err)
	}

	return table, nil
}

// Collect scrapes every configured year in order and returns the combined table
func (p *Pipeline) Collect(ctx context.Context) (match.Table, []YearResult, error) {
	if len(p.Years) == 0 {
		return nil, nil, ErrNoYears
	}

	tables := make([]match.Table, 0, len(p.Years))
	results := make([]YearResult, 0, len(p.Years))

	for _, year := range p.Years {
		table, err := p.ScrapeYear(ctx, year)
		if err != nil {
			logger.Error("Scrape failed", logger.Fields{"year": year}, err)
			return nil, nil, err
		}

		logger.Info("Scraped year", logger.Fields{
			"year":    year,
			"matches": len(table),
		})
		logger.IncrCounter("years.scraped")
		logger.AddCounter("matches.extracted", int64(len(table)))

		tables = append(tables, table)
		results = append(results, YearResult{Year: year, Rows: len(table)})
	}

	return match.Concat(tables...), results, nil
}

// Run scrapes all years, writes the output file and feeds the sinks
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	combined, results, err := p.Collect(ctx)
	if err != nil {
		return nil, err
	}

	if err := output.WriteFile(p.Output, combined); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	logger.Info("Wrote dataset", logger.Fields{
		"path": p.Output,
		"rows": len(combined),
	})

	for _, sink := range p.Sinks {
		if err := sink.Save(ctx, combined); err != nil {
			return nil, fmt.Errorf("saving to %s: %w", sink.Name(), err)
		}
	}

	return &Report{
		Output:   p.Output,
		Years:    results,
		Total:    len(combined),
		Duration: time.Since(start),
	}, nil
}
