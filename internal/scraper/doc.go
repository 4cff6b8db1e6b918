// Package scraper provides HTTP fetching and HTML extraction for World Cup tournament pages.
//
// The scraper fetches one Wikipedia page per tournament year
// (https://en.wikipedia.org/wiki/<year>_FIFA_World_Cup) and extracts match
// results from the page's "footballbox" containers. Each container must carry
// a home team cell (th.fhome), a score cell (th.fscore) and an away team cell
// (th.faway); a container missing any of them fails extraction for the run.
//
// Extraction sits behind the Extractor interface so that a change in the
// source markup is a localized failure that can be tested with a fixture page.
package scraper
