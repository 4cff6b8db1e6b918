// Package pipeline runs the scrape as one sequential pass.
//
// For every year in order the page is fetched, its match containers are
// extracted and a year table is built. The year tables are then concatenated
// and written to the output file once, followed by any configured sinks. The
// first error aborts the run; nothing is written unless every year succeeded.
package pipeline
