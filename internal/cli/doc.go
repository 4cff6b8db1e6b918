// Package cli implements the command-line interface for wc-matches.
//
// The root command scrapes every configured World Cup year into a single CSV
// file. The fixture subcommand scrapes one upcoming tournament into its own
// file, and the years subcommand prints the default year list. Settings come
// from flags, falling back to WC_* environment variables, which may be loaded
// from a .env file.
package cli
