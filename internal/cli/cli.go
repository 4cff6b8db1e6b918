package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pfrederiksen/wc-matches/internal/logger"
	"github.com/pfrederiksen/wc-matches/internal/pipeline"
	"github.com/pfrederiksen/wc-matches/internal/scraper"
	"github.com/pfrederiksen/wc-matches/internal/store"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOutput     string
	flagYears      []int
	flagFixtureOut string
	flagFixtureYr  int
	flagBaseURL    string
	flagTimeout    time.Duration
	flagFormat     string
	flagLogLevel   string
	flagVerbose    bool
	flagMySQLDSN   string
	flagEnvFile    string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wc-matches",
		Short: "Scrape historical FIFA World Cup match results into CSV",
		Long: `Fetches the Wikipedia page of every FIFA World Cup from 1930 to 2018,
extracts each match's home team, score and away team, and writes all of them
to a single CSV file with the columns home,score,away,year.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE:              runHistorical,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flagBaseURL, "base-url", scraper.DefaultBaseURL, "Encyclopedia base URL (env WC_BASE_URL)")
	pf.DurationVar(&flagTimeout, "timeout", scraper.Timeout, "Per-request HTTP timeout, 0 for none (env WC_TIMEOUT)")
	pf.StringVar(&flagFormat, "format", string(FormatText), "Summary format: text or json")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error (env WC_LOG_LEVEL)")
	pf.BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	pf.StringVar(&flagMySQLDSN, "mysql-dsn", "", "Also store matches in MySQL (env WC_MYSQL_DSN)")
	pf.StringVar(&flagEnvFile, "env-file", ".env", "Optional dotenv file with WC_* settings")

	cmd.Flags().StringVarP(&flagOutput, "output", "o", pipeline.DefaultOutput, "Output CSV path (env WC_OUTPUT)")
	cmd.Flags().IntSliceVar(&flagYears, "years", append([]int(nil), pipeline.DefaultYears...), "Tournament years to scrape, in order")

	cmd.AddCommand(newFixtureCmd(), newYearsCmd())

	return cmd
}

func newFixtureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Scrape the match list of a single tournament",
		Long: `Scrapes one tournament page (by default the 2022 World Cup) into its own
CSV file. Matches not yet played keep the page's placeholder in the score column.`,
		Args: cobra.NoArgs,
		RunE: runFixture,
	}

	cmd.Flags().IntVar(&flagFixtureYr, "year", pipeline.DefaultFixtureYear, "Tournament year")
	cmd.Flags().StringVarP(&flagFixtureOut, "output", "o", pipeline.DefaultFixtureOutput, "Output CSV path")

	return cmd
}

func newYearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "Print the default tournament years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, y := range pipeline.DefaultYears {
				fmt.Fprintln(cmd.OutOrStdout(), y)
			}
			return nil
		},
	}
}

// setup loads env settings and configures logging for every command
func setup(cmd *cobra.Command, args []string) error {
	if err := loadEnv(cmd, flagEnvFile); err != nil {
		return err
	}

	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	if flagVerbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
	logger.ResetMetrics()

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	return nil
}

// runHistorical scrapes every configured year into one file
func runHistorical(cmd *cobra.Command, args []string) error {
	if err := validateYears(flagYears); err != nil {
		return err
	}
	return run(cmd, flagYears, flagOutput)
}

// runFixture scrapes a single tournament
func runFixture(cmd *cobra.Command, args []string) error {
	years := []int{flagFixtureYr}
	if err := validateYears(years); err != nil {
		return err
	}
	return run(cmd, years, flagFixtureOut)
}

func run(cmd *cobra.Command, years []int, outPath string) error {
	ctx := cmd.Context()

	sc := scraper.New(
		scraper.WithBaseURL(flagBaseURL),
		scraper.WithTimeout(flagTimeout),
	)

	p := pipeline.New(sc)
	p.Years = years
	p.Output = outPath

	logger.Debug("Starting run", logger.Fields{
		"years":    years,
		"output":   outPath,
		"base_url": flagBaseURL,
	})

	if flagMySQLDSN != "" {
		db, err := store.Open(ctx, flagMySQLDSN)
		if err != nil {
			return fmt.Errorf("initializing store: %w", err)
		}
		defer db.Close()
		p.Sinks = append(p.Sinks, db)
	}

	report, err := p.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Run metrics", logger.MetricsSnapshot())

	if err := WriteOutput(cmd.OutOrStdout(), report, OutputFormat(strings.ToLower(flagFormat))); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func validateYears(years []int) error {
	if len(years) == 0 {
		return fmt.Errorf("at least one year is required")
	}
	for _, y := range years {
		if y < 1930 {
			return fmt.Errorf("invalid year %d: the first World Cup was held in 1930", y)
		}
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
