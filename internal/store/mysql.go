package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pfrederiksen/wc-matches/internal/logger"
	"github.com/pfrederiksen/wc-matches/internal/match"
)

// TableName is the table holding the combined dataset
const TableName = "world_cup_matches"

const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + TableName + ` (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		position   INT          NOT NULL,
		home       VARCHAR(128) NOT NULL,
		score      VARCHAR(64)  NOT NULL,
		away       VARCHAR(128) NOT NULL,
		year       SMALLINT     NOT NULL,
		created_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_position (position),
		KEY idx_year (year)
	) DEFAULT CHARSET=utf8mb4
`

// MySQL writes match tables to a MySQL/MariaDB database
type MySQL struct {
	db *sql.DB
}

// Config holds discrete connection settings
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DSN formats the settings as a driver DSN with parseTime enabled
func (c Config) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = c.Host + ":" + c.Port
	cfg.DBName = c.DBName
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// ValidateDSN reports whether dsn can be parsed by the driver
func ValidateDSN(dsn string) error {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return fmt.Errorf("invalid mysql dsn: %w", err)
	}
	if cfg.DBName == "" {
		return fmt.Errorf("invalid mysql dsn: database name is required")
	}
	return nil
}

// Open connects to the database and verifies the connection
func Open(ctx context.Context, dsn string) (*MySQL, error) {
	if err := ValidateDSN(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database connection: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Debug("Connected to database", nil)
	return &MySQL{db: db}, nil
}

// Name identifies the sink in logs
func (s *MySQL) Name() string {
	return "mysql"
}

// Migrate creates the matches table if needed
func (s *MySQL) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("creating %s table: %w", TableName, err)
	}
	return nil
}

// Save replaces the stored matches with t
func (s *MySQL) Save(ctx context.Context, t match.Table) error {
	if err := s.Migrate(ctx); err != nil {
		return err
	}
	return s.ReplaceMatches(ctx, t)
}

// ReplaceMatches deletes every stored row and inserts t in order, atomically
func (s *MySQL) ReplaceMatches(ctx context.Context, t match.Table) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM "+TableName); err != nil {
		return fmt.Errorf("clearing %s: %w", TableName, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO "+TableName+" (position, home, score, away, year) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range t {
		if _, err = stmt.ExecContext(ctx, i, m.Home, m.Score, m.Away, m.Year); err != nil {
			return fmt.Errorf("inserting row %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing matches: %w", err)
	}

	logger.Info("Stored matches", logger.Fields{
		"table": TableName,
		"rows":  len(t),
	})
	return nil
}

// LoadMatches returns the stored rows in position order
func (s *MySQL) LoadMatches(ctx context.Context) (match.Table, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT home, score, away, year FROM "+TableName+" ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", TableName, err)
	}
	defer rows.Close()

	table := match.Table{}
	for rows.Next() {
		var m match.Match
		if err := rows.Scan(&m.Home, &m.Score, &m.Away, &m.Year); err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		table = append(table, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating match rows: %w", err)
	}
	return table, nil
}

// Close releases the connection pool
func (s *MySQL) Close() error {
	return s.db.Close()
}
