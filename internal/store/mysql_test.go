package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/pfrederiksen/wc-matches/internal/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.local",
		Port:     "3306",
		User:     "wc",
		Password: "secret",
		DBName:   "worldcup",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "wc:secret@tcp(db.local:3306)/worldcup")
	assert.Contains(t, dsn, "parseTime=true")
	assert.NoError(t, ValidateDSN(dsn))
}

func TestValidateDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		wantErr bool
	}{
		{"full dsn", "user:pass@tcp(localhost:3306)/worldcup?parseTime=true", false},
		{"no password", "user@tcp(127.0.0.1:3306)/worldcup", false},
		{"missing database", "user:pass@tcp(localhost:3306)/", true},
		{"garbage", "not a dsn", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDSN(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOpen_InvalidDSN(t *testing.T) {
	_, err := Open(context.Background(), "not a dsn")
	assert.Error(t, err)
}

// Runs against a real server when WC_TEST_MYSQL_DSN is set
func TestMySQL_ReplaceMatches(t *testing.T) {
	dsn := os.Getenv("WC_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("WC_TEST_MYSQL_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	first := match.Table{
		{Home: "Uruguay", Score: "2–1", Away: "Brazil", Year: 1950},
		{Home: "Sweden", Score: "3–1", Away: "Spain", Year: 1950},
	}
	require.NoError(t, s.Save(ctx, first))

	second := match.Table{
		{Home: "Brazil", Score: "2–1", Away: "Argentina", Year: 1950},
	}
	require.NoError(t, s.Save(ctx, second))

	got, err := s.LoadMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
