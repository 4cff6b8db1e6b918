package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/pfrederiksen/wc-matches/internal/match"
)

// WriteCSV encodes the table with a header row. The header is written even
// when the table is empty.
func WriteCSV(w io.Writer, t match.Table) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	enc.AutoHeader = false

	if err := enc.EncodeHeader(match.Match{}); err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}
	for i := range t {
		if err := enc.Encode(t[i]); err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// ReadCSV decodes a table previously written by WriteCSV
func ReadCSV(r io.Reader) (match.Table, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading header: empty input")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	table := match.Table{}
	if err := dec.Decode(&table); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding rows: %w", err)
	}
	return table, nil
}

// WriteFile writes the table to path, overwriting any existing file.
// The parent directory must already exist.
func WriteFile(path string, t match.Table) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// ReadFile reads a table from a CSV file
func ReadFile(path string) (match.Table, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ExpandPath expands a leading ~/ to the user's home directory
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
