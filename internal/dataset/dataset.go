// Package dataset handles the CSV interchange layer between generation and
// ingestion: one file per entity table, header row first, timestamps as
// "2006-01-02 15:04:05" text, booleans as literal true/false.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSourceNotFound marks a missing interchange file, distinguishable from
// generic I/O failures via errors.Is.
var ErrSourceNotFound = errors.New("source file not found")

// TimeFormat is the interchange timestamp layout.
const TimeFormat = "2006-01-02 15:04:05"

// Table is one entity collection in interchange form.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// FileName maps a table name to its interchange file name.
func FileName(table string) string {
	return table + ".csv"
}

// WriteAll writes every table to dir, creating it if needed.
func WriteAll(dir string, tables []Table) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	for _, t := range tables {
		if err := writeTable(dir, t); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(dir string, t Table) error {
	path := filepath.Join(dir, FileName(t.Name))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", t.Name, err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", t.Name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", t.Name, err)
	}
	return file.Close()
}

// Read loads one table from dir. A missing file is reported as
// ErrSourceNotFound before any read happens.
func Read(dir, table string) (*Table, error) {
	path := filepath.Join(dir, FileName(table))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty interchange file: %s", path)
	}

	return &Table{
		Name:   table,
		Header: records[0],
		Rows:   records[1:],
	}, nil
}
