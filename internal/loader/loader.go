// Package loader materializes the generated CSV collections into a
// schema-constrained SQLite store, atomically: schema creation, all inserts,
// and index creation share one transaction, and any failure rolls the store
// back to its pre-run state.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/dataset"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/schema"
)

type Loader struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

// Open connects to the SQLite store at path, creating parent directories.
// Foreign-key enforcement is switched on in the DSN so it applies before any
// DDL or DML runs; the pool is pinned to one connection since the store has
// exactly one writer.
func Open(path string) (*Loader, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite connection: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Loader{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func (l *Loader) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Load reads the five interchange files from dir and ingests them in
// dependency order. All sources are read before the transaction opens, so a
// missing file surfaces as dataset.ErrSourceNotFound without touching the
// store.
func (l *Loader) Load(ctx context.Context, dir string) error {
	sources := make(map[string]*dataset.Table, len(schema.LoadOrder))
	for _, name := range schema.LoadOrder {
		src, err := dataset.Read(dir, name)
		if err != nil {
			return err
		}
		sources[name] = src
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, name := range schema.LoadOrder {
		table, _ := schema.TableByName(name)
		if _, err := tx.ExecContext(ctx, table.CreateSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", name, err)
		}
	}

	for _, name := range schema.LoadOrder {
		table, _ := schema.TableByName(name)
		if err := l.insertTable(ctx, tx, table, sources[name]); err != nil {
			return fmt.Errorf("failed to load table %s: %w", name, err)
		}
	}

	for _, name := range schema.LoadOrder {
		table, _ := schema.TableByName(name)
		for _, stmt := range table.IndexSQL() {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to create index on %s: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load transaction: %w", err)
	}
	return nil
}

func (l *Loader) insertTable(ctx context.Context, tx *sql.Tx, table schema.Table, src *dataset.Table) error {
	if err := checkHeader(table, src); err != nil {
		return err
	}

	for _, row := range src.Rows {
		values, err := convertRow(table, src.Header, row)
		if err != nil {
			return err
		}
		query, args, err := l.qb.Insert(table.Name).
			Columns(src.Header...).
			Values(values...).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

func checkHeader(table schema.Table, src *dataset.Table) error {
	want := table.ColumnNames()
	if len(src.Header) != len(want) {
		return fmt.Errorf("header mismatch: got %d columns, want %d", len(src.Header), len(want))
	}
	for i, name := range want {
		if src.Header[i] != name {
			return fmt.Errorf("header mismatch at column %d: got %q, want %q", i, src.Header[i], name)
		}
	}
	return nil
}

// Counts reports per-table row counts; used by the status command.
func (l *Loader) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(schema.LoadOrder))
	for _, name := range schema.LoadOrder {
		query, args, err := l.qb.Select("COUNT(*)").From(name).ToSql()
		if err != nil {
			return nil, err
		}
		var n int
		if err := l.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
