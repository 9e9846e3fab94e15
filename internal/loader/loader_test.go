package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/dataset"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/schema"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/synth"
)

var testAnchor = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func writeDataset(t *testing.T, seed int64) (string, *synth.Dataset) {
	t.Helper()
	dir := t.TempDir()
	ds := synth.GenerateAll(synth.NewSession(seed, testAnchor))
	if err := dataset.WriteAll(dir, ds.Tables()); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
	return dir, ds
}

func openLoader(t *testing.T) (*Loader, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "store", "ecom.db")
	l, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open loader: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l, dbPath
}

func TestLoadEndToEnd(t *testing.T) {
	dir, ds := writeDataset(t, 42)
	l, dbPath := openLoader(t)

	if err := l.Load(context.Background(), dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("Database file missing: %v", err)
	}

	counts, err := l.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	want := map[string]int{
		"products":    len(ds.Products),
		"users":       len(ds.Users),
		"orders":      len(ds.Orders),
		"order_items": len(ds.Items),
		"reviews":     len(ds.Reviews),
	}
	for name, n := range want {
		if counts[name] != n {
			t.Errorf("Table %s: got %d rows, want %d", name, counts[name], n)
		}
	}
}

func TestLoadCreatesIndexes(t *testing.T) {
	dir, _ := writeDataset(t, 42)
	l, _ := openLoader(t)

	if err := l.Load(context.Background(), dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	wantIndexes := []string{
		"idx_orders_user_id",
		"idx_order_items_order_id",
		"idx_order_items_product_id",
		"idx_reviews_user_id",
		"idx_reviews_product_id",
	}
	for _, name := range wantIndexes {
		var found int
		err := l.db.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?", name,
		).Scan(&found)
		if err != nil {
			t.Fatalf("Failed to query sqlite_master: %v", err)
		}
		if found != 1 {
			t.Errorf("Index %s not created", name)
		}
	}
}

func TestLoadBooleansNormalized(t *testing.T) {
	dir, _ := writeDataset(t, 42)
	l, _ := openLoader(t)

	if err := l.Load(context.Background(), dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	var bad int
	err := l.db.QueryRow("SELECT COUNT(*) FROM users WHERE is_active NOT IN (0, 1)").Scan(&bad)
	if err != nil {
		t.Fatalf("Failed to query users: %v", err)
	}
	if bad != 0 {
		t.Errorf("%d users rows carry non-0/1 is_active", bad)
	}

	var verified, total int
	if err := l.db.QueryRow("SELECT COUNT(*) FROM reviews WHERE verified_purchase = 1").Scan(&verified); err != nil {
		t.Fatal(err)
	}
	if err := l.db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&total); err != nil {
		t.Fatal(err)
	}
	if verified != total {
		t.Errorf("Expected all %d reviews verified, got %d", total, verified)
	}
}

func TestLoadMissingSourceFailsBeforeWrite(t *testing.T) {
	dir, _ := writeDataset(t, 42)
	if err := os.Remove(filepath.Join(dir, "reviews.csv")); err != nil {
		t.Fatal(err)
	}
	l, _ := openLoader(t)

	err := l.Load(context.Background(), dir)
	if err == nil {
		t.Fatal("Expected load to fail with missing reviews.csv")
	}
	if !errors.Is(err, dataset.ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got %v", err)
	}

	// nothing was written: the store has no tables at all
	var tables int
	if err := l.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'").Scan(&tables); err != nil {
		t.Fatal(err)
	}
	if tables != 0 {
		t.Errorf("Expected untouched store, found %d tables", tables)
	}
}

func TestDoubleLoadRollsBack(t *testing.T) {
	dir, ds := writeDataset(t, 42)
	l, _ := openLoader(t)
	ctx := context.Background()

	if err := l.Load(ctx, dir); err != nil {
		t.Fatalf("First load failed: %v", err)
	}

	// second load hits primary-key violations and must leave the first
	// committed state intact
	err := l.Load(ctx, dir)
	if err == nil {
		t.Fatal("Expected second load to fail on uniqueness violations")
	}

	counts, err := l.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts["products"] != len(ds.Products) {
		t.Errorf("Products count changed after failed reload: got %d, want %d", counts["products"], len(ds.Products))
	}
	if counts["reviews"] != len(ds.Reviews) {
		t.Errorf("Reviews count changed after failed reload: got %d, want %d", counts["reviews"], len(ds.Reviews))
	}
}

func TestLoadConstraintViolationRollsBack(t *testing.T) {
	dir := t.TempDir()
	tables := map[string][][]string{
		"products":    {{"1", "Acme Prism", "Toys", "Acme", "19.99", "9.99", "100", "SKU-00001", "2024-01-01 00:00:00"}},
		"users":       {{"1", "Jane", "Smith", "jane@example.com", "", "", "", "", "", "USA", "2024-01-01 00:00:00", "true"}},
		"orders":      {{"1", "999", "2025-01-01 00:00:00", "", "", "Cancelled", "Standard", "4.99", "PayPal", "0.00", "4.99"}},
		"order_items": {},
		"reviews":     {},
	}
	var out []dataset.Table
	for _, name := range schema.LoadOrder {
		desc, _ := schema.TableByName(name)
		out = append(out, dataset.Table{Name: name, Header: desc.ColumnNames(), Rows: tables[name]})
	}
	if err := dataset.WriteAll(dir, out); err != nil {
		t.Fatal(err)
	}

	l, _ := openLoader(t)
	err := l.Load(context.Background(), dir)
	if err == nil {
		t.Fatal("Expected foreign-key violation for order referencing user 999")
	}

	// rolled back: no committed tables with rows, and products must be empty
	var tablesInStore int
	if err := l.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'").Scan(&tablesInStore); err != nil {
		t.Fatal(err)
	}
	if tablesInStore != 0 {
		t.Errorf("Expected full rollback, found %d tables", tablesInStore)
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "nested", "store.db")

	l, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer l.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("Parent directory not created: %v", err)
	}
}
