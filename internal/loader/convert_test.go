package loader

import (
	"testing"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/schema"
)

func TestConvertValueBooleans(t *testing.T) {
	col := schema.Column{Name: "is_active", Type: schema.TypeBool}

	v, err := convertValue(col, "true")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("Expected true to map to 1, got %v", v)
	}

	v, err = convertValue(col, "false")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != 0 {
		t.Errorf("Expected false to map to 0, got %v", v)
	}

	if _, err := convertValue(col, "maybe"); err == nil {
		t.Error("Expected error for invalid boolean")
	}
}

func TestConvertValueNullable(t *testing.T) {
	col := schema.Column{Name: "ship_date", Type: schema.TypeText, Nullable: true}

	v, err := convertValue(col, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if v != nil {
		t.Errorf("Expected NULL for empty nullable field, got %v", v)
	}
}

func TestConvertValueNumbers(t *testing.T) {
	intCol := schema.Column{Name: "quantity", Type: schema.TypeInteger}
	realCol := schema.Column{Name: "price", Type: schema.TypeReal}

	if v, err := convertValue(intCol, "3"); err != nil || v != 3 {
		t.Errorf("Expected 3, got %v (err %v)", v, err)
	}
	if _, err := convertValue(intCol, "3.5"); err == nil {
		t.Error("Expected error for non-integer value")
	}
	if v, err := convertValue(realCol, "19.99"); err != nil || v != 19.99 {
		t.Errorf("Expected 19.99, got %v (err %v)", v, err)
	}
}

func TestConvertRowLengthMismatch(t *testing.T) {
	table, _ := schema.TableByName("order_items")
	header := table.ColumnNames()

	if _, err := convertRow(table, header, []string{"1", "2"}); err == nil {
		t.Error("Expected error for short row")
	}
}
