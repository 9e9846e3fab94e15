package loader

import (
	"fmt"
	"strconv"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/schema"
)

// convertRow turns interchange strings into driver values per the column
// descriptors: integers and reals are parsed, interchange true/false becomes
// the store's 0/1, and empty nullable fields become NULL.
func convertRow(table schema.Table, header, row []string) ([]interface{}, error) {
	if len(row) != len(header) {
		return nil, fmt.Errorf("row has %d fields, header has %d", len(row), len(header))
	}

	values := make([]interface{}, 0, len(row))
	for i, name := range header {
		col, ok := table.Column(name)
		if !ok {
			return nil, fmt.Errorf("unknown column %s in table %s", name, table.Name)
		}
		v, err := convertValue(col, row[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func convertValue(col schema.Column, raw string) (interface{}, error) {
	if raw == "" && col.Nullable {
		return nil, nil
	}

	switch col.Type {
	case schema.TypeInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", raw, err)
		}
		return n, nil
	case schema.TypeReal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid real %q: %w", raw, err)
		}
		return f, nil
	case schema.TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q: %w", raw, err)
		}
		if b {
			return 1, nil
		}
		return 0, nil
	default:
		return raw, nil
	}
}
