package schema

import (
	"fmt"
	"strings"
)

func (ct ColumnType) sqlType() string {
	switch ct {
	case TypeInteger, TypeBool:
		return "INTEGER"
	case TypeReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

func (c Column) checkClause() string {
	if c.Type == TypeBool {
		return fmt.Sprintf("CHECK (%s IN (0, 1))", c.Name)
	}
	switch {
	case c.Min != nil && c.Max != nil:
		return fmt.Sprintf("CHECK (%s BETWEEN %s AND %s)", c.Name, formatBound(*c.Min), formatBound(*c.Max))
	case c.Min != nil && c.ExclusiveMin:
		return fmt.Sprintf("CHECK (%s > %s)", c.Name, formatBound(*c.Min))
	case c.Min != nil:
		return fmt.Sprintf("CHECK (%s >= %s)", c.Name, formatBound(*c.Min))
	case c.Max != nil:
		return fmt.Sprintf("CHECK (%s <= %s)", c.Name, formatBound(*c.Max))
	}
	return ""
}

func formatBound(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// CreateSQL renders the CREATE TABLE statement for the descriptor.
func (t Table) CreateSQL() string {
	var defs []string
	for _, c := range t.Columns {
		parts := []string{c.Name, c.Type.sqlType()}
		if c.PrimaryKey {
			parts = append(parts, "PRIMARY KEY")
		}
		if c.Unique {
			parts = append(parts, "UNIQUE")
		}
		if !c.Nullable && !c.PrimaryKey {
			parts = append(parts, "NOT NULL")
		}
		if check := c.checkClause(); check != "" {
			parts = append(parts, check)
		}
		defs = append(defs, "    "+strings.Join(parts, " "))
	}
	for _, fk := range t.ForeignKeys {
		defs = append(defs, fmt.Sprintf("    FOREIGN KEY (%s) REFERENCES %s (%s) ON UPDATE %s ON DELETE %s",
			fk.Column, fk.RefTable, fk.RefColumn, fk.OnUpdate, fk.OnDelete))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", t.Name, strings.Join(defs, ",\n"))
}

// IndexSQL renders one CREATE INDEX statement per declared index.
func (t Table) IndexSQL() []string {
	stmts := make([]string, 0, len(t.Indexes))
	for _, idx := range t.Indexes {
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s(%s)", idx.Name, t.Name, idx.Column))
	}
	return stmts
}
