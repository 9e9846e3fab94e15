// Package schema declares the five destination tables as typed descriptors.
// Constraint intent (uniqueness, ranges, cascade rules) lives here as data;
// DDL text is rendered from it, never embedded as literals elsewhere.
package schema

type ColumnType int

const (
	TypeInteger ColumnType = iota
	TypeReal
	TypeText
	// TypeBool is stored as INTEGER 0/1 with a membership check.
	TypeBool
)

type Column struct {
	Name       string
	Type       ColumnType
	PrimaryKey bool
	Unique     bool
	Nullable   bool
	// Range check bounds; nil means unbounded on that side.
	Min          *float64
	Max          *float64
	ExclusiveMin bool
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
	OnUpdate  string
	OnDelete  string
}

type Index struct {
	Name   string
	Column string
}

type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
	Indexes     []Index
}

// LoadOrder is the fixed sequence in which the loader populates tables so
// every foreign key reference already exists. ValidateLoadOrder checks it
// against the FK graph.
var LoadOrder = []string{"products", "users", "orders", "order_items", "reviews"}

func fp(v float64) *float64 { return &v }

var tables = []Table{
	{
		Name: "products",
		Columns: []Column{
			{Name: "product_id", Type: TypeInteger, PrimaryKey: true},
			{Name: "name", Type: TypeText},
			{Name: "category", Type: TypeText},
			{Name: "brand", Type: TypeText},
			{Name: "price", Type: TypeReal},
			{Name: "cost", Type: TypeReal},
			{Name: "inventory", Type: TypeInteger},
			{Name: "sku", Type: TypeText, Unique: true},
			{Name: "created_at", Type: TypeText},
		},
	},
	{
		Name: "users",
		Columns: []Column{
			{Name: "user_id", Type: TypeInteger, PrimaryKey: true},
			{Name: "first_name", Type: TypeText},
			{Name: "last_name", Type: TypeText},
			{Name: "email", Type: TypeText, Unique: true},
			{Name: "phone_number", Type: TypeText, Nullable: true},
			{Name: "address", Type: TypeText, Nullable: true},
			{Name: "city", Type: TypeText, Nullable: true},
			{Name: "state", Type: TypeText, Nullable: true},
			{Name: "postal_code", Type: TypeText, Nullable: true},
			{Name: "country", Type: TypeText, Nullable: true},
			{Name: "signup_date", Type: TypeText},
			{Name: "is_active", Type: TypeBool},
		},
	},
	{
		Name: "orders",
		Columns: []Column{
			{Name: "order_id", Type: TypeInteger, PrimaryKey: true},
			{Name: "user_id", Type: TypeInteger},
			{Name: "order_date", Type: TypeText},
			{Name: "ship_date", Type: TypeText, Nullable: true},
			{Name: "delivery_date", Type: TypeText, Nullable: true},
			{Name: "status", Type: TypeText},
			{Name: "shipping_method", Type: TypeText},
			{Name: "shipping_cost", Type: TypeReal},
			{Name: "payment_method", Type: TypeText},
			{Name: "subtotal", Type: TypeReal},
			{Name: "total", Type: TypeReal},
		},
		ForeignKeys: []ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id", OnUpdate: "CASCADE", OnDelete: "CASCADE"},
		},
		Indexes: []Index{
			{Name: "idx_orders_user_id", Column: "user_id"},
		},
	},
	{
		Name: "order_items",
		Columns: []Column{
			{Name: "order_item_id", Type: TypeInteger, PrimaryKey: true},
			{Name: "order_id", Type: TypeInteger},
			{Name: "product_id", Type: TypeInteger},
			{Name: "quantity", Type: TypeInteger, Min: fp(0), ExclusiveMin: true},
			{Name: "unit_price", Type: TypeReal},
			{Name: "discount", Type: TypeReal, Min: fp(0)},
		},
		ForeignKeys: []ForeignKey{
			{Column: "order_id", RefTable: "orders", RefColumn: "order_id", OnUpdate: "CASCADE", OnDelete: "CASCADE"},
			// Products stay undeletable while line items reference them.
			{Column: "product_id", RefTable: "products", RefColumn: "product_id", OnUpdate: "CASCADE", OnDelete: "RESTRICT"},
		},
		Indexes: []Index{
			{Name: "idx_order_items_order_id", Column: "order_id"},
			{Name: "idx_order_items_product_id", Column: "product_id"},
		},
	},
	{
		Name: "reviews",
		Columns: []Column{
			{Name: "review_id", Type: TypeInteger, PrimaryKey: true},
			{Name: "user_id", Type: TypeInteger},
			{Name: "product_id", Type: TypeInteger},
			{Name: "rating", Type: TypeInteger, Min: fp(1), Max: fp(5)},
			{Name: "title", Type: TypeText},
			{Name: "review_text", Type: TypeText, Nullable: true},
			{Name: "review_date", Type: TypeText},
			{Name: "verified_purchase", Type: TypeBool},
		},
		ForeignKeys: []ForeignKey{
			{Column: "user_id", RefTable: "users", RefColumn: "user_id", OnUpdate: "CASCADE", OnDelete: "CASCADE"},
			{Column: "product_id", RefTable: "products", RefColumn: "product_id", OnUpdate: "CASCADE", OnDelete: "CASCADE"},
		},
		Indexes: []Index{
			{Name: "idx_reviews_user_id", Column: "user_id"},
			{Name: "idx_reviews_product_id", Column: "product_id"},
		},
	},
}

// Tables returns the table descriptors in declaration order.
func Tables() []Table {
	return tables
}

// TableByName looks up a descriptor; second result is false for unknown names.
func TableByName(name string) (Table, bool) {
	for _, t := range tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
