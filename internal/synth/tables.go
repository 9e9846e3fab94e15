package synth

import (
	"strconv"
	"time"

	"github.com/SanikaB-Works/cursor-ecom-project/internal/dataset"
	"github.com/SanikaB-Works/cursor-ecom-project/internal/schema"
)

// Tables serializes the dataset into interchange form, one table per entity,
// headers matching the relational schema column order. Nullable dates
// serialize as empty strings, booleans as true/false.
func (d *Dataset) Tables() []dataset.Table {
	return []dataset.Table{
		d.productTable(),
		d.userTable(),
		d.orderTable(),
		d.itemTable(),
		d.reviewTable(),
	}
}

func header(table string) []string {
	t, _ := schema.TableByName(table)
	return t.ColumnNames()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func stamp(t time.Time) string {
	return t.Format(dataset.TimeFormat)
}

func optStamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return stamp(*t)
}

func (d *Dataset) productTable() dataset.Table {
	rows := make([][]string, 0, len(d.Products))
	for _, p := range d.Products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Name, p.Category, p.Brand,
			money(p.Price), money(p.Cost), strconv.Itoa(p.Inventory),
			p.SKU, stamp(p.CreatedAt),
		})
	}
	return dataset.Table{Name: "products", Header: header("products"), Rows: rows}
}

func (d *Dataset) userTable() dataset.Table {
	rows := make([][]string, 0, len(d.Users))
	for _, u := range d.Users {
		rows = append(rows, []string{
			strconv.Itoa(u.ID), u.FirstName, u.LastName, u.Email,
			u.PhoneNumber, u.Address, u.City, u.State, u.PostalCode,
			u.Country, stamp(u.SignupDate), strconv.FormatBool(u.IsActive),
		})
	}
	return dataset.Table{Name: "users", Header: header("users"), Rows: rows}
}

func (d *Dataset) orderTable() dataset.Table {
	rows := make([][]string, 0, len(d.Orders))
	for _, o := range d.Orders {
		rows = append(rows, []string{
			strconv.Itoa(o.ID), strconv.Itoa(o.UserID), stamp(o.OrderDate),
			optStamp(o.ShipDate), optStamp(o.DeliveryDate), o.Status,
			o.ShippingMethod, money(o.ShippingCost), o.PaymentMethod,
			money(o.Subtotal), money(o.Total),
		})
	}
	return dataset.Table{Name: "orders", Header: header("orders"), Rows: rows}
}

func (d *Dataset) itemTable() dataset.Table {
	rows := make([][]string, 0, len(d.Items))
	for _, it := range d.Items {
		rows = append(rows, []string{
			strconv.Itoa(it.ID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity), money(it.UnitPrice), money(it.Discount),
		})
	}
	return dataset.Table{Name: "order_items", Header: header("order_items"), Rows: rows}
}

func (d *Dataset) reviewTable() dataset.Table {
	rows := make([][]string, 0, len(d.Reviews))
	for _, r := range d.Reviews {
		rows = append(rows, []string{
			strconv.Itoa(r.ID), strconv.Itoa(r.UserID), strconv.Itoa(r.ProductID),
			strconv.Itoa(r.Rating), r.Title, r.Text, stamp(r.ReviewDate),
			strconv.FormatBool(r.VerifiedPurchase),
		})
	}
	return dataset.Table{Name: "reviews", Header: header("reviews"), Rows: rows}
}
