package synth

// ReconcileOrderTotals recomputes subtotal and total on every order from its
// line items. Order aggregates cannot be known at order-generation time, so
// this runs after items exist. Pure and idempotent: reconciling already
// reconciled orders changes nothing.
func ReconcileOrderTotals(orders []Order, items []OrderItem) []Order {
	lineTotals := make(map[int]float64, len(orders))
	for _, it := range items {
		lineTotals[it.OrderID] += it.UnitPrice*float64(it.Quantity) - it.Discount
	}

	out := make([]Order, len(orders))
	copy(out, orders)
	for i := range out {
		subtotal := round2(lineTotals[out[i].ID])
		out[i].Subtotal = subtotal
		out[i].Total = round2(subtotal + out[i].ShippingCost)
	}
	return out
}
