package synth

// GenerateAll runs the full pipeline in dependency order: products and users
// first, orders against users, items against orders and products, then the
// reconciliation pass, then reviews against the item/order join.
func GenerateAll(s *Session) *Dataset {
	counts := DeriveCounts(s)

	products := GenerateProducts(s, counts.Products)
	users := GenerateUsers(s, counts.Users)
	orders := GenerateOrders(s, counts.Orders, users)
	items := GenerateOrderItems(s, orders, products)
	orders = ReconcileOrderTotals(orders, items)
	reviews := GenerateReviews(s, items, orders, counts.Reviews)

	return &Dataset{
		Products: products,
		Users:    users,
		Orders:   orders,
		Items:    items,
		Reviews:  reviews,
	}
}
