package synth

// GenerateReviews samples target rows from the order-item/order join so every
// review points at a product the reviewing user actually ordered. If fewer
// joined rows exist than requested, the full join is used.
func GenerateReviews(s *Session, items []OrderItem, orders []Order, target int) []Review {
	ordersByID := make(map[int]Order, len(orders))
	for _, o := range orders {
		ordersByID[o.ID] = o
	}

	type joined struct {
		item  OrderItem
		order Order
	}
	rows := make([]joined, 0, len(items))
	for _, it := range items {
		rows = append(rows, joined{item: it, order: ordersByID[it.OrderID]})
	}

	sample := rows
	if len(rows) > target {
		perm := s.Perm(len(rows))
		sample = make([]joined, 0, target)
		for _, idx := range perm[:target] {
			sample = append(sample, rows[idx])
		}
	}

	reviews := make([]Review, 0, len(sample))
	for i, row := range sample {
		reviews = append(reviews, Review{
			ID:               i + 1,
			UserID:           row.order.UserID,
			ProductID:        row.item.ProductID,
			Rating:           s.Int(1, 6),
			Title:            s.Sentence(),
			Text:             s.Paragraph(3),
			ReviewDate:       row.order.OrderDate.AddDate(0, 0, s.Int(3, 30)),
			VerifiedPurchase: true,
		})
	}
	return reviews
}
