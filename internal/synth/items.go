package synth

// GenerateOrderItems gives every order 1-5 line items over distinct products.
// When the product pool is smaller than the wanted item count the draw falls
// back to sampling with replacement rather than failing; that only happens on
// degenerately small pools.
func GenerateOrderItems(s *Session, orders []Order, products []Product) []OrderItem {
	var items []OrderItem
	itemID := 1

	for _, order := range orders {
		wanted := s.Int(1, 6)

		var picks []int
		if len(products) >= wanted {
			picks = s.Perm(len(products))[:wanted]
		} else {
			for i := 0; i < wanted; i++ {
				picks = append(picks, s.Int(0, len(products)))
			}
		}

		for _, idx := range picks {
			product := products[idx]
			quantity := s.Int(1, 5)
			unitPrice := round2(product.Price * s.Float(0.95, 1.05))
			items = append(items, OrderItem{
				ID:        itemID,
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: unitPrice,
				Discount:  round2(unitPrice * float64(quantity) * s.Float(0, 0.15)),
			})
			itemID++
		}
	}
	return items
}
