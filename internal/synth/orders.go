package synth

import "time"

const (
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
	StatusReturned   = "Returned"
)

var (
	Statuses      = []string{StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled, StatusReturned}
	statusWeights = []float64{0.25, 0.25, 0.35, 0.05, 0.10}

	shippingMethods = []string{"Standard", "Expedited", "Two-Day", "Overnight"}
	shippingWeights = []float64{0.5, 0.2, 0.2, 0.1}

	paymentMethods = []string{"Credit Card", "PayPal", "Gift Card", "Apple Pay"}
)

func GenerateOrders(s *Session, n int, users []User) []Order {
	orders := make([]Order, 0, n)
	orderFrom := s.Anchor().AddDate(-1, 0, 0)

	for id := 1; id <= n; id++ {
		userID := users[s.Int(0, len(users))].ID
		orderDate := s.TimeBetween(orderFrom, s.Anchor())
		shipDate := orderDate.AddDate(0, 0, s.Int(1, 10))
		deliveryDate := shipDate.AddDate(0, 0, s.Int(1, 7))
		status := s.Weighted(Statuses, statusWeights)

		// Nullability is a function of status, never a separate draw.
		var ship, delivery *time.Time
		if status != StatusCancelled {
			ship = &shipDate
		}
		if status != StatusCancelled && status != StatusReturned {
			delivery = &deliveryDate
		}

		orders = append(orders, Order{
			ID:             id,
			UserID:         userID,
			OrderDate:      orderDate,
			ShipDate:       ship,
			DeliveryDate:   delivery,
			Status:         status,
			ShippingMethod: s.Weighted(shippingMethods, shippingWeights),
			ShippingCost:   round2(s.Float(0, 25)),
			PaymentMethod:  s.Choice(paymentMethods),
			Subtotal:       0,
			Total:          0,
		})
	}
	return orders
}
