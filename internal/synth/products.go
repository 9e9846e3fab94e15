package synth

import "fmt"

var (
	Categories = []string{
		"Electronics", "Home & Kitchen", "Beauty", "Sports",
		"Books", "Toys", "Health", "Clothing",
	}
	Brands = []string{
		"Acme", "Globex", "Innova", "Zenith",
		"Nimbus", "Vertex", "Pulse", "Voyage",
	}
)

func GenerateProducts(s *Session, n int) []Product {
	products := make([]Product, 0, n)
	createdFrom := s.Anchor().AddDate(-2, 0, 0)
	createdTo := s.Anchor().AddDate(-1, 0, 0)

	for id := 1; id <= n; id++ {
		basePrice := s.Float(10, 400)
		price := round2(basePrice + s.Float(-5, 25))
		products = append(products, Product{
			ID:        id,
			Name:      fmt.Sprintf("%s %s", s.Choice(Brands), s.TitleWord()),
			Category:  s.Choice(Categories),
			Brand:     s.Choice(Brands),
			Price:     price,
			Cost:      round2(price * s.Float(0.4, 0.7)),
			Inventory: s.Int(25, 500),
			SKU:       fmt.Sprintf("SKU-%05d", id),
			CreatedAt: s.TimeBetween(createdFrom, createdTo),
		})
	}
	return products
}
