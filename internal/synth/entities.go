package synth

import "time"

type Product struct {
	ID        int
	Name      string
	Category  string
	Brand     string
	Price     float64
	Cost      float64
	Inventory int
	SKU       string
	CreatedAt time.Time
}

type User struct {
	ID          int
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	City        string
	State       string
	PostalCode  string
	Country     string
	SignupDate  time.Time
	IsActive    bool
}

// ShipDate and DeliveryDate are nil as a function of Status: a cancelled
// order never ships, a cancelled or returned order is never delivered.
type Order struct {
	ID             int
	UserID         int
	OrderDate      time.Time
	ShipDate       *time.Time
	DeliveryDate   *time.Time
	Status         string
	ShippingMethod string
	ShippingCost   float64
	PaymentMethod  string
	Subtotal       float64
	Total          float64
}

type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice float64
	Discount  float64
}

type Review struct {
	ID               int
	UserID           int
	ProductID        int
	Rating           int
	Title            string
	Text             string
	ReviewDate       time.Time
	VerifiedPurchase bool
}

// Dataset holds one run's generated collections.
type Dataset struct {
	Products []Product
	Users    []User
	Orders   []Order
	Items    []OrderItem
	Reviews  []Review
}
