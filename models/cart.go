package models

import "time"

// CartItem is a (product, quantity) line inside a cart. Prices are not
// frozen here; totals are always recomputed from the current product.
type CartItem struct {
	ProductID string `json:"product" bson:"product"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

// Cart is the single live cart of a user. Revision guards the
// read-modify-write cycle of every mutation.
type Cart struct {
	CartID     string     `json:"cartid" bson:"cartid"`
	UserID     string     `json:"user" bson:"user"`
	Items      []CartItem `json:"items" bson:"items"`
	TotalPrice float64    `json:"totalPrice" bson:"totalPrice"`
	Revision   int64      `json:"-" bson:"revision"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// ResolvedCartItem is a cart line with the referenced product embedded.
type ResolvedCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// OrderItem snapshots a purchased line independently of the live cart.
type OrderItem struct {
	ProductID string `json:"product" bson:"product"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

type Order struct {
	OrderID      string      `json:"orderid" bson:"orderid"`
	UserID       string      `json:"user" bson:"user"`
	CartID       string      `json:"cart" bson:"cart"`
	PaymentID    string      `json:"payment" bson:"payment"`
	ShippingID   string      `json:"shipping" bson:"shipping"`
	Status       string      `json:"status" bson:"status"`
	TotalAmount  float64     `json:"totalAmount" bson:"totalAmount"`
	DiscountCode string      `json:"discountCode,omitempty" bson:"discountCode,omitempty"`
	Items        []OrderItem `json:"products" bson:"products"`
	CreatedAt    time.Time   `json:"createdAt" bson:"createdAt"`
}

type Payment struct {
	PaymentID   string    `json:"paymentid" bson:"paymentid"`
	OrderID     string    `json:"order" bson:"order"`
	Amount      float64   `json:"amount" bson:"amount"`
	Method      string    `json:"method" bson:"method"`
	Status      string    `json:"status" bson:"status"`
	PaymentDate time.Time `json:"paymentDate" bson:"paymentDate"`
}

type Shipping struct {
	ShippingID     string `json:"shippingid" bson:"shippingid"`
	UserID         string `json:"user" bson:"user"`
	Address        string `json:"address" bson:"address"`
	City           string `json:"city" bson:"city"`
	PostalCode     string `json:"postalCode" bson:"postalCode"`
	Country        string `json:"country" bson:"country"`
	ShippingMethod string `json:"shippingMethod" bson:"shippingMethod"`
}

type Discount struct {
	DiscountID string    `json:"discountid" bson:"discountid"`
	Code       string    `json:"code" bson:"code"`
	Percentage float64   `json:"percentage" bson:"percentage"`
	ValidFrom  time.Time `json:"validFrom" bson:"validFrom"`
	ValidUntil time.Time `json:"validUntil" bson:"validUntil"`
	UsageLimit int       `json:"usageLimit" bson:"usageLimit"`
	UsedCount  int       `json:"usedCount" bson:"usedCount"`
	IsActive   bool      `json:"isActive" bson:"isActive"`
}
