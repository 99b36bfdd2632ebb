package validators

import "time"

// auth

type PhoneInput struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type RegisterInput struct {
	Phone            string `json:"phone" validate:"required,phone"`
	VerificationCode string `json:"verificationCode" validate:"required,verifycode"`
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Password         string `json:"password" validate:"required,min=6"`
}

type PasswordLoginInput struct {
	Phone    string `json:"phone" validate:"required,phone"`
	Password string `json:"password" validate:"required,min=6"`
}

type CodeLoginInput struct {
	Phone            string `json:"phone" validate:"required,phone"`
	VerificationCode string `json:"verificationCode" validate:"required,verifycode"`
}

type AdminLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AdminCreateInput struct {
	Phone     string `json:"phone" validate:"required,phone"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"omitempty"`
	LastName  string `json:"lastName" validate:"omitempty"`
}

// users

type UserUpdateInput struct {
	Email          string `json:"email" validate:"omitempty,email"`
	Password       string `json:"password" validate:"omitempty,min=6"`
	FirstName      string `json:"firstName" validate:"omitempty"`
	LastName       string `json:"lastName" validate:"omitempty"`
	ProfilePicture string `json:"profilePicture" validate:"omitempty"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
}

// catalog

type VariantInput struct {
	Name            string  `json:"name" validate:"required"`
	AdditionalPrice float64 `json:"additionalPrice" validate:"gte=0"`
}

type ProductInput struct {
	Name               string         `json:"name" validate:"required"`
	MainImage          string         `json:"mainImage" validate:"required"`
	Images             []string       `json:"images" validate:"omitempty"`
	KeyFeatures        []string       `json:"keyFeatures" validate:"required,min=1"`
	Sizes              []string       `json:"sizes" validate:"omitempty"`
	Description        string         `json:"description" validate:"required"`
	IsOnSale           bool           `json:"isOnSale"`
	DiscountPercentage float64        `json:"discountPercentage" validate:"gte=0,lte=100"`
	BasePrice          float64        `json:"basePrice" validate:"required,gt=0"`
	Variants           []VariantInput `json:"variants" validate:"omitempty,dive"`
	Category           string         `json:"category" validate:"required"`
}

type ProductUpdateInput struct {
	Name               *string        `json:"name" validate:"omitempty,min=1"`
	MainImage          *string        `json:"mainImage" validate:"omitempty,min=1"`
	Images             []string       `json:"images" validate:"omitempty"`
	KeyFeatures        []string       `json:"keyFeatures" validate:"omitempty,min=1"`
	Sizes              []string       `json:"sizes" validate:"omitempty"`
	Description        *string        `json:"description" validate:"omitempty,min=1"`
	IsOnSale           *bool          `json:"isOnSale"`
	DiscountPercentage *float64       `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	BasePrice          *float64       `json:"basePrice" validate:"omitempty,gt=0"`
	Variants           []VariantInput `json:"variants" validate:"omitempty,dive"`
	Category           *string        `json:"category" validate:"omitempty,min=1"`
}

type CategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"omitempty"`
	Image string `json:"image" validate:"omitempty"`
}

// cart & orders

type CartAddInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

type OrderItemInput struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

type OrderInput struct {
	User         string           `json:"user" validate:"required"`
	Cart         string           `json:"cart" validate:"required"`
	Payment      string           `json:"payment" validate:"required"`
	Shipping     string           `json:"shipping" validate:"required"`
	Status       string           `json:"status" validate:"required,oneof=pending shipped delivered cancelled"`
	TotalAmount  float64          `json:"totalAmount" validate:"required,gt=0"`
	DiscountCode string           `json:"discountCode" validate:"omitempty"`
	Products     []OrderItemInput `json:"products" validate:"required,min=1,dive"`
}

type OrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending shipped delivered cancelled"`
}

// reviews

type ReviewInput struct {
	Product string `json:"product" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty"`
}

// generic resources

type DiscountInput struct {
	Code       string    `json:"code" validate:"required"`
	Percentage float64   `json:"percentage" validate:"gte=0,lte=100"`
	ValidFrom  time.Time `json:"validFrom" validate:"required"`
	ValidUntil time.Time `json:"validUntil" validate:"required,gtfield=ValidFrom"`
	UsageLimit int       `json:"usageLimit" validate:"required,gte=1"`
	IsActive   *bool     `json:"isActive"`
}

type PaymentInput struct {
	Order  string  `json:"order" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required"`
	Status string  `json:"status" validate:"required"`
}

type ShippingInput struct {
	User           string `json:"user" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city" validate:"required"`
	PostalCode     string `json:"postalCode" validate:"required"`
	Country        string `json:"country" validate:"required"`
	ShippingMethod string `json:"shippingMethod" validate:"required"`
}

type InventoryInput struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type SliderInput struct {
	Image        string `json:"image" validate:"required"`
	Alt          string `json:"alt" validate:"required"`
	RedirectLink string `json:"redirectLink" validate:"required"`
}
