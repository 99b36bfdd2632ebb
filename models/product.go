package models

import "time"

type Variant struct {
	Name            string  `json:"name" bson:"name"`
	AdditionalPrice float64 `json:"additionalPrice" bson:"additionalPrice"`
}

// Product keeps its rating as a running aggregate; DiscountedPrice is
// derived from BasePrice/IsOnSale/DiscountPercentage and never accepted
// from the client as-is.
type Product struct {
	ProductID          string    `json:"productid" bson:"productid"`
	Name               string    `json:"name" bson:"name"`
	MainImage          string    `json:"mainImage" bson:"mainImage"`
	Images             []string  `json:"images" bson:"images"`
	Rating             float64   `json:"rating" bson:"rating"`
	RatingCount        int       `json:"ratingCount" bson:"ratingCount"`
	KeyFeatures        []string  `json:"keyFeatures" bson:"keyFeatures"`
	Sizes              []string  `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Description        string    `json:"description" bson:"description"`
	IsOnSale           bool      `json:"isOnSale" bson:"isOnSale"`
	DiscountPercentage float64   `json:"discountPercentage" bson:"discountPercentage"`
	BasePrice          float64   `json:"basePrice" bson:"basePrice"`
	DiscountedPrice    float64   `json:"discountedPrice" bson:"discountedPrice"`
	Variants           []Variant `json:"variants,omitempty" bson:"variants,omitempty"`
	CategoryID         string    `json:"category" bson:"category"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
}

type Category struct {
	CategoryID string   `json:"categoryid" bson:"categoryid"`
	Name       string   `json:"name" bson:"name"`
	Slug       string   `json:"slug" bson:"slug"`
	Image      string   `json:"image,omitempty" bson:"image,omitempty"`
	ProductIDs []string `json:"products" bson:"products"`
}

type Review struct {
	ReviewID  string    `json:"reviewid" bson:"reviewid"`
	ProductID string    `json:"product" bson:"product"`
	UserID    string    `json:"user" bson:"user"`
	Rating    int       `json:"rating" bson:"rating"`
	Comment   string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Inventory struct {
	InventoryID string `json:"inventoryid" bson:"inventoryid"`
	ProductID   string `json:"product" bson:"product"`
	Quantity    int    `json:"quantity" bson:"quantity"`
}

type Slider struct {
	SliderID     string `json:"sliderid" bson:"sliderid"`
	Image        string `json:"image" bson:"image"`
	Alt          string `json:"alt" bson:"alt"`
	RedirectLink string `json:"redirectLink" bson:"redirectLink"`
}
