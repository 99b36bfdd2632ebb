package crud

import (
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/validators"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var Payments = Resource[validators.PaymentInput, models.Payment]{
	Name:     "Payment",
	Coll:     func() *mongo.Collection { return db.PaymentCollection },
	KeyField: "paymentid",
	IDPrefix: "pay",
	Build: func(id string, in validators.PaymentInput) models.Payment {
		return models.Payment{
			PaymentID:   id,
			OrderID:     in.Order,
			Amount:      in.Amount,
			Method:      in.Method,
			Status:      in.Status,
			PaymentDate: time.Now(),
		}
	},
	Set: func(in validators.PaymentInput) bson.M {
		return bson.M{"order": in.Order, "amount": in.Amount, "method": in.Method, "status": in.Status}
	},
}

var Shippings = Resource[validators.ShippingInput, models.Shipping]{
	Name:     "Shipping",
	Coll:     func() *mongo.Collection { return db.ShippingCollection },
	KeyField: "shippingid",
	IDPrefix: "shp",
	Build: func(id string, in validators.ShippingInput) models.Shipping {
		return models.Shipping{
			ShippingID:     id,
			UserID:         in.User,
			Address:        in.Address,
			City:           in.City,
			PostalCode:     in.PostalCode,
			Country:        in.Country,
			ShippingMethod: in.ShippingMethod,
		}
	},
	Set: func(in validators.ShippingInput) bson.M {
		return bson.M{
			"user": in.User, "address": in.Address, "city": in.City,
			"postalCode": in.PostalCode, "country": in.Country, "shippingMethod": in.ShippingMethod,
		}
	},
}

var Sliders = Resource[validators.SliderInput, models.Slider]{
	Name:     "Slider",
	Coll:     func() *mongo.Collection { return db.SliderCollection },
	KeyField: "sliderid",
	IDPrefix: "sl",
	Build: func(id string, in validators.SliderInput) models.Slider {
		return models.Slider{SliderID: id, Image: in.Image, Alt: in.Alt, RedirectLink: in.RedirectLink}
	},
	Set: func(in validators.SliderInput) bson.M {
		return bson.M{"image": in.Image, "alt": in.Alt, "redirectLink": in.RedirectLink}
	},
}

var Inventories = Resource[validators.InventoryInput, models.Inventory]{
	Name:     "Inventory",
	Coll:     func() *mongo.Collection { return db.InventoryCollection },
	KeyField: "inventoryid",
	IDPrefix: "inv",
	Build: func(id string, in validators.InventoryInput) models.Inventory {
		return models.Inventory{InventoryID: id, ProductID: in.Product, Quantity: in.Quantity}
	},
	Set: func(in validators.InventoryInput) bson.M {
		return bson.M{"product": in.Product, "quantity": in.Quantity}
	},
}
