// Package cart keeps one live cart per user. Totals are never frozen:
// every mutation reprices the cart against the products' current
// discounted prices.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const cartRetries = 5

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrLineNotFound = errors.New("product not found in cart")

	errCartContention = errors.New("cart modified by too many concurrent writers")
)

func currentPrices(ctx context.Context, items []models.CartItem) (map[string]float64, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, bson.M{"productid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.ProductID] = p.DiscountedPrice
	}
	return prices, nil
}

func reprice(ctx context.Context, c *models.Cart) error {
	prices, err := currentPrices(ctx, c.Items)
	if err != nil {
		return err
	}
	c.TotalPrice = ComputeTotal(c.Items, prices)
	return nil
}

// writeFilter pins the revision the mutation was computed against, so a
// racing writer loses the swap instead of silently overwriting.
func writeFilter(userID string, revision int64) bson.M {
	return bson.M{"user": userID, "revision": revision}
}

func writeUpdate(c models.Cart) bson.M {
	return bson.M{
		"$set": bson.M{"items": c.Items, "totalPrice": c.TotalPrice, "updatedAt": c.UpdatedAt},
		"$inc": bson.M{"revision": 1},
	}
}

// mutateCart is the single accessor through which cart items change. It
// loads the cart, applies mutate, reprices, and writes behind a
// compare-and-swap on the revision, retrying when a concurrent mutation
// wins the race. The unique index on carts.user keeps the create path
// honest when two first adds collide.
func mutateCart(ctx context.Context, userID string, createIfMissing bool, mutate func([]models.CartItem) ([]models.CartItem, error)) (*models.Cart, error) {
	for attempt := 0; attempt < cartRetries; attempt++ {
		var c models.Cart
		err := db.CartCollection.FindOne(ctx, bson.M{"user": userID}).Decode(&c)
		fresh := false
		switch {
		case err == mongo.ErrNoDocuments && createIfMissing:
			fresh = true
			c = models.Cart{
				CartID:    "crt" + utils.GenerateRandomString(12),
				UserID:    userID,
				Items:     []models.CartItem{},
				CreatedAt: time.Now(),
			}
		case err == mongo.ErrNoDocuments:
			return nil, ErrCartNotFound
		case err != nil:
			return nil, err
		}

		items, err := mutate(c.Items)
		if err != nil {
			return nil, err
		}
		c.Items = items
		if err := reprice(ctx, &c); err != nil {
			return nil, err
		}
		c.UpdatedAt = time.Now()

		if fresh {
			c.Revision = 1
			if _, err := db.CartCollection.InsertOne(ctx, c); err != nil {
				if mongo.IsDuplicateKeyError(err) {
					continue // another request created the cart first
				}
				return nil, err
			}
			return &c, nil
		}

		res, err := db.CartCollection.UpdateOne(ctx, writeFilter(userID, c.Revision), writeUpdate(c))
		if err != nil {
			return nil, err
		}
		if res.MatchedCount > 0 {
			c.Revision++
			return &c, nil
		}
		// lost the race, reload and retry
	}
	return nil, errCartContention
}

// AddToCart merges a line into the user's cart, creating the cart on
// first use.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input validators.CartAddInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": input.ProductID}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	userCart, err := mutateCart(ctx, userID, true, func(items []models.CartItem) ([]models.CartItem, error) {
		return MergeItem(items, input.ProductID, input.Quantity), nil
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	utils.RespondWithData(w, http.StatusOK, userCart)
}

// GetCart returns the cart with each line resolved to its product.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var userCart models.Cart
	if err := db.CartCollection.FindOne(ctx, bson.M{"user": userID}).Decode(&userCart); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	}

	ids := make([]string, 0, len(userCart.Items))
	for _, item := range userCart.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := utils.FindAndDecode[models.Product](ctx, db.ProductCollection, bson.M{"productid": bson.M{"$in": ids}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to resolve cart items")
		return
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
	}

	resolved := make([]models.ResolvedCartItem, 0, len(userCart.Items))
	for _, item := range userCart.Items {
		resolved = append(resolved, models.ResolvedCartItem{Product: byID[item.ProductID], Quantity: item.Quantity})
	}

	utils.RespondWithData(w, http.StatusOK, utils.M{
		"cartid":     userCart.CartID,
		"user":       userCart.UserID,
		"items":      resolved,
		"totalPrice": userCart.TotalPrice,
	})
}

// RemoveFromCart drops one line and reprices the remainder.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	productID := ps.ByName("productid")

	userCart, err := mutateCart(ctx, userID, false, func(items []models.CartItem) ([]models.CartItem, error) {
		rest, found := RemoveItem(items, productID)
		if !found {
			return nil, ErrLineNotFound
		}
		return rest, nil
	})
	switch err {
	case nil:
	case ErrCartNotFound:
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	case ErrLineNotFound:
		utils.RespondWithError(w, http.StatusNotFound, "Product not found in cart")
		return
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save cart")
		return
	}

	utils.RespondWithData(w, http.StatusOK, userCart)
}

// ClearCart deletes the cart document entirely.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := db.CartCollection.DeleteOne(ctx, bson.M{"user": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Cart not found")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Cart cleared")
}
