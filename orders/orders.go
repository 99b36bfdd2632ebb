// Package orders turns a cart into an immutable purchase record and
// walks it through the fulfilment lifecycle.
package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"mercato/db"
	"mercato/discounts"
	"mercato/models"
	"mercato/mq"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateOrder snapshots the submitted lines, applies an optional
// discount code and clears the buyer's cart. The order always starts
// pending regardless of the submitted status.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input validators.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]models.OrderItem, 0, len(input.Products))
	for _, line := range input.Products {
		items = append(items, models.OrderItem{ProductID: line.Product, Quantity: line.Quantity})
	}

	total := input.TotalAmount
	code := strings.ToUpper(strings.TrimSpace(input.DiscountCode))
	if code != "" {
		pct, err := discounts.Redeem(ctx, code)
		if err == discounts.ErrNotRedeemable {
			utils.RespondWithError(w, http.StatusBadRequest, "Discount code is not redeemable")
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to apply discount")
			return
		}
		total = total - total*pct/100
	}

	order := models.Order{
		OrderID:      "o" + utils.GenerateRandomString(12),
		UserID:       userID,
		CartID:       input.Cart,
		PaymentID:    input.Payment,
		ShippingID:   input.Shipping,
		Status:       StatusPending,
		TotalAmount:  total,
		DiscountCode: code,
		Items:        items,
		CreatedAt:    time.Now(),
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		if code != "" {
			discounts.Release(ctx, code)
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	// checkout empties the live cart; a missing cart is not an error
	db.CartCollection.DeleteOne(ctx, bson.M{"user": userID})

	mq.Emit(ctx, "order-created", "order", order.OrderID, utils.M{"status": order.Status})
	utils.RespondWithData(w, http.StatusCreated, order)
}

// GetOrders lists the caller's orders, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetSkip(skip).SetLimit(limit)
	list, err := utils.FindAndDecode[models.Order](ctx, db.OrderCollection, bson.M{"user": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	utils.RespondWithData(w, http.StatusOK, list)
}

// GetAllOrders is the admin view across every user.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetSkip(skip).SetLimit(limit)
	list, err := utils.FindAndDecode[models.Order](ctx, db.OrderCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	utils.RespondWithData(w, http.StatusOK, list)
}

// GetOrder returns one order, owner or admin only.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	order, ok := loadAuthorized(ctx, w, r, ps.ByName("orderid"))
	if !ok {
		return
	}
	utils.RespondWithData(w, http.StatusOK, order)
}

// UpdateOrderStatus advances the lifecycle under the transition rules.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.OrderStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	orderID := ps.ByName("orderid")
	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	if !CanTransition(order.Status, input.Status) {
		utils.RespondWithError(w, http.StatusConflict, "Invalid status transition")
		return
	}

	// the filter repeats the current status so racing updates cannot
	// both win
	res, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderid": orderID, "status": order.Status},
		bson.M{"$set": bson.M{"status": input.Status}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusConflict, "Order status changed concurrently")
		return
	}

	mq.Emit(ctx, "order-status-changed", "order", orderID, utils.M{"status": input.Status})
	utils.RespondWithMessage(w, http.StatusOK, "Order status updated")
}

func DeleteOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orderID := ps.ByName("orderid")
	res, err := db.OrderCollection.DeleteOne(ctx, bson.M{"orderid": orderID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	mq.Emit(ctx, "order-deleted", "order", orderID, nil)
	utils.RespondWithMessage(w, http.StatusOK, "Order deleted")
}

// loadAuthorized fetches an order and enforces owner-or-admin access,
// writing the error response itself when access fails.
func loadAuthorized(ctx context.Context, w http.ResponseWriter, r *http.Request, orderID string) (models.Order, bool) {
	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return order, false
	}
	userID := utils.GetUserIDFromRequest(r)
	if order.UserID != userID && utils.GetRoleFromRequest(r) != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return order, false
	}
	return order, true
}
