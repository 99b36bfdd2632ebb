// Package discounts manages percentage coupon codes. Redemption is a
// single conditional update so a usage limit can never be exceeded
// under concurrent orders.
package discounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/mq"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotRedeemable covers every failure mode a shopper sees the same
// way: unknown code, inactive, outside the validity window, or used up.
var ErrNotRedeemable = errors.New("discount code is not redeemable")

// Redeemable reports whether a discount could be applied at instant
// now, ignoring the usage counter race. The authoritative check is the
// conditional update in Redeem.
func Redeemable(d models.Discount, now time.Time) bool {
	if !d.IsActive {
		return false
	}
	if now.Before(d.ValidFrom) || now.After(d.ValidUntil) {
		return false
	}
	return d.UsedCount < d.UsageLimit
}

// Redeem consumes one use of the code and returns its percentage. The
// filter re-states every validity condition so the $inc only lands on a
// still-redeemable document.
func Redeem(ctx context.Context, code string) (float64, error) {
	now := time.Now()
	filter := bson.M{
		"code":       code,
		"isActive":   true,
		"validFrom":  bson.M{"$lte": now},
		"validUntil": bson.M{"$gte": now},
		"$expr":      bson.M{"$lt": []string{"$usedCount", "$usageLimit"}},
	}

	var d models.Discount
	err := db.DiscountCollection.FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"usedCount": 1}}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return 0, ErrNotRedeemable
	}
	if err != nil {
		return 0, err
	}
	return d.Percentage, nil
}

// Release undoes one redemption, used when order creation fails after
// the code was already consumed.
func Release(ctx context.Context, code string) {
	db.DiscountCollection.UpdateOne(ctx,
		bson.M{"code": code, "usedCount": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"usedCount": -1}})
}

func CreateDiscount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.DiscountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if err := db.DiscountCollection.FindOne(ctx, bson.M{"code": code}).Err(); err == nil {
		utils.RespondWithError(w, http.StatusConflict, "Discount code already exists")
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	d := models.Discount{
		DiscountID: "d" + utils.GenerateRandomString(12),
		Code:       code,
		Percentage: input.Percentage,
		ValidFrom:  input.ValidFrom,
		ValidUntil: input.ValidUntil,
		UsageLimit: input.UsageLimit,
		UsedCount:  0,
		IsActive:   active,
	}
	if _, err := db.DiscountCollection.InsertOne(ctx, d); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create discount")
		return
	}

	mq.Emit(ctx, "discount-created", "discount", d.DiscountID, nil)
	utils.RespondWithData(w, http.StatusCreated, d)
}

func GetDiscounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	list, err := utils.FindAndDecode[models.Discount](ctx, db.DiscountCollection, bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch discounts")
		return
	}
	utils.RespondWithData(w, http.StatusOK, list)
}

func GetDiscount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var d models.Discount
	if err := db.DiscountCollection.FindOne(ctx, bson.M{"discountid": ps.ByName("discountid")}).Decode(&d); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Discount not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, d)
}

func UpdateDiscount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input validators.DiscountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	set := bson.M{
		"code":       strings.ToUpper(strings.TrimSpace(input.Code)),
		"percentage": input.Percentage,
		"validFrom":  input.ValidFrom,
		"validUntil": input.ValidUntil,
		"usageLimit": input.UsageLimit,
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	res, err := db.DiscountCollection.UpdateOne(ctx, bson.M{"discountid": ps.ByName("discountid")}, bson.M{"$set": set})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update discount")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Discount not found")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Discount updated")
}

func DeleteDiscount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.DiscountCollection.DeleteOne(ctx, bson.M{"discountid": ps.ByName("discountid")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete discount")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Discount not found")
		return
	}
	utils.RespondWithMessage(w, http.StatusOK, "Discount deleted")
}

// CheckDiscount lets the storefront validate a code before checkout
// without consuming a use.
func CheckDiscount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	code := strings.ToUpper(ps.ByName("code"))
	var d models.Discount
	if err := db.DiscountCollection.FindOne(ctx, bson.M{"code": code}).Decode(&d); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Discount not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, utils.M{
		"code":       d.Code,
		"percentage": d.Percentage,
		"redeemable": Redeemable(d, time.Now()),
	})
}
