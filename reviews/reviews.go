// Package reviews handles product reviews and keeps the product's
// rating aggregate in step with them.
package reviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"mercato/db"
	"mercato/models"
	"mercato/mq"
	"mercato/products"
	"mercato/utils"
	"mercato/validators"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func insertStatus(err error) (int, string) {
	if mongo.IsDuplicateKeyError(err) {
		return http.StatusConflict, "You have already reviewed this product"
	}
	return http.StatusInternalServerError, "Failed to create review"
}

// CreateReview stores one review per user per product and folds the
// rating into the product's running mean.
func CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input validators.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if err := validators.Validate(input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": input.Product}).Err(); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	review := models.Review{
		ReviewID:  "rev" + utils.GenerateRandomString(12),
		ProductID: input.Product,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	// the unique (product, user) index makes one-review-per-user real;
	// a duplicate insert is a conflict, not a server error
	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		status, msg := insertStatus(err)
		utils.RespondWithError(w, status, msg)
		return
	}

	if err := products.ApplyRatingDelta(ctx, input.Product, input.Rating, 1); err != nil {
		log.Printf("[reviews] rating update for %s: %v", input.Product, err)
	}

	mq.Emit(ctx, "review-created", "review", review.ReviewID, utils.M{"product": input.Product})
	utils.RespondWithData(w, http.StatusCreated, review)
}

// GetReviews lists reviews of a product, newest first.
func GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetSkip(skip).SetLimit(limit)
	list, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, bson.M{"product": ps.ByName("productid")}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	utils.RespondWithData(w, http.StatusOK, list)
}

func GetReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var review models.Review
	if err := db.ReviewsCollection.FindOne(ctx, bson.M{"reviewid": ps.ByName("reviewid")}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	utils.RespondWithData(w, http.StatusOK, review)
}

// DeleteReview removes an own review (or any review as admin) and
// subtracts its rating from the product aggregate.
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var review models.Review
	if err := db.ReviewsCollection.FindOne(ctx, bson.M{"reviewid": ps.ByName("reviewid")}).Decode(&review); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}
	if review.UserID != userID && utils.GetRoleFromRequest(r) != "admin" {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if _, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"reviewid": review.ReviewID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	if err := products.ApplyRatingDelta(ctx, review.ProductID, review.Rating, -1); err != nil {
		log.Printf("[reviews] rating update for %s: %v", review.ProductID, err)
	}

	mq.Emit(ctx, "review-deleted", "review", review.ReviewID, utils.M{"product": review.ProductID})
	utils.RespondWithMessage(w, http.StatusOK, "Review deleted")
}
