package products

import (
	"context"
	"fmt"

	"mercato/db"
	"mercato/models"

	"go.mongodb.org/mongo-driver/bson"
)

const ratingRetries = 5

// ApplyRatingDelta is the single accessor through which the product
// rating aggregate changes. delta is +1 when a review is created and -1
// when one is deleted. The read-modify-write is guarded by a
// compare-and-swap on ratingCount, so two concurrent review writes on the
// same product cannot interleave and drift the mean.
func ApplyRatingDelta(ctx context.Context, productID string, rating int, delta int) error {
	for attempt := 0; attempt < ratingRetries; attempt++ {
		var product models.Product
		err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product)
		if err != nil {
			return fmt.Errorf("load product %s: %w", productID, err)
		}

		var newRating float64
		var newCount int
		if delta > 0 {
			newRating, newCount = NextRating(product.Rating, product.RatingCount, rating)
		} else {
			newRating, newCount = RatingAfterRemoval(product.Rating, product.RatingCount, rating)
		}

		res, err := db.ProductCollection.UpdateOne(ctx,
			bson.M{"productid": productID, "ratingCount": product.RatingCount},
			bson.M{"$set": bson.M{"rating": newRating, "ratingCount": newCount}},
		)
		if err != nil {
			return fmt.Errorf("update rating for %s: %w", productID, err)
		}
		if res.ModifiedCount > 0 || res.MatchedCount > 0 {
			invalidateCache(productID)
			return nil
		}
		// lost the race, reload and retry
	}
	return fmt.Errorf("rating update for %s: too many concurrent writers", productID)
}
