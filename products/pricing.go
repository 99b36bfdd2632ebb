package products

import "mercato/models"

// SalePrice is the one authoritative discounted-price computation. It is
// applied on every create and on every update that touches price, sale
// flag or percentage.
func SalePrice(basePrice float64, onSale bool, discountPercentage float64) float64 {
	if !onSale {
		return basePrice
	}
	return basePrice - basePrice*discountPercentage/100
}

func applySalePrice(p *models.Product) {
	p.DiscountedPrice = SalePrice(p.BasePrice, p.IsOnSale, p.DiscountPercentage)
}

// NextRating returns the running mean and count after adding one rating.
func NextRating(rating float64, count int, added int) (float64, int) {
	newCount := count + 1
	return (rating*float64(count) + float64(added)) / float64(newCount), newCount
}

// RatingAfterRemoval undoes one rating from the running mean. A count
// that reaches zero resets the mean.
func RatingAfterRemoval(rating float64, count int, removed int) (float64, int) {
	newCount := count - 1
	if newCount <= 0 {
		return 0, 0
	}
	return (rating*float64(count) - float64(removed)) / float64(newCount), newCount
}
