package cart

import "mercato/models"

// MergeItem folds a quantity into an existing line or appends a new one;
// repeated adds for the same product are always additive.
func MergeItem(items []models.CartItem, productID string, quantity int) []models.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			return items
		}
	}
	return append(items, models.CartItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem drops the line for productID, reporting whether it existed.
func RemoveItem(items []models.CartItem, productID string) ([]models.CartItem, bool) {
	for i := range items {
		if items[i].ProductID == productID {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// ComputeTotal prices the cart against the current discounted price of
// each referenced product. Lines whose product has vanished price at zero
// rather than failing the whole cart.
func ComputeTotal(items []models.CartItem, priceOf map[string]float64) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * priceOf[item.ProductID]
	}
	return total
}
