package services

import "github.com/south-indian-kitchen/backend/models"

// Cart operations are pure: they never mutate the slice they are given and
// return a fresh slice the caller is responsible for persisting. At most
// one line exists per dish id.

// AddItem appends a line for the dish, or increments the existing line's
// quantity. Non-positive quantities are clamped to 1 at this boundary.
// Availability is deliberately not checked here.
func AddItem(items []models.CartItem, dish models.Dish, quantity int) []models.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	out := make([]models.CartItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].Dish.ID == dish.ID {
			out[i].Quantity += quantity
			return out
		}
	}
	return append(out, models.CartItem{Dish: dish, Quantity: quantity})
}

// UpdateQuantity sets the matching line's quantity exactly. A quantity of
// zero or less removes the line. Unknown dish ids are a no-op.
func UpdateQuantity(items []models.CartItem, dishID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return RemoveItem(items, dishID)
	}

	out := make([]models.CartItem, len(items))
	copy(out, items)

	for i := range out {
		if out[i].Dish.ID == dishID {
			out[i].Quantity = quantity
			break
		}
	}
	return out
}

// RemoveItem filters out the line for dishID, if present.
func RemoveItem(items []models.CartItem, dishID string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Dish.ID != dishID {
			out = append(out, item)
		}
	}
	return out
}

// ClearCart returns an empty cart.
func ClearCart(items []models.CartItem) []models.CartItem {
	return []models.CartItem{}
}

// CartTotal recomputes the cart total from the current lines.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Dish.Price * float64(item.Quantity)
	}
	return total
}

// CartCount is the number of units across all lines, for the cart badge.
func CartCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
