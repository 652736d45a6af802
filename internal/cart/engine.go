// Package cart implements the shopping cart: a pure engine over ordered
// line items plus a Redis-backed session store for persistence between
// requests.
package cart

// LineItem is one cart entry. Items are distinguished by the full
// (product_id, size, color) triple; empty size or color is a valid variant.
type LineItem struct {
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// Add merges the quantity into an existing line with the same product id,
// size and color, or appends a new line at the tail. Quantities at or below
// zero count as one.
func Add(cart []LineItem, productID, quantity int, size, color string) []LineItem {
	if quantity <= 0 {
		quantity = 1
	}
	for i, item := range cart {
		if item.ProductID == productID && item.Size == size && item.Color == color {
			cart[i].Quantity += quantity
			return cart
		}
	}
	return append(cart, LineItem{ProductID: productID, Quantity: quantity, Size: size, Color: color})
}

// UpdateQuantity sets the quantity on the first line with the product id,
// regardless of size or color. A quantity at or below zero removes that one
// line. An unknown id leaves the cart unchanged.
func UpdateQuantity(cart []LineItem, productID, quantity int) []LineItem {
	for i, item := range cart {
		if item.ProductID != productID {
			continue
		}
		if quantity <= 0 {
			return append(cart[:i], cart[i+1:]...)
		}
		cart[i].Quantity = quantity
		return cart
	}
	return cart
}

// Remove drops every line with the product id, across all size and color
// variants.
func Remove(cart []LineItem, productID int) []LineItem {
	kept := cart[:0]
	for _, item := range cart {
		if item.ProductID == productID {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// Clear returns an empty cart.
func Clear() []LineItem {
	return []LineItem{}
}
