package domain

import (
	"fmt"
	"time"
)

// CartLine is one product size in a visitor cart
type CartLine struct {
	SessionID          string
	ProductID          int64
	SizeID             int64
	Name               string
	Image              string
	Brand              string
	Unit               string
	SizeName           string
	Price              float64
	DiscountPercentage float64
	Quantity           int
	UpdatedAt          time.Time
}

// CartKey builds the line key used to match cart lines with product cards
func CartKey(productID, sizeID int64) string {
	return fmt.Sprintf("%d-%d", productID, sizeID)
}

// Key returns the cart key of the line
func (l CartLine) Key() string {
	return CartKey(l.ProductID, l.SizeID)
}

// Total returns discounted price multiplied by quantity
func (l CartLine) Total() float64 {
	return DiscountedPrice(l.Price, l.DiscountPercentage) * float64(l.Quantity)
}

// Cart is a snapshot of all visitor cart lines
type Cart struct {
	Lines []CartLine
}

// Count returns the total number of units in the cart
func (c Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Total returns the discounted cart total
func (c Cart) Total() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Total()
	}
	return sum
}

// Quantities maps cart keys to quantities
func (c Cart) Quantities() map[string]int {
	res := make(map[string]int, len(c.Lines))
	for _, l := range c.Lines {
		res[l.Key()] = l.Quantity
	}
	return res
}

// Address is a delivery address selected by a visitor
type Address struct {
	FullAddress string
	Details     string
	Lat, Lng    *float64
}

// Story is a promo story shown on the home page
type Story struct {
	ID          string
	Title       string
	Image       string
	Category    string
	Description string
	ButtonText  string
	ButtonLink  string
	Published   time.Time
}
