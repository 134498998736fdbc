package domain

import "time"

// Product represents a catalog product as returned by the remote API
type Product struct {
	ID                 int64
	Name               string
	Description        string
	Image              string
	DiscountPercentage float64
	Unit               string
	Brand              string
	CategoryID         string
	Sizes              []ProductSize
	Options            []ProductOption
	CreatedAt          time.Time
}

// ProductSize is a purchasable variant of a product with its own price
type ProductSize struct {
	ID       int64   `json:"id"`
	Price    float64 `json:"price"`
	Weight   float64 `json:"weight"`
	Size     string  `json:"size"`
	Calories float64 `json:"calories"`
}

// ProductOption describes a configurable product option
type ProductOption struct {
	ID          int64                      `json:"id"`
	Name        string                     `json:"name"`
	Type        string                     `json:"type"`
	Description []ProductOptionDescription `json:"description"`
}

// ProductOptionDescription is a single option value
type ProductOptionDescription struct {
	ID      int64  `json:"id,omitempty"`
	Title   string `json:"title"`
	Value   string `json:"value"`
	Default string `json:"default"`
}

// DefaultSize returns the first size, the one shown on product cards
func (p Product) DefaultSize() (ProductSize, bool) {
	if len(p.Sizes) == 0 {
		return ProductSize{}, false
	}
	return p.Sizes[0], true
}

// Size looks up a size by id
func (p Product) Size(id int64) (ProductSize, bool) {
	for _, s := range p.Sizes {
		if s.ID == id {
			return s, true
		}
	}
	return ProductSize{}, false
}

// Price returns the discounted price of the default size, zero if the product has no sizes
func (p Product) Price() float64 {
	s, ok := p.DefaultSize()
	if !ok {
		return 0
	}
	return DiscountedPrice(s.Price, p.DiscountPercentage)
}

// HasDiscount reports whether a discount applies
func (p Product) HasDiscount() bool {
	return p.DiscountPercentage > 0
}

// DiscountedPrice applies a percentage discount to the price
func DiscountedPrice(price, discountPercentage float64) float64 {
	if discountPercentage <= 0 {
		return price
	}
	return price * (1 - discountPercentage/100)
}

// Category is a node of the catalog category tree
type Category struct {
	ID       string
	Name     string
	Position string
	IconURL  string
	Children []Category
}

// Flatten returns the category and all its descendants, depth first
func (c Category) Flatten() []Category {
	res := []Category{c}
	for _, child := range c.Children {
		res = append(res, child.Flatten()...)
	}
	return res
}
