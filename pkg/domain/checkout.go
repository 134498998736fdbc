package domain

import (
	"math"
	"time"
)

// DeliveryMethod is how the order reaches the visitor
type DeliveryMethod string

// delivery methods
const (
	DeliveryCourier DeliveryMethod = "courier"
	DeliveryPickup  DeliveryMethod = "pickup"
)

// ParseDeliveryMethod returns the delivery method, courier for unknown values
func ParseDeliveryMethod(s string) DeliveryMethod {
	if DeliveryMethod(s) == DeliveryPickup {
		return DeliveryPickup
	}
	return DeliveryCourier
}

// Promo is an applied promo code, Discount is a percentage of the subtotal
type Promo struct {
	Code     string
	Discount float64
}

// PromoCheck is the result of promo code validation
type PromoCheck struct {
	Valid    bool
	Discount float64
	Message  string
}

// Checkout holds checkout choices of a visitor
type Checkout struct {
	Delivery DeliveryMethod
	Promo    *Promo
}

// DeliveryRules sets courier delivery cost
type DeliveryRules struct {
	Cost     float64 // courier delivery cost
	FreeFrom float64 // courier delivery is free when the subtotal reaches it, zero disables
}

// CheckoutSummary is the priced checkout
type CheckoutSummary struct {
	Delivery     DeliveryMethod
	Promo        *Promo
	Subtotal     float64 // discounted product prices
	Discount     float64 // promo discount
	DeliveryCost float64
	Total        float64
}

// FreeDelivery reports whether courier delivery costs nothing because of the subtotal
func (s CheckoutSummary) FreeDelivery() bool {
	return s.Delivery == DeliveryCourier && s.DeliveryCost == 0
}

// Summary prices the cart with the checkout choices. Delivery cost depends on the
// subtotal before the promo discount.
func (r DeliveryRules) Summary(cart Cart, co Checkout) CheckoutSummary {
	res := CheckoutSummary{Delivery: ParseDeliveryMethod(string(co.Delivery)), Promo: co.Promo, Subtotal: round2(cart.Total())}
	if co.Promo != nil {
		res.Discount = round2(res.Subtotal * co.Promo.Discount / 100)
	}
	if res.Delivery == DeliveryCourier && (r.FreeFrom <= 0 || res.Subtotal < r.FreeFrom) {
		res.DeliveryCost = r.Cost
	}
	res.Total = round2(res.Subtotal - res.Discount + res.DeliveryCost)
	return res
}

// Order is a placed order
type Order struct {
	ID        string
	SessionID string
	Recipient string
	Address   Address
	Comment   string
	Lines     []CartLine
	Summary   CheckoutSummary
	CreatedAt time.Time
}

// Profile is visitor contact information used at checkout
type Profile struct {
	Name     string
	Email    string
	Phone    string
	Birthday string // YYYY-MM-DD, optional
}

// CompanyStatus is the state of a company contract
type CompanyStatus int

// company statuses
const (
	CompanyActive      CompanyStatus = 1
	CompanyInactive    CompanyStatus = 2
	CompanyDissolution CompanyStatus = 3
	CompanyDissolved   CompanyStatus = 4
	CompanyPending     CompanyStatus = 5
)

// String returns the status name used as translation key suffix
func (s CompanyStatus) String() string {
	switch s {
	case CompanyActive:
		return "active"
	case CompanyInactive:
		return "inactive"
	case CompanyDissolution:
		return "dissolution"
	case CompanyDissolved:
		return "dissolved"
	case CompanyPending:
		return "pending"
	}
	return "unknown"
}

// Company is a company contract of a visitor
type Company struct {
	ID        int64
	Name      string
	Number    string
	Status    CompanyStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanDissolve reports whether the contract may be terminated
func (c Company) CanDissolve() bool {
	return c.Status == CompanyActive || c.Status == CompanyInactive
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
