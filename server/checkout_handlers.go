package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/umputun/storefront/pkg/domain"
	"github.com/umputun/storefront/pkg/i18n"
	"github.com/umputun/storefront/pkg/repository"
)

const maxCompanyName = 200

// checkoutData renders the checkout summary: delivery choice, promo and totals
type checkoutData struct {
	Lang       string
	Cart       domain.Cart
	Summary    domain.CheckoutSummary
	FreeFrom   float64
	PromoError string
	Address    *domain.Address
	Profile    *domain.Profile
}

type orderData struct {
	Lang  string
	Order domain.Order
	Count countData
}

type profileData struct {
	Lang    string
	Profile domain.Profile
	Saved   bool
}

type companiesData struct {
	Lang      string
	Companies []domain.Company
}

// checkoutHandler displays the checkout page for the visitor cart
func (s *Server) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)

	co, err := s.checkoutData(r, "")
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load checkout", err)
		return
	}
	profile, err := s.store.GetProfile(ctx, v.ID)
	if err != nil {
		log.Printf("[WARN] failed to load profile of %s: %v", v.ID, err)
	}
	co.Profile = profile

	data := s.baseData(ctx, v, pageCheckout)
	co.Address = data.Address
	data.Checkout = co
	if err := s.renderPage(w, "checkout.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// setDeliveryHandler switches between courier and pickup, renders the summary
func (s *Server) setDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form", err)
		return
	}
	method := domain.DeliveryMethod(r.FormValue("delivery"))
	if method != domain.DeliveryCourier && method != domain.DeliveryPickup {
		s.respondWithError(w, http.StatusBadRequest, "Unknown delivery method", nil)
		return
	}
	if err := s.store.SetDelivery(r.Context(), v.ID, method); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save delivery", err)
		return
	}
	s.writeCheckoutSummary(w, r, "")
}

// applyPromoHandler validates the promo code with the catalog API and applies it.
// Rejected and unverifiable codes leave the checkout unchanged and render the reason.
func (s *Server) applyPromoHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form", err)
		return
	}
	code := strings.ToUpper(strings.TrimSpace(r.FormValue("code")))
	if code == "" {
		s.respondWithError(w, http.StatusBadRequest, "Promo code is required", nil)
		return
	}

	if s.promos == nil {
		s.writeCheckoutSummary(w, r, i18n.T(v.Lang, "promoUnavailable"))
		return
	}
	check, err := s.promos.ValidatePromo(ctx, code)
	if err != nil {
		log.Printf("[WARN] failed to validate promo %q: %v", code, err)
		s.writeCheckoutSummary(w, r, i18n.T(v.Lang, "promoUnavailable"))
		return
	}
	if !check.Valid {
		msg := check.Message
		if msg == "" {
			msg = i18n.T(v.Lang, "promoInvalid")
		}
		s.writeCheckoutSummary(w, r, msg)
		return
	}

	if err := s.store.SetPromo(ctx, v.ID, domain.Promo{Code: code, Discount: check.Discount}); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to apply promo", err)
		return
	}
	log.Printf("[DEBUG] promo %s applied for %s, %.0f%% off", code, v.ID, check.Discount)
	s.writeCheckoutSummary(w, r, "")
}

// removePromoHandler drops the applied promo code
func (s *Server) removePromoHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	if err := s.store.ClearPromo(r.Context(), v.ID); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to remove promo", err)
		return
	}
	s.writeCheckoutSummary(w, r, "")
}

// placeOrderHandler places the order for the cart, the cart is emptied on success
func (s *Server) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form", err)
		return
	}

	recipient := strings.TrimSpace(r.FormValue("recipient"))
	if recipient == "" {
		s.respondWithError(w, http.StatusBadRequest, i18n.T(v.Lang, "recipientRequired"), nil)
		return
	}
	addr := domain.Address{
		FullAddress: strings.TrimSpace(r.FormValue("full_address")),
		Details:     strings.TrimSpace(r.FormValue("details")),
	}
	if addr.FullAddress == "" {
		saved, err := s.store.GetAddress(ctx, v.ID)
		if err != nil {
			log.Printf("[WARN] failed to load address of %s: %v", v.ID, err)
		}
		if saved != nil {
			addr = *saved
		}
	}
	if addr.FullAddress == "" {
		s.respondWithError(w, http.StatusBadRequest, i18n.T(v.Lang, "addressRequired"), nil)
		return
	}

	co, err := s.checkoutData(r, "")
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load checkout", err)
		return
	}
	if len(co.Cart.Lines) == 0 {
		s.respondWithError(w, http.StatusBadRequest, i18n.T(v.Lang, "emptyCart"), nil)
		return
	}

	order, err := s.store.PlaceOrder(ctx, domain.Order{
		SessionID: v.ID,
		Recipient: recipient,
		Address:   addr,
		Comment:   strings.TrimSpace(r.FormValue("comment")),
		Lines:     co.Cart.Lines,
		Summary:   co.Summary,
	})
	if errors.Is(err, repository.ErrEmptyCart) {
		s.respondWithError(w, http.StatusBadRequest, i18n.T(v.Lang, "emptyCart"), err)
		return
	}
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to place order", err)
		return
	}
	log.Printf("[INFO] order %s placed by %s, %d lines, total %.2f", order.ID, v.ID, len(order.Lines), order.Summary.Total)
	s.renderPartial(w, "order-placed", orderData{Lang: v.Lang, Order: order, Count: countData{OOB: true}})
}

// profileHandler displays visitor contact details and companies
func (s *Server) profileHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	v := visitor(r)

	data := s.baseData(ctx, v, pageProfile)
	data.Profile = profileData{Lang: v.Lang}
	profile, err := s.store.GetProfile(ctx, v.ID)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load profile", err)
		return
	}
	if profile != nil {
		data.Profile.Profile = *profile
	}
	companies, err := s.store.ListCompanies(ctx, v.ID)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load companies", err)
		return
	}
	data.Companies = companiesData{Lang: v.Lang, Companies: companies}

	if err := s.renderPage(w, "profile.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
	}
}

// saveProfileHandler validates and stores contact details
func (s *Server) saveProfileHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form", err)
		return
	}
	p := domain.Profile{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
		Birthday: strings.TrimSpace(r.FormValue("birthday")),
	}
	if err := validateProfile(p, time.Now()); err != nil {
		s.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err := s.store.SetProfile(r.Context(), v.ID, p); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save profile", err)
		return
	}
	s.renderPartial(w, "profile-form", profileData{Lang: v.Lang, Profile: p, Saved: true})
}

// createCompanyHandler registers a company contract and renders the list
func (s *Server) createCompanyHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form", err)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" || utf8.RuneCountInString(name) > maxCompanyName {
		s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Company name must be 1-%d characters", maxCompanyName), nil)
		return
	}
	c, err := s.store.CreateCompany(r.Context(), v.ID, name)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to create company", err)
		return
	}
	log.Printf("[INFO] company %s %q created by %s", c.Number, c.Name, v.ID)
	s.writeCompanies(w, r)
}

// dissolveCompanyHandler terminates a company contract and renders the list
func (s *Server) dissolveCompanyHandler(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid company id", err)
		return
	}
	_, err = s.store.DissolveCompany(r.Context(), v.ID, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.respondWithError(w, http.StatusNotFound, "Company not found", nil)
		return
	case errors.Is(err, repository.ErrCannotDissolve):
		s.respondWithError(w, http.StatusConflict, "Company can't be dissolved", err)
		return
	case err != nil:
		s.respondWithError(w, http.StatusInternalServerError, "Failed to dissolve company", err)
		return
	}
	s.writeCompanies(w, r)
}

// checkoutData prices the visitor cart with stored checkout choices
func (s *Server) checkoutData(r *http.Request, promoErr string) (checkoutData, error) {
	ctx := r.Context()
	v := visitor(r)
	cart, err := s.store.GetCart(ctx, v.ID)
	if err != nil {
		return checkoutData{}, fmt.Errorf("get cart: %w", err)
	}
	co, err := s.store.GetCheckout(ctx, v.ID)
	if err != nil {
		return checkoutData{}, fmt.Errorf("get checkout: %w", err)
	}
	return checkoutData{
		Lang:       v.Lang,
		Cart:       cart,
		Summary:    s.cfg.Delivery.Summary(cart, co),
		FreeFrom:   s.cfg.Delivery.FreeFrom,
		PromoError: promoErr,
	}, nil
}

func (s *Server) writeCheckoutSummary(w http.ResponseWriter, r *http.Request, promoErr string) {
	data, err := s.checkoutData(r, promoErr)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load checkout", err)
		return
	}
	s.renderPartial(w, "checkout-summary", data)
}

func (s *Server) writeCompanies(w http.ResponseWriter, r *http.Request) {
	v := visitor(r)
	companies, err := s.store.ListCompanies(r.Context(), v.ID)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load companies", err)
		return
	}
	s.renderPartial(w, "companies", companiesData{Lang: v.Lang, Companies: companies})
}

// validateProfile checks optional email and birthday, the birthday can't be in the future
func validateProfile(p domain.Profile, now time.Time) error {
	if p.Email != "" {
		if addr, err := mail.ParseAddress(p.Email); err != nil || addr.Address != p.Email {
			return errors.New("Invalid email") //nolint:staticcheck // shown to the visitor as is
		}
	}
	if p.Birthday != "" {
		bd, err := time.Parse(time.DateOnly, p.Birthday)
		if err != nil || bd.After(now) {
			return errors.New("Invalid date of birth") //nolint:staticcheck // shown to the visitor as is
		}
	}
	return nil
}

func companyStatus(lang string, st domain.CompanyStatus) string {
	name := st.String()
	return i18n.T(lang, "status"+strings.ToUpper(name[:1])+name[1:])
}
