// Package catalog is a gateway to the remote product catalog REST API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/storefront/pkg/domain"
)

// ErrUnexpectedStatus returned when the API responds with non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected status")

// Client talks to the catalog API
type Client struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client
	sanitizer *bluemonday.Policy
}

// Params for the client
type Params struct {
	BaseURL   string // e.g. https://example.com/api
	Token     string // bearer token, optional
	UserAgent string
	Timeout   time.Duration
}

// NewClient makes a catalog API client
func NewClient(p Params) *Client {
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	if p.UserAgent == "" {
		p.UserAgent = "storefront/1.0"
	}
	return &Client{
		baseURL:   strings.TrimSuffix(p.BaseURL, "/"),
		token:     p.Token,
		userAgent: p.UserAgent,
		client: &http.Client{
			Timeout: p.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// API payloads

type productsResponse struct {
	Data []apiProduct `json:"data"`
}

type apiProduct struct {
	ID                 int64                  `json:"id"`
	Name               string                 `json:"name"`
	Description        string                 `json:"description"`
	Image              string                 `json:"image"`
	DiscountPercentage float64                `json:"discountPercentage"`
	Unit               string                 `json:"unit"`
	Brand              string                 `json:"brand"`
	CategoryID         flexString             `json:"category_id,omitempty"`
	Size               []domain.ProductSize   `json:"size"`
	Options            []domain.ProductOption `json:"options"`
}

type categoriesResponse struct {
	Data []apiCategory `json:"data"`
}

type apiCategory struct {
	ID       flexString    `json:"id"`
	Name     string        `json:"name"`
	Position flexString    `json:"position"`
	IconURL  *string       `json:"iconUrl"`
	Children []apiCategory `json:"children"`
}

type promoRequest struct {
	Code string `json:"code"`
}

type promoResponse struct {
	Valid    bool     `json:"valid"`
	Discount *float64 `json:"discount"`
	Message  string   `json:"message"`
}

// FetchPage retrieves one page of products. Category "all" (or empty) lists
// products regardless of category.
func (c *Client) FetchPage(ctx context.Context, page, pageSize int, sort domain.SortOption,
	categoryID, search string) ([]domain.Product, error) {

	params := url.Values{}
	if sort != "" {
		params.Set("sort", string(sort))
	}
	if search != "" {
		params.Set("search", search)
	}
	path := "/v1/products/no-category"
	if categoryID != "" && categoryID != domain.CategoryAll {
		path = "/v1/products"
		params.Set("category_id", categoryID)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(pageSize))

	var resp productsResponse
	if err := c.get(ctx, path+"?"+params.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("fetch products page %d: %w", page, err)
	}

	res := make([]domain.Product, 0, len(resp.Data))
	for _, p := range resp.Data {
		res = append(res, c.toDomain(p, categoryID))
	}
	return res, nil
}

// Categories retrieves the category tree
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var resp categoriesResponse
	if err := c.get(ctx, "/v1/categories", &resp); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	res := make([]domain.Category, 0, len(resp.Data))
	for _, cat := range resp.Data {
		res = append(res, cat.toDomain())
	}
	return res, nil
}

// ValidatePromo checks the promo code. An unknown code is a valid response with Valid false,
// errors are reserved for transport and API failures.
func (c *Client) ValidatePromo(ctx context.Context, code string) (domain.PromoCheck, error) {
	var resp promoResponse
	if err := c.do(ctx, http.MethodPost, "/v1/promo/validate", promoRequest{Code: code}, &resp); err != nil {
		return domain.PromoCheck{}, fmt.Errorf("validate promo: %w", err)
	}
	res := domain.PromoCheck{Valid: resp.Valid, Message: resp.Message}
	if resp.Valid && resp.Discount != nil {
		res.Discount = min(max(*resp.Discount, 0), 100)
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

// do sends the request with optional JSON body and decodes JSON response into dest
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqBody := io.Reader(http.NoBody)
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) toDomain(p apiProduct, categoryID string) domain.Product {
	res := domain.Product{
		ID:                 p.ID,
		Name:               strings.TrimSpace(p.Name),
		Description:        c.sanitizer.Sanitize(p.Description),
		Image:              p.Image,
		DiscountPercentage: p.DiscountPercentage,
		Unit:               p.Unit,
		Brand:              p.Brand,
		CategoryID:         string(p.CategoryID),
		Sizes:              p.Size,
		Options:            p.Options,
	}
	// the listing filtered by category doesn't always repeat it in records
	if res.CategoryID == "" && categoryID != domain.CategoryAll {
		res.CategoryID = categoryID
	}
	return res
}

func (a apiCategory) toDomain() domain.Category {
	res := domain.Category{ID: string(a.ID), Name: a.Name, Position: string(a.Position)}
	if a.IconURL != nil {
		res.IconURL = *a.IconURL
	}
	for _, ch := range a.Children {
		res.Children = append(res.Children, ch.toDomain())
	}
	return res
}

// flexString accepts both JSON strings and numbers, the API is not consistent about ids
type flexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", string(b), err)
	}
	*f = flexString(n.String())
	return nil
}
