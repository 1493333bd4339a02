package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/web-shop/internal/repository"
)

// newProductHandler builds a handler around empty repos. The paths
// under test reject the request before any query runs, so no database
// is needed.
func newProductHandler() *ProductHandler {
	return NewProductHandler(
		&repository.CategoryRepo{},
		&repository.ProductRepo{},
		&repository.ReviewRepo{},
		&repository.UserInfoRepo{},
	)
}

func newFormContext(t *testing.T, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// A review posted without an identity is dropped without an error: the
// client gets the same redirect to the product page as on success.
func TestCreateReviewAnonymousRedirects(t *testing.T) {
	h := newProductHandler()
	c, rec := newFormContext(t, "/v1/shop/tools/widget-1/reviews",
		url.Values{"content": {"great widget"}})
	c.SetParamNames("category", "product")
	c.SetParamValues("tools", "widget-1")

	if err := h.CreateReview(c); err != nil {
		t.Fatalf("CreateReview returned error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/v1/shop/tools/widget-1" {
		t.Errorf("redirect location = %q, want %q", loc, "/v1/shop/tools/widget-1")
	}
}

func TestRemoveReviewAnonymous(t *testing.T) {
	h := newProductHandler()
	c, rec := newFormContext(t, "/v1/reviews/remove",
		url.Values{"review_id": {"5"}})

	if err := h.RemoveReview(c); err != nil {
		t.Fatalf("RemoveReview returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestRemoveReviewBadID(t *testing.T) {
	tests := []struct {
		name     string
		reviewID string
	}{
		{name: "missing", reviewID: ""},
		{name: "garbage", reviewID: "abc"},
		{name: "zero", reviewID: "0"},
		{name: "negative", reviewID: "-3"},
	}

	h := newProductHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			if tt.reviewID != "" {
				form.Set("review_id", tt.reviewID)
			}
			c, rec := newFormContext(t, "/v1/reviews/remove", form)
			c.Set("user_id", uint64(1))

			if err := h.RemoveReview(c); err != nil {
				t.Fatalf("RemoveReview returned error: %v", err)
			}
			if rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
			}
		})
	}
}

// Buying requires an identity; guests are refused outright rather than
// redirected to a login page.
func TestBuyAnonymousForbidden(t *testing.T) {
	h := newProductHandler()
	c, rec := newFormContext(t, "/v1/buy", url.Values{"product": {"widget-1"}})

	if err := h.Buy(c); err != nil {
		t.Fatalf("Buy returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}
