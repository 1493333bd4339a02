package handler // handler defines the HTTP handlers of the storefront API

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/web-shop/internal/model"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// shopPageSize is the fixed page size of shop listings.
const shopPageSize = 9

// getUserID extracts the user_id set by the JWT middleware and converts
// it to uint64. JWT numeric claims decode as float64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// optionalUserID is like getUserID but treats a missing identity as
// anonymous (id 0) rather than an error. Used on public routes that
// run behind OptionalJWT.
func optionalUserID(c echo.Context) uint64 {
	id, err := getUserID(c)
	if err != nil {
		return 0
	}
	return id
}

// currentUsername reads the username claim, empty for guests.
func currentUsername(c echo.Context) string {
	if s, ok := c.Get("username").(string); ok {
		return s
	}
	return ""
}

// productPath builds the canonical detail-page path of a product; used
// as the redirect target after review submission, removal and similar
// form-style posts.
func productPath(categorySlug, productSlug string) string {
	return "/v1/shop/" + categorySlug + "/" + productSlug
}

// pageParam parses the ?page= query parameter, defaulting to 1.
func pageParam(c echo.Context) int {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// ----- shared response DTOs -----

type categoryResp struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type productResp struct {
	ID              uint64          `json:"id"`
	CategoryID      uint64          `json:"category_id"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug"`
	Image           string          `json:"image,omitempty"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	IsAvailable     bool            `json:"is_available"`
	Characteristics map[string]any  `json:"characteristics"`
	CreatedAt       time.Time       `json:"created_at"`
}

type reviewResp struct {
	ID          uint64    `json:"id"`
	AuthorID    uint64    `json:"author_id"`
	Content     string    `json:"content"`
	IsRecommend bool      `json:"is_recommend"`
	PublishedAt time.Time `json:"published_at"`
}

func toCategoryResp(c model.Category) categoryResp {
	return categoryResp{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toCategoryResps(cs []model.Category) []categoryResp {
	out := make([]categoryResp, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategoryResp(c))
	}
	return out
}

func toProductResp(p model.Product) productResp {
	return productResp{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		Name:            p.Name,
		Slug:            p.Slug,
		Image:           p.Image,
		Description:     p.Description,
		Price:           p.Price,
		IsAvailable:     p.IsAvailable,
		Characteristics: p.Characteristics,
		CreatedAt:       p.CreatedAt,
	}
}

func toProductResps(ps []model.Product) []productResp {
	out := make([]productResp, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResp(p))
	}
	return out
}

func toReviewResps(rs []model.ProductReview) []reviewResp {
	out := make([]reviewResp, 0, len(rs))
	for _, r := range rs {
		out = append(out, reviewResp{
			ID:          r.ID,
			AuthorID:    r.AuthorID,
			Content:     r.Content,
			IsRecommend: r.IsRecommend,
			PublishedAt: r.PublishedAt,
		})
	}
	return out
}
