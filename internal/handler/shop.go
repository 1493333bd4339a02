package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/web-shop/internal/repository"
)

// ShopHandler serves the catalog listing pages: the main page with the
// latest arrivals, the paginated shop, per-category listings and the
// filter endpoint. All routes are public and sit behind the response
// cache.
type ShopHandler struct {
	Categories *repository.CategoryRepo
	Products   *repository.ProductRepo
}

func NewShopHandler(categories *repository.CategoryRepo, products *repository.ProductRepo) *ShopHandler {
	if categories == nil || products == nil {
		panic("nil repository passed to NewShopHandler")
	}
	return &ShopHandler{Categories: categories, Products: products}
}

// Main handles GET /v1/main: the ten most recently added products in
// reverse id order.
func (h *ShopHandler) Main(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	latest, err := h.Products.Latest(ctx, 10)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"latest_products": toProductResps(latest),
	})
}

// listingResponse is the common body of shop/category/filter pages:
// one page of products plus the categories and the price range of the
// whole filtered set, which the storefront uses for its sidebar.
func (h *ShopHandler) listingResponse(c echo.Context, ctx context.Context, q repository.ProductSearchQuery) error {
	res, err := h.Products.Search(ctx, q)
	if err != nil {
		if err == repository.ErrInvalidSortKey {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sort key"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	cats, err := h.Categories.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"products":   toProductResps(res.Items),
		"total":      res.Total,
		"page":       q.Page,
		"page_size":  q.PageSize,
		"categories": toCategoryResps(cats),
		"min_price":  res.MinPrice,
		"max_price":  res.MaxPrice,
	})
}

// Shop handles GET /v1/shop: available products only, nine per page.
func (h *ShopHandler) Shop(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	q := repository.ProductSearchQuery{
		AvailableOnly: true,
		Page:          pageParam(c),
		PageSize:      shopPageSize,
	}
	return h.listingResponse(c, ctx, q)
}

// Category handles GET /v1/shop/:category: all products of one
// category. An unknown slug is a 404.
func (h *ShopHandler) Category(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	cat, err := h.Categories.GetBySlug(ctx, c.Param("category"))
	if err != nil {
		if err == repository.ErrCategoryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	q := repository.ProductSearchQuery{
		CategoryID: cat.ID,
		Page:       pageParam(c),
		PageSize:   shopPageSize,
	}
	return h.listingResponse(c, ctx, q)
}

// Filter handles GET /v1/shop/filter. Query parameters sort_by,
// min_price, max_price and category are combined conjunctively; absent
// parameters impose no constraint except the price bounds, which
// always default to [0, 9999999].
func (h *ShopHandler) Filter(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	q := repository.ProductSearchQuery{
		SortBy:   strings.TrimSpace(c.QueryParam("sort_by")),
		Page:     pageParam(c),
		PageSize: shopPageSize,
	}

	if raw := strings.TrimSpace(c.QueryParam("min_price")); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil || min.IsNegative() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_price"})
		}
		q.MinPrice = min
	}
	if raw := strings.TrimSpace(c.QueryParam("max_price")); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil || max.IsNegative() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
		}
		q.MaxPrice = max
		q.HasMaxPrice = true
	}
	if slug := strings.TrimSpace(c.QueryParam("category")); slug != "" {
		cat, err := h.Categories.GetBySlug(ctx, slug)
		if err != nil {
			if err == repository.ErrCategoryNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		q.CategoryID = cat.ID
	}

	return h.listingResponse(c, ctx, q)
}
