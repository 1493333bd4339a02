package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/web-shop/internal/handler"
	"github.com/iliyamo/web-shop/internal/middleware"
)

// RegisterShop wires the storefront routes. Catalog listings are
// public and cacheable; the product detail page and the mutating flows
// run behind OptionalJWT so the review gate and the buy handler see
// the caller's identity when one is present while guests still get the
// page. The detail page is not cached because can_review varies per
// identity.
func RegisterShop(e *echo.Echo, shop *handler.ShopHandler, product *handler.ProductHandler,
	profile *handler.ProfileHandler, jwtSecret string, cache echo.MiddlewareFunc) {

	listings := e.Group("/v1")
	if cache != nil {
		listings.Use(cache)
	}
	listings.GET("/main", shop.Main)
	listings.GET("/shop", shop.Shop)
	listings.GET("/shop/filter", shop.Filter)
	listings.GET("/shop/:category", shop.Category)

	optional := middleware.OptionalJWT(jwtSecret)
	e.GET("/v1/shop/:category/:product", product.Detail, optional)
	e.POST("/v1/shop/:category/:product/reviews", product.CreateReview, optional)
	e.POST("/v1/reviews/remove", product.RemoveReview, optional)
	e.POST("/v1/buy", product.Buy, optional)

	e.GET("/v1/users/:username", profile.Profile)
}
