package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/web-shop/internal/repository"
)

// ProfileHandler serves the public profile page showing a user's
// purchased items, resolved from the ledger back into products.
type ProfileHandler struct {
	Users    *repository.UserRepo
	Products *repository.ProductRepo
	Ledger   *repository.UserInfoRepo
}

func NewProfileHandler(users *repository.UserRepo, products *repository.ProductRepo, ledger *repository.UserInfoRepo) *ProfileHandler {
	if users == nil || products == nil || ledger == nil {
		panic("nil repository passed to NewProfileHandler")
	}
	return &ProfileHandler{Users: users, Products: products, Ledger: ledger}
}

// Profile handles GET /v1/users/:username. Viewing a profile lazily
// creates the user's ledger row when none exists yet; an absent ledger
// key simply renders as no purchases.
func (h *ProfileHandler) Profile(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if _, err := h.Ledger.GetOrCreate(ctx, u.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	items := []productResp{}
	slugs, err := h.Ledger.PurchasedSlugs(ctx, u.ID)
	switch err {
	case nil:
		products, err := h.Products.ListBySlugs(ctx, slugs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		items = toProductResps(products)
	case repository.ErrNoPurchases:
		// fresh ledger, nothing to show
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"username":        u.Username,
		"purchased_items": items,
	})
}
