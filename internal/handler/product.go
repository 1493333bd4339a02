package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/web-shop/internal/model"
	"github.com/iliyamo/web-shop/internal/queue"
	"github.com/iliyamo/web-shop/internal/repository"
	queue_publisher "github.com/iliyamo/web-shop/internal/service"
)

// ProductHandler serves the product detail page and the mutating
// storefront flows hanging off it: review submission, review removal
// and the purchase confirmation. Review submission and the detail page
// run behind OptionalJWT so guests still see the page while the gate
// sees the real identity when one is present.
type ProductHandler struct {
	Categories *repository.CategoryRepo
	Products   *repository.ProductRepo
	Reviews    *repository.ReviewRepo
	Ledger     *repository.UserInfoRepo
	Gate       *repository.ReviewGate
}

func NewProductHandler(categories *repository.CategoryRepo, products *repository.ProductRepo,
	reviews *repository.ReviewRepo, ledger *repository.UserInfoRepo) *ProductHandler {
	if categories == nil || products == nil || reviews == nil || ledger == nil {
		panic("nil repository passed to NewProductHandler")
	}
	return &ProductHandler{
		Categories: categories,
		Products:   products,
		Reviews:    reviews,
		Ledger:     ledger,
		Gate:       repository.NewReviewGate(reviews, ledger),
	}
}

// resolveProduct loads the category and product named in the route,
// translating unknown slugs into 404s.
func (h *ProductHandler) resolveProduct(c echo.Context, ctx context.Context) (model.Product, bool) {
	cat, err := h.Categories.GetBySlug(ctx, c.Param("category"))
	if err != nil {
		if err == repository.ErrCategoryNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return model.Product{}, false
	}
	p, err := h.Products.GetBySlug(ctx, cat.ID, c.Param("product"))
	if err != nil {
		if err == repository.ErrProductNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		return model.Product{}, false
	}
	return p, true
}

// Detail handles GET /v1/shop/:category/:product. Besides the product
// itself it returns up to three related products, the review list, and
// whether the current identity may post a review.
func (h *ProductHandler) Detail(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, ok := h.resolveProduct(c, ctx)
	if !ok {
		return nil
	}

	related, err := h.Products.Related(ctx, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	reviews, err := h.Reviews.ListByProduct(ctx, p.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	canReview := false
	if uid := optionalUserID(c); uid != 0 {
		canReview, err = h.Gate.CanReview(ctx, uid, p.ID, p.Slug)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"product":          toProductResp(p),
		"related_products": toProductResps(related),
		"reviews":          toReviewResps(reviews),
		"can_review":       canReview,
	})
}

type createReviewReq struct {
	Content     string `json:"content" form:"content"`
	IsRecommend *bool  `json:"is_recommend" form:"is_recommend"`
}

// CreateReview handles POST /v1/shop/:category/:product/reviews. A
// request the gate denies is dropped without an error: the client is
// redirected to the product page exactly as on success.
func (h *ProductHandler) CreateReview(c echo.Context) error {
	// Anonymous submissions can never pass the gate; drop them before
	// touching the database and redirect like any other denied post.
	if optionalUserID(c) == 0 {
		return c.Redirect(http.StatusSeeOther,
			productPath(c.Param("category"), c.Param("product")))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, ok := h.resolveProduct(c, ctx)
	if !ok {
		return nil
	}

	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" || utf8.RuneCountInString(req.Content) > model.MaxReviewContentLen {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "content required, max 2048 chars"})
	}
	recommend := true
	if req.IsRecommend != nil {
		recommend = *req.IsRecommend
	}

	allowed, err := h.Gate.CanReview(ctx, optionalUserID(c), p.ID, p.Slug)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if allowed {
		uid := optionalUserID(c)
		if _, err := h.Reviews.Create(ctx, p.ID, uid, req.Content, recommend); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
		}
	}
	// Denied submissions fall through to the same redirect.
	return c.Redirect(http.StatusSeeOther, productPath(c.Param("category"), p.Slug))
}

type removeReviewReq struct {
	ReviewID string `json:"review_id" form:"review_id"`
}

// RemoveReview handles POST /v1/reviews/remove. Only the author may
// remove a review; a missing review_id or an author mismatch is 403,
// an unknown id 404. On success the client is redirected to the page
// of the product the review belonged to.
func (h *ProductHandler) RemoveReview(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req removeReviewReq
	_ = c.Bind(&req)
	raw := strings.TrimSpace(req.ReviewID)
	if raw == "" {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	reviewID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || reviewID == 0 {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	rv, err := h.Reviews.DeleteAsAuthor(ctx, reviewID, uid)
	if err != nil {
		switch err {
		case repository.ErrReviewNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
		case repository.ErrForbidden:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete review failed"})
	}

	p, err := h.Products.GetByID(ctx, rv.ProductID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	cat, err := h.Categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.Redirect(http.StatusSeeOther, productPath(cat.Slug, p.Slug))
}

type buyReq struct {
	Product  string `json:"product" form:"product"`
	Quantity int    `json:"quantity" form:"quantity"`
}

// Buy handles POST /v1/buy: the simulated purchase confirmation. An
// anonymous request is forbidden. The product slug is appended to the
// user's ledger (idempotently) and a purchase.completed event is
// published; quantity is display-only and never reaches the ledger.
func (h *ProductHandler) Buy(c echo.Context) error {
	uid := optionalUserID(c)
	if uid == 0 {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req buyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Product = strings.TrimSpace(req.Product)
	if req.Product == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is required"})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	p, err := h.Products.GetBySlugAnyCategory(ctx, req.Product)
	if err != nil {
		if err == repository.ErrProductNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if err := h.Ledger.RecordPurchase(ctx, uid, p.Slug); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "record purchase failed"})
	}

	ev := queue.PurchaseCompletedEvent{
		UserID:      uid,
		Username:    currentUsername(c),
		ProductID:   p.ID,
		ProductSlug: p.Slug,
		ProductName: p.Name,
		Price:       p.Price.String(),
		Quantity:    req.Quantity,
		PurchasedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishPurchaseCompleted(ctx, ev); err != nil {
		// The purchase itself succeeded; losing the event only costs
		// the downstream log line.
		log.Printf("buy: publish purchase event failed: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"item":     toProductResp(p),
		"quantity": req.Quantity,
	})
}
