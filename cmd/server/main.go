package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/web-shop/internal/config"
	"github.com/iliyamo/web-shop/internal/database"
	"github.com/iliyamo/web-shop/internal/handler"
	"github.com/iliyamo/web-shop/internal/middleware"
	"github.com/iliyamo/web-shop/internal/queue"
	"github.com/iliyamo/web-shop/internal/repository"
	"github.com/iliyamo/web-shop/internal/router"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: a nil client turns caching and rate limiting
	// into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	categories := repository.NewCategoryRepo(db)
	products := repository.NewProductRepo(db)
	reviews := repository.NewReviewRepo(db)
	ledger := repository.NewUserInfoRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	shopHandler := handler.NewShopHandler(categories, products)
	productHandler := handler.NewProductHandler(categories, products, reviews, ledger)
	profileHandler := handler.NewProfileHandler(users, products, ledger)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterShop(e, shopHandler, productHandler, profileHandler, cfg.JWTSecret,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	// Consume purchase events in the background; the loop reconnects on
	// broker failures and never brings the server down.
	go func() {
		if err := queue.StartPurchaseConsumer(); err != nil {
			log.Printf("purchase consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
