package middleware // middleware contains reusable HTTP middleware for the storefront API

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// parseBearer validates a Bearer access token against our HS256 secret
// and returns its claims. The second return is false when the header is
// missing, malformed, or the token does not verify.
func parseBearer(c echo.Context, secret string) (jwt.MapClaims, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, false
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, false
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// setIdentity copies the identity claims into the echo context so
// handlers can read them via c.Get("user_id"), c.Get("username") and
// c.Get("role").
func setIdentity(c echo.Context, claims jwt.MapClaims) {
	c.Set("user_id", claims["sub"])
	c.Set("username", claims["username"])
	c.Set("role", claims["role"])
}

// JWTAuth returns middleware that rejects requests without a valid
// Bearer access token. Wrap protected routes with it; handlers then
// trust the identity values stored in the context.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := parseBearer(c, secret)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing or invalid bearer token"})
			}
			setIdentity(c, claims)
			return next(c)
		}
	}
}

// IdentityFromBearer extracts the user id from a Bearer token without
// requiring the JWT middleware; used by logout, which accepts either a
// bearer or a refresh token. Returns (0, false) when no valid bearer
// is present.
func IdentityFromBearer(c echo.Context, secret string) (uint64, bool) {
	claims, ok := parseBearer(c, secret)
	if !ok {
		return 0, false
	}
	switch sub := claims["sub"].(type) {
	case float64:
		return uint64(sub), true
	case string:
		if n, err := strconv.ParseUint(sub, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// OptionalJWT attaches the identity when a valid Bearer token is
// present and otherwise lets the request continue anonymously. Used on
// routes that behave differently for logged-in users but stay public,
// like the product detail page and review submission.
func OptionalJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, ok := parseBearer(c, secret); ok {
				setIdentity(c, claims)
			}
			return next(c)
		}
	}
}
