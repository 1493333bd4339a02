package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestPageParam(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "missing defaults to 1", target: "/v1/shop", want: 1},
		{name: "explicit page", target: "/v1/shop?page=4", want: 4},
		{name: "zero clamps to 1", target: "/v1/shop?page=0", want: 1},
		{name: "negative clamps to 1", target: "/v1/shop?page=-2", want: 1},
		{name: "garbage clamps to 1", target: "/v1/shop?page=abc", want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pageParam(newContext(t, tt.target)); got != tt.want {
				t.Errorf("pageParam(%q) = %d, want %d", tt.target, got, tt.want)
			}
		})
	}
}

func TestProductPath(t *testing.T) {
	got := productPath("tools", "widget-1")
	want := "/v1/shop/tools/widget-1"
	if got != want {
		t.Errorf("productPath = %q, want %q", got, want)
	}
}

func TestGetUserID(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    uint64
		wantErr bool
	}{
		{name: "float64 claim", value: float64(7), want: 7},
		{name: "uint64", value: uint64(9), want: 9},
		{name: "numeric string", value: "12", want: 12},
		{name: "missing", value: nil, wantErr: true},
		{name: "garbage string", value: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(t, "/")
			if tt.value != nil {
				c.Set("user_id", tt.value)
			}
			got, err := getUserID(c)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("getUserID = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOptionalUserIDAnonymous(t *testing.T) {
	c := newContext(t, "/")
	if got := optionalUserID(c); got != 0 {
		t.Errorf("anonymous context should yield 0, got %d", got)
	}
}
