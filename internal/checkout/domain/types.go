package domain

import (
	"time"

	cart "github.com/dwikikusuma/shopcart/internal/cart/domain"
)

type Receipt struct {
	ID           string
	UserID       string
	UserName     string
	Items        []cart.LineItem
	Total        float64
	CheckedOutAt time.Time
}
