package domain

import (
	cart "github.com/dwikikusuma/shopcart/internal/cart/domain"
	catalog "github.com/dwikikusuma/shopcart/internal/catalog/domain"
	pricing "github.com/dwikikusuma/shopcart/internal/pricing/domain"
)

// User owns exactly one active cart and the discounts applied when it checks out.
type User struct {
	ID        string
	Name      string
	Discounts []pricing.Discount

	cart *cart.Cart
}

type Option func(*User)

// WithCart starts the user with an existing cart. A nil cart is ignored.
func WithCart(c *cart.Cart) Option {
	return func(u *User) {
		u.cart = c
	}
}

func WithDiscounts(discounts ...pricing.Discount) Option {
	return func(u *User) {
		u.Discounts = discounts
	}
}

func NewUser(id, name string, opts ...Option) *User {
	u := &User{ID: id, Name: name}
	for _, opt := range opts {
		opt(u)
	}
	if u.cart == nil {
		u.cart = cart.New()
	}
	return u
}

// Cart returns the active cart. The returned handle goes stale after Checkout.
func (u *User) Cart() *cart.Cart {
	return u.cart
}

func (u *User) AddToCart(item catalog.Item) {
	u.cart.Add(item)
}

func (u *User) RemoveFromCart(productID string) {
	u.cart.Remove(productID)
}

// Checkout totals the active cart with the user's discounts and replaces it with
// a new empty cart. The old cart is left untouched.
func (u *User) Checkout() float64 {
	total := u.cart.Total(u.Discounts...)
	u.cart = cart.New()
	return total
}
