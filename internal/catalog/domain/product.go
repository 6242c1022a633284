package domain

import "fmt"

// Item is anything that can sit in a cart. Implementations are pointers so a
// cart shares the product rather than copying it.
type Item interface {
	Base() *Product
	Info() Info
}

// Info is the key/value projection of a product. The key set depends on the variant.
type Info map[string]any

type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

type Option func(*Product)

func WithQuantity(quantity int) Option {
	return func(p *Product) {
		p.Quantity = quantity
	}
}

func NewProduct(id, name string, price float64, opts ...Option) *Product {
	p := &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Product) Base() *Product {
	return p
}

// UpdateQuantity replaces the quantity. Negative values are kept as given.
func (p *Product) UpdateQuantity(quantity int) {
	p.Quantity = quantity
}

func (p *Product) UpdatePrice(price float64) {
	p.Price = price
}

func (p *Product) Info() Info {
	return Info{
		"product_id": p.ID,
		"name":       p.Name,
		"price":      p.Price,
		"quantity":   p.Quantity,
	}
}

type DigitalProduct struct {
	Product
	FileSize float64 // MB
	Link     string
}

func NewDigitalProduct(id, name string, price float64, fileSize float64, link string, opts ...Option) *DigitalProduct {
	return &DigitalProduct{
		Product:  *NewProduct(id, name, price, opts...),
		FileSize: fileSize,
		Link:     link,
	}
}

func (d *DigitalProduct) Info() Info {
	return Info{
		"product_id":   d.ID,
		"name":         d.Name,
		"price":        d.Price,
		"quantity":     d.Quantity,
		"file_size":    d.FileSize,
		"product_link": d.Link,
	}
}

// Dimensions in centimetres.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g", d.Length, d.Width, d.Height)
}

type PhysicalProduct struct {
	Product
	Weight       float64 // kg
	Dimensions   Dimensions
	ShippingCost float64
}

func NewPhysicalProduct(id, name string, price float64, weight float64, dims Dimensions, shippingCost float64, opts ...Option) *PhysicalProduct {
	return &PhysicalProduct{
		Product:      *NewProduct(id, name, price, opts...),
		Weight:       weight,
		Dimensions:   dims,
		ShippingCost: shippingCost,
	}
}

// ShippingCharge is charged once per cart line, whatever the quantity.
func (p *PhysicalProduct) ShippingCharge() float64 {
	return p.ShippingCost
}

func (p *PhysicalProduct) Info() Info {
	return Info{
		"product_id":    p.ID,
		"name":          p.Name,
		"price":         p.Price,
		"quantity":      p.Quantity,
		"weight":        p.Weight,
		"dimensions":    p.Dimensions,
		"shipping_cost": p.ShippingCost,
	}
}
