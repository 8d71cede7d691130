package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount int
		expected float64
	}{
		{"no discount", 100, 0, 100},
		{"quarter off", 100, 25, 75},
		{"full discount", 100, 100, 0},
		{"uneven price", 59.99, 10, 53.991},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &Product{Price: tt.price, Discount: tt.discount}
			assert.InDelta(t, tt.expected, product.DiscountedPrice(), 1e-9)
		})
	}
}

func TestCartEntry_LineTotal(t *testing.T) {
	entry := &CartEntry{
		Product:  Product{Price: 100, Discount: 25},
		Quantity: 3,
	}

	assert.InDelta(t, 225.0, entry.LineTotal(), 1e-9)
}

func TestCartTotal(t *testing.T) {
	entries := []*CartEntry{
		{Product: Product{Price: 100, Discount: 25}, Quantity: 2}, // 150
		{Product: Product{Price: 10, Discount: 0}, Quantity: 1},   // 10
	}

	assert.InDelta(t, 160.0, CartTotal(entries), 1e-9)
	assert.Zero(t, CartTotal(nil))
}
