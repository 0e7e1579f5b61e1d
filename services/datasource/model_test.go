package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	hoody = Product{
		ID:    "product_hoody",
		Title: "Hoody",
		Price: 8000,
		Variants: []Variant{
			{ID: "product_hoody_m", Title: "Hoody M", Price: 8000},
			{ID: "product_hoody_l", Title: "Hoody L", Price: 8500},
		},
	}
)

func TestTargetItemID(t *testing.T) {
	t.Run("Without variant", func(t *testing.T) {
		assert.Equal(t, "product_hoody", TargetItemID(hoody, nil))
	})

	t.Run("With variant", func(t *testing.T) {
		assert.Equal(t, "product_hoody_l", TargetItemID(hoody, &hoody.Variants[1]))
	})
}

func TestCart(t *testing.T) {
	cart := Cart{
		ID: "cart_1",
		Items: []CartItem{
			{ItemID: "1", ProductID: "product_hoody", Quantity: 2, Price: 8000},
			{ItemID: "2", ProductID: "product_tennis_balls", Quantity: 6, Price: 1000},
		},
	}

	t.Run("Total quantity", func(t *testing.T) {
		assert.Equal(t, 8, cart.TotalQuantity())
		assert.Equal(t, 0, Cart{}.TotalQuantity())
	})

	t.Run("Clone does not share items", func(t *testing.T) {
		clone := cart.Clone()
		clone.Items[0].Quantity = 10

		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("Find variant", func(t *testing.T) {
		v, found := hoody.FindVariant("product_hoody_m")
		assert.True(t, found)
		assert.Equal(t, "Hoody M", v.Title)

		_, found = hoody.FindVariant("product_hoody_xl")
		assert.False(t, found)
	})
}
