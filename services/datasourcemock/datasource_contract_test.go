package datasourcemock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/mystore"
	"github.com/MarcGrol/cartsync/lib/myuuid"
	"github.com/MarcGrol/cartsync/services/datasource"
)

var (
	hoody = datasource.Product{
		ID:       "product_hoody",
		Title:    "Hoody",
		Price:    8000,
		Currency: "EUR",
		Variants: []datasource.Variant{
			{ID: "hoody_m", Title: "M", Price: 8000},
			{ID: "hoody_xl", Title: "XL", Price: 9000},
		},
	}
	balls = datasource.Product{
		ID:       "product_tennis_balls",
		Title:    "Tennis balls",
		Price:    1000,
		Currency: "EUR",
	}
)

func TestInMemoryDatasource(t *testing.T) {
	DatasourceContract{
		datasource: func() datasource.Datasource {
			store, _, _ := mystore.NewInMemoryStore[datasource.Cart](context.Background())
			return New("current", store, myuuid.RealUUIDer{})
		},
	}.Test(t)
}

type DatasourceContract struct {
	datasource func() datasource.Datasource
}

func (c DatasourceContract) Test(t *testing.T) {
	t.Run("starts with an empty cart", func(t *testing.T) {
		var (
			sut = c.datasource()
			ctx = context.Background()
		)

		cart, err := sut.FetchCart(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "current", cart.ID)
		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.SubTotal)
	})

	t.Run("can add products and fetch the cart", func(t *testing.T) {
		var (
			sut = c.datasource()
			ctx = context.Background()
		)

		_, err := sut.AddToCart(ctx, balls.ID, 3, balls)
		assert.NoError(t, err)
		_, err = sut.AddToCart(ctx, "hoody_xl", 1, hoody)
		assert.NoError(t, err)

		cart, err := sut.FetchCart(ctx)
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, 4, cart.TotalQuantity())
		assert.Equal(t, 3*1000+9000, cart.SubTotal)
		assert.Equal(t, "EUR", cart.Currency)

		assert.Equal(t, balls.ID, cart.Items[0].ProductID)
		assert.Empty(t, cart.Items[0].VariantID)
		assert.Equal(t, hoody.ID, cart.Items[1].ProductID)
		assert.Equal(t, "hoody_xl", cart.Items[1].VariantID)
		assert.Equal(t, "Hoody (XL)", cart.Items[1].Title)
		assert.NotEqual(t, cart.Items[0].ItemID, cart.Items[1].ItemID)
	})

	t.Run("merges adds of the same target", func(t *testing.T) {
		var (
			sut = c.datasource()
			ctx = context.Background()
		)

		_, err := sut.AddToCart(ctx, "hoody_m", 1, hoody)
		assert.NoError(t, err)
		_, err = sut.AddToCart(ctx, "hoody_m", 2, hoody)
		assert.NoError(t, err)
		_, err = sut.AddToCart(ctx, "hoody_xl", 1, hoody)
		assert.NoError(t, err)

		cart, err := sut.FetchCart(ctx)
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, 1, cart.Items[1].Quantity)
	})

	t.Run("can update and remove a line", func(t *testing.T) {
		var (
			sut = c.datasource()
			ctx = context.Background()
		)

		cart, err := sut.AddToCart(ctx, balls.ID, 3, balls)
		assert.NoError(t, err)
		itemID := cart.Items[0].ItemID

		cart, err = sut.UpdateCartItemQty(ctx, itemID, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.Equal(t, 5000, cart.SubTotal)

		cart, err = sut.UpdateCartItemQty(ctx, itemID, 0)
		assert.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.SubTotal)

		fetched, err := sut.FetchCart(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cart, fetched)
	})

	t.Run("can recognize when a line does not exist", func(t *testing.T) {
		var (
			sut = c.datasource()
			ctx = context.Background()
		)

		_, err := sut.UpdateCartItemQty(ctx, "123", 1)
		assert.Error(t, err)
		assert.Equal(t, 404, myerrors.GetHTTPStatus(err))
	})

	t.Run("rejects non positive add", func(t *testing.T) {
		var (
			sut = c.datasource()
			ctx = context.Background()
		)

		_, err := sut.AddToCart(ctx, balls.ID, 0, balls)
		assert.Error(t, err)
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))

		cart, err := sut.FetchCart(ctx)
		assert.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("returned carts are snapshots", func(t *testing.T) {
		var (
			sut = c.datasource()
			ctx = context.Background()
		)

		cart, err := sut.AddToCart(ctx, balls.ID, 3, balls)
		assert.NoError(t, err)
		cart.Items[0].Quantity = 100

		fetched, err := sut.FetchCart(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, fetched.Items[0].Quantity)
	})
}
