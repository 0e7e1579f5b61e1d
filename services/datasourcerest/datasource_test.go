package datasourcerest

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/myhttpclient"
	"github.com/MarcGrol/cartsync/lib/mystore"
	"github.com/MarcGrol/cartsync/lib/myvault"
	"github.com/MarcGrol/cartsync/services/datasource"
)

const cartJSON = `{
	"id": "current",
	"items": [
		{"itemId": "line_1", "productId": "product_hoody", "variantId": "hoody_xl", "title": "Hoody", "quantity": 2, "price": 9000}
	],
	"subTotal": 18000,
	"currency": "EUR"
}`

var (
	hoody = datasource.Product{ID: "product_hoody", Title: "Hoody", Price: 8000, Currency: "EUR"}

	expectedCart = datasource.Cart{
		ID: "current",
		Items: []datasource.CartItem{
			{ItemID: "line_1", ProductID: "product_hoody", VariantID: "hoody_xl", Title: "Hoody", Quantity: 2, Price: 9000},
		},
		SubTotal: 18000,
		Currency: "EUR",
	}
)

func TestRestDatasource(t *testing.T) {
	c := context.TODO()

	t.Run("Add to cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sender, sut := setup(t, ctrl, "secret")

		// given
		sender.EXPECT().Send(gomock.Any(), "POST", "https://commerce.example.com/carts/current/items", gomock.Any(), gomock.Any()).
			DoAndReturn(func(c context.Context, method string, url string, headers http.Header, body []byte) (int, []byte, error) {
				assert.Equal(t, "Bearer secret", headers.Get("Authorization"))
				assert.JSONEq(t, `{"itemId":"hoody_xl","quantity":2,"product":{"id":"product_hoody","title":"Hoody","price":8000,"currency":"EUR"}}`, string(body))
				return 200, []byte(cartJSON), nil
			})

		// when
		cart, err := sut.AddToCart(c, "hoody_xl", 2, hoody)

		// then
		assert.NoError(t, err)
		assert.Equal(t, expectedCart, cart)
	})

	t.Run("Update quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sender, sut := setup(t, ctrl, "secret")

		// given
		sender.EXPECT().Send(gomock.Any(), "PUT", "https://commerce.example.com/carts/current/items/line_1", gomock.Any(), []byte(`{"quantity":2}`)).
			Return(200, []byte(cartJSON), nil)

		// when
		cart, err := sut.UpdateCartItemQty(c, "line_1", 2)

		// then
		assert.NoError(t, err)
		assert.Equal(t, expectedCart, cart)
	})

	t.Run("Fetch cart without token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sender, sut := setup(t, ctrl, "")

		// given
		sender.EXPECT().Send(gomock.Any(), "GET", "https://commerce.example.com/carts/current", http.Header{}, gomock.Nil()).
			Return(200, []byte(cartJSON), nil)

		// when
		cart, err := sut.FetchCart(c)

		// then
		assert.NoError(t, err)
		assert.Equal(t, expectedCart, cart)
	})

	t.Run("Remote errors", func(t *testing.T) {
		testCases := []struct {
			name           string
			status         int
			sendErr        error
			body           string
			expectedStatus int
		}{
			{name: "rejected", status: 400, body: `{"error":"out of stock"}`, expectedStatus: 400},
			{name: "unknown item", status: 404, expectedStatus: 404},
			{name: "not authorized", status: 401, expectedStatus: 401},
			{name: "forbidden", status: 403, expectedStatus: 403},
			{name: "server error", status: 500, expectedStatus: 503},
			{name: "network error", sendErr: fmt.Errorf("connection refused"), expectedStatus: 503},
			{name: "garbage response", status: 200, body: `<html>`, expectedStatus: 503},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				// setup
				sender, sut := setup(t, ctrl, "secret")

				// given
				sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tc.status, []byte(tc.body), tc.sendErr)

				// when
				_, err := sut.UpdateCartItemQty(c, "line_1", 2)

				// then
				assert.Error(t, err)
				assert.Equal(t, tc.expectedStatus, myerrors.GetHTTPStatus(err))
			})
		}
	})
}

func setup(t *testing.T, ctrl *gomock.Controller, accessToken string) (*myhttpclient.MockHTTPSender, *restDatasource) {
	c := context.TODO()
	sender := myhttpclient.NewMockHTTPSender(ctrl)
	vault, _, err := mystore.NewInMemoryStore[myvault.Token](c)
	assert.NoError(t, err)
	if accessToken != "" {
		err = vault.Put(c, myvault.CurrentToken, myvault.Token{ProviderName: "rest", AccessToken: accessToken})
		assert.NoError(t, err)
	}

	return sender, New("https://commerce.example.com", "current", sender, vault)
}
