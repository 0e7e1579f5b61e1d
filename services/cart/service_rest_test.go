package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/cartsync/lib/myhttpclient"
	"github.com/MarcGrol/cartsync/lib/mystore"
	"github.com/MarcGrol/cartsync/lib/myvault"
	"github.com/MarcGrol/cartsync/services/analytics"
	"github.com/MarcGrol/cartsync/services/datasource"
	"github.com/MarcGrol/cartsync/services/datasourcerest"
)

func TestAddToCartOverHTTP(t *testing.T) {
	t.Run("Slow add completes after caller gave up", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		committed := atomic.Bool{}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/carts/current/items":
				time.Sleep(200 * time.Millisecond)
				committed.Store(true)
				json.NewEncoder(w).Encode(addResponse)
			case r.Method == http.MethodGet && r.URL.Path == "/carts/current":
				json.NewEncoder(w).Encode(cartFetched)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		vault, _, err := mystore.NewInMemoryStore[myvault.Token](context.TODO())
		assert.NoError(t, err)
		notifier := analytics.NewMockNotifier(ctrl)
		store, recorder, sut := setup(datasourcerest.New(server.URL, "current", myhttpclient.New(), vault), notifier)

		// given
		notifier.EXPECT().RecordAddToCart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		ctx, cancel := context.WithTimeout(context.TODO(), 50*time.Millisecond)
		defer cancel()

		// when
		got := sut.AddToCart(ctx, datasource.Product{ID: "P1", Title: "Hoody", Price: 8000, Currency: "EUR"}, 2, nil)
		sut.Wait()

		// then
		assert.True(t, committed.Load())
		assert.NotNil(t, got)
		assert.Equal(t, []string{"cart.updating", "cart.updated"}, recorder.eventNames())
		assert.Equal(t, cartFetched, *store.GetState().CartData)
	})
}
