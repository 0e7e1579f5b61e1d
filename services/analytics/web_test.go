package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/cartsync/lib/myevents"
	"github.com/MarcGrol/cartsync/lib/mystore"
	"github.com/MarcGrol/cartsync/services/analytics/analyticsevents"
)

var addedEvent = analyticsevents.ProductAddedToCart{
	EventUID:  "uid_1",
	Source:    SourceProductDetail,
	ProductID: "product_hoody",
	Name:      "Hoody",
	Price:     8000,
	Currency:  "EUR",
	Quantity:  2,
}

func TestEventService(t *testing.T) {

	t.Run("Receive pushed event", func(t *testing.T) {
		// setup
		router, eventStore := setupEventService(t)

		// when
		response := push(t, router, addedEvent.GetEventTypeName(), addedEvent)

		// then
		assert.Equal(t, 200, response.Code)
		stored, found, err := eventStore.Get(context.TODO(), "uid_1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, addedEvent, stored)
	})

	t.Run("Redelivered event is kept once", func(t *testing.T) {
		// setup
		router, _ := setupEventService(t)

		// given
		push(t, router, addedEvent.GetEventTypeName(), addedEvent)
		push(t, router, addedEvent.GetEventTypeName(), addedEvent)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/analytics/events", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		events := []analyticsevents.ProductAddedToCart{}
		err = json.Unmarshal(response.Body.Bytes(), &events)
		assert.NoError(t, err)
		assert.Equal(t, []analyticsevents.ProductAddedToCart{addedEvent}, events)
	})

	t.Run("Unknown event type", func(t *testing.T) {
		// setup
		router, _ := setupEventService(t)

		// when
		response := push(t, router, "analytics.unknown", addedEvent)

		// then
		assert.Equal(t, 501, response.Code)
	})

	t.Run("Event without uid", func(t *testing.T) {
		// setup
		router, _ := setupEventService(t)

		// when
		response := push(t, router, addedEvent.GetEventTypeName(), analyticsevents.ProductAddedToCart{ProductID: "product_hoody"})

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Malformed push request", func(t *testing.T) {
		// setup
		router, _ := setupEventService(t)

		// when
		request, err := http.NewRequest(http.MethodPost, "/api/analytics/push", strings.NewReader("{"))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})
}

func push(t *testing.T, router *mux.Router, eventTypeName string, event analyticsevents.ProductAddedToCart) *httptest.ResponseRecorder {
	payload, err := json.Marshal(event)
	assert.NoError(t, err)
	envelopeBytes, err := json.Marshal(myevents.EventEnvelope{
		UID:           "envelope_1",
		Topic:         analyticsevents.TopicName,
		AggregateUID:  event.ProductID,
		EventTypeName: eventTypeName,
		EventPayload:  string(payload),
	})
	assert.NoError(t, err)
	body, err := json.Marshal(myevents.PushRequest{
		Message:      myevents.PushMessage{Data: envelopeBytes},
		Subscription: "analytics-push",
	})
	assert.NoError(t, err)

	request, err := http.NewRequest(http.MethodPost, "/api/analytics/push", strings.NewReader(string(body)))
	assert.NoError(t, err)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	return response
}

func setupEventService(t *testing.T) (*mux.Router, *mystore.InMemoryStore[analyticsevents.ProductAddedToCart]) {
	eventStore, _, err := mystore.NewInMemoryStore[analyticsevents.ProductAddedToCart](context.TODO())
	assert.NoError(t, err)

	router := mux.NewRouter()
	NewEventService(eventStore).RegisterEndpoints(context.TODO(), router)

	return router, eventStore
}
