package analytics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cartsync/lib/mycontext"
	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/myhttp"
	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/lib/mystore"
	"github.com/MarcGrol/cartsync/services/analytics/analyticsevents"
)

// eventService receives analytics events through a pubsub push-subscription and keeps them
type eventService struct {
	eventStore mystore.Store[analyticsevents.ProductAddedToCart]
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewEventService(eventStore mystore.Store[analyticsevents.ProductAddedToCart]) *eventService {
	return &eventService{
		eventStore: eventStore,
		logger:     mylog.New("analytics"),
	}
}

func (s *eventService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/analytics/push", s.handleEventEnvelope()).Methods("POST")
	router.HandleFunc("/api/analytics/events", s.listEvents()).Methods("GET")
}

func (s *eventService) handleEventEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		err := analyticsevents.DispatchEvent(c, r.Body, s)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed event",
		})
	}
}

func (s *eventService) listEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		events, err := s.eventStore.List(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, events)
	}
}

func (s *eventService) OnProductAddedToCart(c context.Context, topic string, event analyticsevents.ProductAddedToCart) error {
	if event.EventUID == "" {
		return myerrors.NewInvalidInputErrorf("event on topic %s has no uid", topic)
	}

	// Redelivery of the same event overwrites the earlier copy
	err := s.eventStore.Put(c, event.EventUID, event)
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing event %s: %s", event.EventUID, err))
	}

	s.logger.Log(c, event.ProductID, mylog.SeverityInfo, "Product %s added to cart %d times from %s", event.ProductID, event.Quantity, event.Source)

	return nil
}
