package analyticsevents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/myevents"
)

const (
	TopicName              = "analytics"
	productAddedToCartName = TopicName + ".product.added.to.cart"
)

type AnalyticsEventService interface {
	OnProductAddedToCart(c context.Context, topic string, event ProductAddedToCart) error
}

// DispatchEvent decodes a pushed envelope and hands the event to the matching handler of service
func DispatchEvent(c context.Context, reader io.Reader, service AnalyticsEventService) error {
	envelope, err := myevents.ParseEventEnvelope(reader)
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}

	switch envelope.EventTypeName {
	case productAddedToCartName:
		{
			event := ProductAddedToCart{}
			err := json.Unmarshal([]byte(envelope.EventPayload), &event)
			if err != nil {
				return myerrors.NewInvalidInputError(err)
			}
			return service.OnProductAddedToCart(c, envelope.Topic, event)
		}
	default:
		return myerrors.NewNotImplementedError(fmt.Errorf("unknown event type %s", envelope.EventTypeName))
	}
}

type ProductAddedToCart struct {
	EventUID  string
	Source    string
	ProductID string
	Name      string
	Brand     string
	Category  string
	Price     int
	Currency  string
	Quantity  int
}

func (e ProductAddedToCart) GetEventTypeName() string {
	return productAddedToCartName
}

func (e ProductAddedToCart) GetAggregateName() string {
	return e.ProductID
}
