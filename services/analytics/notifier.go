package analytics

import (
	"context"
	"fmt"

	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/lib/mypublisher"
	"github.com/MarcGrol/cartsync/lib/myuuid"
	"github.com/MarcGrol/cartsync/services/analytics/analyticsevents"
	"github.com/MarcGrol/cartsync/services/datasource"
)

type publishingNotifier struct {
	publisher mypublisher.Publisher
	uuider    myuuid.UUIDer
	logger    mylog.Logger
}

func NewNotifier(pub mypublisher.Publisher, uuider myuuid.UUIDer, logger mylog.Logger) *publishingNotifier {
	return &publishingNotifier{
		publisher: pub,
		uuider:    uuider,
		logger:    logger,
	}
}

func (n *publishingNotifier) CreateTopics(c context.Context) error {
	err := n.publisher.CreateTopic(c, analyticsevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %w", analyticsevents.TopicName, err)
	}
	return nil
}

func (n *publishingNotifier) RecordAddToCart(c context.Context, source string, product datasource.Product, quantity int) error {
	event := analyticsevents.ProductAddedToCart{
		// Every add is a distinct occurrence, also when the payload is the same
		EventUID:  n.uuider.Create(),
		Source:    source,
		ProductID: product.ID,
		Name:      product.Title,
		Brand:     product.Brand,
		Category:  product.Category,
		Price:     product.Price,
		Currency:  product.Currency,
		Quantity:  quantity,
	}

	err := n.publisher.Publish(c, analyticsevents.TopicName, event)
	if err != nil {
		n.logger.Log(c, product.ID, mylog.SeverityError, "Error publishing %s for %s: %s", event.GetEventTypeName(), product.ID, err)
		return fmt.Errorf("error publishing add-to-cart of %s: %w", product.ID, err)
	}

	n.logger.Log(c, product.ID, mylog.SeverityInfo, "Recorded add-to-cart of %d x %s from %s", quantity, product.ID, source)

	return nil
}
