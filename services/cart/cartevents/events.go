package cartevents

import (
	"github.com/MarcGrol/cartsync/services/datasource"
)

const (
	TopicName             = "cart"
	cartUpdatingName      = TopicName + ".updating"
	cartUpdatedName       = TopicName + ".updated"
	cartUpdatingResetName = TopicName + ".updating.reset"
)

// CartUpdating marks the start of a mutating backend call
type CartUpdating struct {
	Verb string
}

func (e CartUpdating) GetEventTypeName() string {
	return cartUpdatingName
}

func (e CartUpdating) GetAggregateName() string {
	return TopicName
}

// CartUpdated carries the snapshot that replaces the local cart
type CartUpdated struct {
	CartData datasource.Cart
}

func (e CartUpdated) GetEventTypeName() string {
	return cartUpdatedName
}

func (e CartUpdated) GetAggregateName() string {
	return e.CartData.ID
}

// CartUpdatingReset ends a failed backend call without touching the cart
type CartUpdatingReset struct{}

func (e CartUpdatingReset) GetEventTypeName() string {
	return cartUpdatingResetName
}

func (e CartUpdatingReset) GetAggregateName() string {
	return TopicName
}
