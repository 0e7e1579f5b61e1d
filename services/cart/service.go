package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/myevents"
	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/services/analytics"
	"github.com/MarcGrol/cartsync/services/cart/cartevents"
	"github.com/MarcGrol/cartsync/services/datasource"
)

const (
	VerbUpdating = "Updating"
	VerbLoading  = "Loading"
)

// Dispatcher applies state transitions. *cartstate.Store is the production implementation.
type Dispatcher interface {
	Dispatch(c context.Context, event myevents.Event)
}

// Synchronizer keeps the local cart state in line with the commerce backend.
// There are no optimistic updates: the state is marked as updating, the backend is called and
// the state is then either replaced by the snapshot of the backend or reverted.
type Synchronizer struct {
	datasource datasource.Datasource
	dispatcher Dispatcher
	notifier   analytics.Notifier
	logger     mylog.Logger
	wg         sync.WaitGroup
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewSynchronizer(ds datasource.Datasource, dispatcher Dispatcher, notifier analytics.Notifier, logger mylog.Logger) *Synchronizer {
	return &Synchronizer{
		datasource: ds,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// AddToCart adds quantity of product (or of the selected variant) and returns the cart as fetched
// afterwards. It returns nil when the backend failed; the state is reverted in that case.
func (s *Synchronizer) AddToCart(c context.Context, product datasource.Product, quantity int, variant *datasource.Variant) *datasource.Cart {
	// Once started, an add runs to completion so that local state can follow the backend
	c = context.WithoutCancel(c)

	s.dispatcher.Dispatch(c, cartevents.CartUpdating{Verb: VerbUpdating})

	cart, err := s.addAndFetch(c, product, quantity, variant)
	if err != nil {
		s.dispatcher.Dispatch(c, cartevents.CartUpdatingReset{})
		s.logger.Log(c, product.ID, mylog.SeverityWarn, "Error adding %d x %s to cart: %s", quantity, product.ID, err)
		return nil
	}

	s.dispatcher.Dispatch(c, cartevents.CartUpdated{CartData: cart})

	return &cart
}

func (s *Synchronizer) addAndFetch(c context.Context, product datasource.Product, quantity int, variant *datasource.Variant) (datasource.Cart, error) {
	_, err := guard(func() (datasource.Cart, error) {
		if adder, ok := s.datasource.(datasource.VariantAdder); ok {
			return adder.AddToCartWithVariant(c, product.ID, quantity, product, variant)
		}
		return s.datasource.AddToCart(c, datasource.TargetItemID(product, variant), quantity, product)
	})
	if err != nil {
		return datasource.Cart{}, fmt.Errorf("error adding to cart: %w", err)
	}

	s.recordAddToCart(c, product, quantity)

	// Local state is always replaced by the fetched cart, never by the add-response
	cart, err := guard(func() (datasource.Cart, error) {
		return s.datasource.FetchCart(c)
	})
	if err != nil {
		return datasource.Cart{}, fmt.Errorf("error fetching cart: %w", err)
	}

	return cart, nil
}

func (s *Synchronizer) recordAddToCart(c context.Context, product datasource.Product, quantity int) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.logger.Log(c, product.ID, mylog.SeverityError, "Panic recording add-to-cart of %s: %v", product.ID, r)
			}
		}()

		err := s.notifier.RecordAddToCart(c, analytics.SourceProductDetail, product, quantity)
		if err != nil {
			s.logger.Log(c, product.ID, mylog.SeverityError, "Error recording add-to-cart of %s: %s", product.ID, err)
		}
	}()
}

// UpdateItemQuantity marks the cart as updating and returns immediately.
// The backend call and the resulting state transition happen in the background.
func (s *Synchronizer) UpdateItemQuantity(c context.Context, item datasource.CartItem, quantity int) {
	s.dispatcher.Dispatch(c, cartevents.CartUpdating{Verb: VerbUpdating})

	c = context.WithoutCancel(c)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		cart, err := guard(func() (datasource.Cart, error) {
			return s.datasource.UpdateCartItemQty(c, item.ItemID, quantity)
		})
		if err != nil {
			s.dispatcher.Dispatch(c, cartevents.CartUpdatingReset{})
			s.logger.Log(c, item.ItemID, mylog.SeverityWarn, "Error updating quantity of %s to %d: %s", item.ItemID, quantity, err)
			return
		}

		s.dispatcher.Dispatch(c, cartevents.CartUpdated{CartData: cart})
	}()
}

// LoadCart replaces the local state with the cart as currently known by the backend
func (s *Synchronizer) LoadCart(c context.Context) *datasource.Cart {
	s.dispatcher.Dispatch(c, cartevents.CartUpdating{Verb: VerbLoading})

	cart, err := guard(func() (datasource.Cart, error) {
		return s.datasource.FetchCart(c)
	})
	if err != nil {
		s.dispatcher.Dispatch(c, cartevents.CartUpdatingReset{})
		s.logger.Log(c, "", mylog.SeverityWarn, "Error loading cart: %s", err)
		return nil
	}

	s.dispatcher.Dispatch(c, cartevents.CartUpdated{CartData: cart})

	return &cart
}

// Wait blocks until all background work started so far has finished
func (s *Synchronizer) Wait() {
	s.wg.Wait()
}

func guard(call func() (datasource.Cart, error)) (cart datasource.Cart, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = myerrors.NewInternalError(fmt.Errorf("backend panicked: %v", r))
		}
	}()
	return call()
}
