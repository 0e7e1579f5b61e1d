package datasourcemock

import (
	"context"
	"fmt"

	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/lib/mystore"
	"github.com/MarcGrol/cartsync/lib/myuuid"
	"github.com/MarcGrol/cartsync/services/datasource"
)

// mockDatasource is a self-contained commerce backend that keeps a single cart in a store.
// It is used during development and as reference behaviour for the remote backends.
type mockDatasource struct {
	cartUID   string
	cartStore mystore.Store[datasource.Cart]
	uuider    myuuid.UUIDer
	logger    mylog.Logger
}

func New(cartUID string, cartStore mystore.Store[datasource.Cart], uuider myuuid.UUIDer) *mockDatasource {
	return &mockDatasource{
		cartUID:   cartUID,
		cartStore: cartStore,
		uuider:    uuider,
		logger:    mylog.New("datasourcemock"),
	}
}

func (d *mockDatasource) AddToCart(c context.Context, itemID string, quantity int, product datasource.Product) (datasource.Cart, error) {
	if itemID == "" {
		return datasource.Cart{}, myerrors.NewInvalidInputErrorf("missing item id")
	}
	if quantity <= 0 {
		return datasource.Cart{}, myerrors.NewInvalidInputErrorf("invalid quantity %d for %s", quantity, itemID)
	}

	var cart datasource.Cart
	err := d.cartStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		cart, err = d.getCart(c)
		if err != nil {
			return err
		}

		idx := findLineByTarget(cart, product.ID, itemID)
		if idx >= 0 {
			cart.Items[idx].Quantity += quantity
		} else {
			cart.Items = append(cart.Items, d.newLine(itemID, quantity, product))
		}
		if cart.Currency == "" {
			cart.Currency = product.Currency
		}

		cart.SubTotal = subTotal(cart)

		return d.putCart(c, cart)
	})
	if err != nil {
		return datasource.Cart{}, err
	}

	d.logger.Log(c, d.cartUID, mylog.SeverityInfo, "Added %d x %s to cart", quantity, itemID)

	return cart, nil
}

func (d *mockDatasource) UpdateCartItemQty(c context.Context, itemID string, quantity int) (datasource.Cart, error) {
	if quantity < 0 {
		return datasource.Cart{}, myerrors.NewInvalidInputErrorf("invalid quantity %d for %s", quantity, itemID)
	}

	var cart datasource.Cart
	err := d.cartStore.RunInTransaction(c, func(c context.Context) error {
		var err error
		cart, err = d.getCart(c)
		if err != nil {
			return err
		}

		idx := findLineByItemID(cart, itemID)
		if idx < 0 {
			return myerrors.NewNotFoundError(fmt.Errorf("cart item %s not found", itemID))
		}

		if quantity == 0 {
			cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
		} else {
			cart.Items[idx].Quantity = quantity
		}

		cart.SubTotal = subTotal(cart)

		return d.putCart(c, cart)
	})
	if err != nil {
		return datasource.Cart{}, err
	}

	d.logger.Log(c, d.cartUID, mylog.SeverityInfo, "Updated quantity of %s to %d", itemID, quantity)

	return cart, nil
}

func (d *mockDatasource) FetchCart(c context.Context) (datasource.Cart, error) {
	return d.getCart(c)
}

func (d *mockDatasource) getCart(c context.Context) (datasource.Cart, error) {
	cart, exists, err := d.cartStore.Get(c, d.cartUID)
	if err != nil {
		return datasource.Cart{}, myerrors.NewInternalError(fmt.Errorf("error fetching cart %s: %s", d.cartUID, err))
	}
	if !exists {
		return datasource.Cart{ID: d.cartUID, Items: []datasource.CartItem{}}, nil
	}
	// Stored lines must not be modified in place
	return cart.Clone(), nil
}

func (d *mockDatasource) putCart(c context.Context, cart datasource.Cart) error {
	err := d.cartStore.Put(c, d.cartUID, cart.Clone())
	if err != nil {
		return myerrors.NewInternalError(fmt.Errorf("error storing cart %s: %s", d.cartUID, err))
	}
	return nil
}

func (d *mockDatasource) newLine(itemID string, quantity int, product datasource.Product) datasource.CartItem {
	line := datasource.CartItem{
		ItemID:    d.uuider.Create(),
		ProductID: product.ID,
		Title:     product.Title,
		Quantity:  quantity,
		Price:     product.Price,
	}
	if itemID != product.ID {
		line.VariantID = itemID
		if variant, found := product.FindVariant(itemID); found {
			line.Title = fmt.Sprintf("%s (%s)", product.Title, variant.Title)
			line.Price = variant.Price
		}
	}
	return line
}

// the target of a line is its variant when it has one
func findLineByTarget(cart datasource.Cart, productID string, targetID string) int {
	for idx, item := range cart.Items {
		if item.VariantID != "" {
			if item.VariantID == targetID {
				return idx
			}
		} else if item.ProductID == productID && productID == targetID {
			return idx
		}
	}
	return -1
}

func findLineByItemID(cart datasource.Cart, itemID string) int {
	for idx, item := range cart.Items {
		if item.ItemID == itemID {
			return idx
		}
	}
	return -1
}

func subTotal(cart datasource.Cart) int {
	total := 0
	for _, item := range cart.Items {
		total += item.TotalPrice()
	}
	return total
}
