package datasource

import "context"

// Datasource is the capability set every commerce backend offers.
// Failures are returned as myerrors so that callers can classify them.
//
//go:generate mockgen -source=api.go -package datasource -destination datasource_mock.go Datasource VariantAdder
type Datasource interface {
	AddToCart(c context.Context, itemID string, quantity int, product Product) (Cart, error)
	UpdateCartItemQty(c context.Context, itemID string, quantity int) (Cart, error)
	FetchCart(c context.Context) (Cart, error)
}

// VariantAdder is implemented by backends that encode the variant selection in the add-to-cart
// request themselves. When a backend offers it, every add must go through it.
type VariantAdder interface {
	AddToCartWithVariant(c context.Context, productID string, quantity int, product Product, variant *Variant) (Cart, error)
}
