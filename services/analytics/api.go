package analytics

import (
	"context"

	"github.com/MarcGrol/cartsync/services/datasource"
)

const SourceProductDetail = "ProductDetail"

//go:generate mockgen -source=api.go -package analytics -destination notifier_mock.go Notifier
type Notifier interface {
	RecordAddToCart(c context.Context, source string, product datasource.Product, quantity int) error
}
