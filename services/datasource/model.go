package datasource

type Product struct {
	ID       string
	Title    string
	Brand    string
	Category string
	Price    int
	Currency string
	Variants []Variant
}

// Variant is a purchasable configuration of a product, such as a size or color
type Variant struct {
	ID    string
	Title string
	Price int
}

type CartItem struct {
	ItemID    string `json:"itemId"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

func (i CartItem) TotalPrice() int {
	return i.Price * i.Quantity
}

// Cart is a complete snapshot of the cart as returned by the backend
type Cart struct {
	ID       string     `json:"id"`
	Items    []CartItem `json:"items"`
	SubTotal int        `json:"subTotal"`
	Currency string     `json:"currency"`
}

func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c Cart) Clone() Cart {
	clone := c
	if c.Items != nil {
		clone.Items = make([]CartItem, len(c.Items))
		copy(clone.Items, c.Items)
	}
	return clone
}

// TargetItemID resolves what to add: the variant when one is selected, the product otherwise
func TargetItemID(product Product, variant *Variant) string {
	if variant != nil {
		return variant.ID
	}
	return product.ID
}

func (p Product) FindVariant(variantID string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return Variant{}, false
}
