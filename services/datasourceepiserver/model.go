package datasourceepiserver

import "github.com/MarcGrol/cartsync/services/datasource"

type lineItemRequest struct {
	Code        string `json:"code"`
	ProductCode string `json:"productCode"`
	Quantity    int    `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type money struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type lineItem struct {
	LineItemID  string `json:"lineItemId"`
	Code        string `json:"code"`
	ProductCode string `json:"productCode"`
	DisplayName string `json:"displayName"`
	Quantity    int    `json:"quantity"`
	PlacedPrice money  `json:"placedPrice"`
}

type episerverCart struct {
	CartID    string     `json:"cartId"`
	LineItems []lineItem `json:"lineItems"`
	SubTotal  money      `json:"subTotal"`
}

func (c episerverCart) toCart() datasource.Cart {
	cart := datasource.Cart{
		ID:       c.CartID,
		Items:    make([]datasource.CartItem, 0, len(c.LineItems)),
		SubTotal: c.SubTotal.Amount,
		Currency: c.SubTotal.Currency,
	}
	for _, li := range c.LineItems {
		item := datasource.CartItem{
			ItemID:    li.LineItemID,
			ProductID: li.ProductCode,
			Title:     li.DisplayName,
			Quantity:  li.Quantity,
			Price:     li.PlacedPrice.Amount,
		}
		// A line for a variant carries the variant code next to the code of its product
		if li.Code != li.ProductCode {
			item.VariantID = li.Code
		}
		cart.Items = append(cart.Items, item)
	}
	return cart
}
