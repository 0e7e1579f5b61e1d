package datasourcerest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/myhttpclient"
	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/lib/myvault"
	"github.com/MarcGrol/cartsync/services/datasource"
)

type addItemRequest struct {
	ItemID   string      `json:"itemId"`
	Quantity int         `json:"quantity"`
	Product  productInfo `json:"product"`
}

type productInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Currency string `json:"currency"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// restDatasource talks to a commerce backend that exposes its cart as JSON resources:
//
//	GET  {base}/carts/{cartUID}
//	POST {base}/carts/{cartUID}/items
//	PUT  {base}/carts/{cartUID}/items/{itemID}
type restDatasource struct {
	baseURL    string
	cartUID    string
	httpClient myhttpclient.HTTPSender
	vault      myvault.VaultReader[myvault.Token]
	logger     mylog.Logger
}

func New(baseURL string, cartUID string, httpClient myhttpclient.HTTPSender, vault myvault.VaultReader[myvault.Token]) *restDatasource {
	return &restDatasource{
		baseURL:    baseURL,
		cartUID:    cartUID,
		httpClient: httpClient,
		vault:      vault,
		logger:     mylog.New("datasourcerest"),
	}
}

func (d *restDatasource) AddToCart(c context.Context, itemID string, quantity int, product datasource.Product) (datasource.Cart, error) {
	req := addItemRequest{
		ItemID:   itemID,
		Quantity: quantity,
		Product: productInfo{
			ID:       product.ID,
			Title:    product.Title,
			Price:    product.Price,
			Currency: product.Currency,
		},
	}
	return d.send(c, http.MethodPost, d.cartURL()+"/items", req)
}

func (d *restDatasource) UpdateCartItemQty(c context.Context, itemID string, quantity int) (datasource.Cart, error) {
	return d.send(c, http.MethodPut, d.cartURL()+"/items/"+url.PathEscape(itemID), updateItemRequest{Quantity: quantity})
}

func (d *restDatasource) FetchCart(c context.Context) (datasource.Cart, error) {
	return d.send(c, http.MethodGet, d.cartURL(), nil)
}

func (d *restDatasource) cartURL() string {
	return fmt.Sprintf("%s/carts/%s", d.baseURL, url.PathEscape(d.cartUID))
}

func (d *restDatasource) send(c context.Context, method string, url string, request any) (datasource.Cart, error) {
	headers, err := authorizationHeaders(c, d.vault)
	if err != nil {
		return datasource.Cart{}, err
	}

	var body []byte
	if request != nil {
		body, err = json.Marshal(request)
		if err != nil {
			return datasource.Cart{}, myerrors.NewInternalError(fmt.Errorf("error marshalling request: %s", err))
		}
	}

	status, respBody, err := d.httpClient.Send(c, method, url, headers, body)
	if err != nil {
		return datasource.Cart{}, myerrors.NewUnavailableError(err)
	}
	if status < 200 || status >= 300 {
		d.logger.Log(c, d.cartUID, mylog.SeverityWarn, "%s %s returned %d: %s", method, url, status, respBody)
		return datasource.Cart{}, myerrors.NewFromHTTPStatus(status, fmt.Errorf("%s %s returned %d", method, url, status))
	}

	cart := datasource.Cart{}
	err = json.Unmarshal(respBody, &cart)
	if err != nil {
		return datasource.Cart{}, myerrors.NewUnavailableError(fmt.Errorf("error parsing cart response of %s %s: %s", method, url, err))
	}

	return cart, nil
}

func authorizationHeaders(c context.Context, vault myvault.VaultReader[myvault.Token]) (http.Header, error) {
	headers := http.Header{}

	token, exists, err := vault.Get(c, myvault.CurrentToken)
	if err != nil {
		return nil, myerrors.NewInternalError(fmt.Errorf("error fetching token from vault: %s", err))
	}
	if exists && token.AccessToken != "" {
		headers.Set("Authorization", "Bearer "+token.AccessToken)
	}

	return headers, nil
}
