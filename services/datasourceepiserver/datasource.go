package datasourceepiserver

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

const apiPath = "/api/episerver/v3/carts"

// episerverDatasource adds line items by product code plus variant code, so it implements
// datasource.VariantAdder next to the regular capabilities.
type episerverDatasource struct {
	baseURL    string
	cartUID    string
	httpClient myhttpclient.HTTPSender
	vault      myvault.VaultReader[myvault.Token]
	logger     mylog.Logger
}

func New(baseURL string, cartUID string, httpClient myhttpclient.HTTPSender, vault myvault.VaultReader[myvault.Token]) *episerverDatasource {
	return &episerverDatasource{
		baseURL:    baseURL,
		cartUID:    cartUID,
		httpClient: httpClient,
		vault:      vault,
		logger:     mylog.New("datasourceepiserver"),
	}
}

func (d *episerverDatasource) AddToCartWithVariant(c context.Context, productID string, quantity int, product datasource.Product, variant *datasource.Variant) (datasource.Cart, error) {
	code := productID
	if variant != nil {
		code = variant.ID
	}
	return d.addLineItem(c, lineItemRequest{
		Code:        code,
		ProductCode: productID,
		Quantity:    quantity,
	})
}

// AddToCart completes datasource.Datasource; synchronized adds use AddToCartWithVariant
func (d *episerverDatasource) AddToCart(c context.Context, itemID string, quantity int, product datasource.Product) (datasource.Cart, error) {
	return d.addLineItem(c, lineItemRequest{
		Code:        itemID,
		ProductCode: product.ID,
		Quantity:    quantity,
	})
}

func (d *episerverDatasource) addLineItem(c context.Context, req lineItemRequest) (datasource.Cart, error) {
	if req.Quantity <= 0 {
		return datasource.Cart{}, myerrors.NewInvalidInputErrorf("invalid quantity %d for %s", req.Quantity, req.Code)
	}
	return d.send(c, http.MethodPost, d.cartURL()+"/lineitems", req)
}

func (d *episerverDatasource) UpdateCartItemQty(c context.Context, itemID string, quantity int) (datasource.Cart, error) {
	lineItemURL := d.cartURL() + "/lineitems/" + url.PathEscape(itemID)
	if quantity == 0 {
		return d.send(c, http.MethodDelete, lineItemURL, nil)
	}
	return d.send(c, http.MethodPut, lineItemURL, quantityRequest{Quantity: quantity})
}

func (d *episerverDatasource) FetchCart(c context.Context) (datasource.Cart, error) {
	return d.send(c, http.MethodGet, d.cartURL(), nil)
}

func (d *episerverDatasource) cartURL() string {
	return fmt.Sprintf("%s%s/%s", d.baseURL, apiPath, url.PathEscape(d.cartUID))
}

func (d *episerverDatasource) send(c context.Context, method string, url string, request any) (datasource.Cart, error) {
	headers := http.Header{}
	token, exists, err := d.vault.Get(c, myvault.CurrentToken)
	if err != nil {
		return datasource.Cart{}, myerrors.NewInternalError(fmt.Errorf("error fetching token from vault: %s", err))
	}
	if !exists || token.AccessToken == "" {
		return datasource.Cart{}, myerrors.NewUnauthorizedError(fmt.Errorf("no episerver access token available"))
	}
	headers.Set("Authorization", "Bearer "+token.AccessToken)

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
		return datasource.Cart{}, myerrors.NewFromHTTPStatus(status, fmt.Errorf("episerver %s %s returned %d", method, url, status))
	}

	resp := episerverCart{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return datasource.Cart{}, myerrors.NewUnavailableError(fmt.Errorf("error parsing episerver cart: %s", err))
	}

	return resp.toCart(), nil
}
