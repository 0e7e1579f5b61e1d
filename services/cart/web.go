package cart

import (
	"context"
	"fmt"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/cartsync/lib/mycontext"
	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/myhttp"
	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/services/cart/cartstate"
	"github.com/MarcGrol/cartsync/services/datasource"
)

type addToCartForm struct {
	Product  productForm  `form:"product"`
	Variant  *variantForm `form:"variant"`
	Quantity int          `form:"quantity"`
}

type productForm struct {
	ID       string `form:"id"`
	Title    string `form:"title"`
	Brand    string `form:"brand"`
	Category string `form:"category"`
	Price    int    `form:"price"`
	Currency string `form:"currency"`
}

type variantForm struct {
	ID    string `form:"id"`
	Title string `form:"title"`
	Price int    `form:"price"`
}

type updateQuantityForm struct {
	Quantity *int `form:"quantity"`
}

type webService struct {
	logger       mylog.Logger
	store        *cartstate.Store
	synchronizer *Synchronizer
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(synchronizer *Synchronizer, store *cartstate.Store) *webService {
	return &webService{
		logger:       mylog.New("cart"),
		store:        store,
		synchronizer: synchronizer,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/cart", s.getCart()).Methods("GET")
	router.HandleFunc("/api/cart/items", s.addToCart()).Methods("POST")
	router.HandleFunc("/api/cart/items/{itemID}", s.updateItemQuantity()).Methods("PUT")
}

func (s *webService) getCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.store.GetState())
	}
}

func (s *webService) addToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		product, quantity, variant, err := parseAddToCartRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		// A failed add is reflected in the state only
		s.synchronizer.AddToCart(c, product, quantity, variant)

		responseWriter.Write(c, w, http.StatusOK, s.store.GetState())
	}
}

func (s *webService) updateItemQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		itemID := mux.Vars(r)["itemID"]

		quantity, err := parseUpdateQuantityRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		s.synchronizer.UpdateItemQuantity(c, s.lookupItem(itemID), quantity)

		responseWriter.Write(c, w, http.StatusAccepted, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Quantity of item %s is being updated to %d", itemID, quantity),
		})
	}
}

func (s *webService) lookupItem(itemID string) datasource.CartItem {
	state := s.store.GetState()
	if state.CartData != nil {
		for _, item := range state.CartData.Items {
			if item.ItemID == itemID {
				return item
			}
		}
	}
	return datasource.CartItem{ItemID: itemID}
}

func parseAddToCartRequest(r *http.Request) (datasource.Product, int, *datasource.Variant, error) {
	err := r.ParseForm()
	if err != nil {
		return datasource.Product{}, 0, nil, myerrors.NewInvalidInputError(err)
	}

	form := addToCartForm{}
	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return datasource.Product{}, 0, nil, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	if form.Product.ID == "" {
		return datasource.Product{}, 0, nil, myerrors.NewInvalidInputErrorf("missing product.id")
	}
	if form.Quantity <= 0 {
		return datasource.Product{}, 0, nil, myerrors.NewInvalidInputErrorf("invalid quantity %d", form.Quantity)
	}

	product := datasource.Product{
		ID:       form.Product.ID,
		Title:    form.Product.Title,
		Brand:    form.Product.Brand,
		Category: form.Product.Category,
		Price:    form.Product.Price,
		Currency: form.Product.Currency,
	}

	var variant *datasource.Variant
	if form.Variant != nil && form.Variant.ID != "" {
		variant = &datasource.Variant{
			ID:    form.Variant.ID,
			Title: form.Variant.Title,
			Price: form.Variant.Price,
		}
	}

	return product, form.Quantity, variant, nil
}

func parseUpdateQuantityRequest(r *http.Request) (int, error) {
	err := r.ParseForm()
	if err != nil {
		return 0, myerrors.NewInvalidInputError(err)
	}

	form := updateQuantityForm{}
	err = formcodec.NewDecoder().Decode(&form, r.Form)
	if err != nil {
		return 0, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}

	if form.Quantity == nil {
		return 0, myerrors.NewInvalidInputErrorf("missing quantity")
	}
	if *form.Quantity < 0 {
		return 0, myerrors.NewInvalidInputErrorf("invalid quantity %d", *form.Quantity)
	}

	return *form.Quantity, nil
}
