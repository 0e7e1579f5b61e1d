package warmup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/cartsync/lib/mycontext"
	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/myhttp"
	"github.com/MarcGrol/cartsync/lib/mylog"
	"github.com/MarcGrol/cartsync/services/datasource"
)

type CartLoader interface {
	LoadCart(c context.Context) *datasource.Cart
}

type webService struct {
	logger mylog.Logger
	loader CartLoader
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(loader CartLoader) *webService {
	return &webService{
		logger: mylog.New("warmup"),
		loader: loader,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage primes the local cart state before the first user request arrives
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		cart := s.loader.LoadCart(c)
		if cart == nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(fmt.Errorf("error loading cart")))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Successfully processed warmup request: cart %s holds %d items", cart.ID, cart.TotalQuantity()),
		})
	}
}
