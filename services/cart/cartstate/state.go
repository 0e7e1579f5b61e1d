package cartstate

import (
	"github.com/MarcGrol/cartsync/lib/myevents"
	"github.com/MarcGrol/cartsync/services/cart/cartevents"
	"github.com/MarcGrol/cartsync/services/datasource"
)

type State struct {
	IsLoading bool             `json:"isLoading"`
	CartData  *datasource.Cart `json:"cartData,omitempty"`
	Verb      string           `json:"verb"`
	CartCount int              `json:"cartCount"`
}

func InitialState() State {
	return State{}
}

// Reduce computes the state that follows from applying event to state.
// Events it does not know leave the state as is.
func Reduce(state State, event myevents.Event) State {
	switch e := event.(type) {
	case cartevents.CartUpdating:
		state.IsLoading = true
		state.Verb = e.Verb
	case cartevents.CartUpdated:
		cart := e.CartData.Clone()
		state.IsLoading = false
		state.CartData = &cart
		state.CartCount = cart.TotalQuantity()
	case cartevents.CartUpdatingReset:
		state.IsLoading = false
	}
	return state
}
