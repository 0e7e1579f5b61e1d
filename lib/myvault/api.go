package myvault

import (
	"context"

	"github.com/MarcGrol/cartsync/lib/mystore"
)

const (
	// CurrentToken is the uid under which the active commerce api token is kept
	CurrentToken = "currentToken"
)

type Token struct {
	ProviderName string
	AccessToken  string `datastore:",noindex"`
}

type VaultReader[T any] interface {
	Get(c context.Context, uid string) (T, bool, error)
}

type VaultReadWriter[T any] interface {
	Get(c context.Context, uid string) (T, bool, error)
	Put(c context.Context, uid string, value T) error
}

func New[T any](c context.Context) (VaultReadWriter[T], func(), error) {
	return mystore.New[T](c)
}
