package mystore

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type LineItem struct {
	UID      string
	Quantity int
	Removed  bool
}

var (
	lineItem = LineItem{UID: "123", Quantity: 2}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	ps, cleanup, err := NewInMemoryStore[LineItem](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, lineItem.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = ps.Put(c, lineItem.UID, lineItem)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, lineItem.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, LineItem{UID: "123", Quantity: 2}, p)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []LineItem{lineItem}, all)
	})

	t.Run("Query", func(t *testing.T) {
		err = ps.Put(c, "456", LineItem{UID: "456", Quantity: 1, Removed: true})
		assert.NoError(t, err)

		found, err := ps.Query(c, []Filter{{Field: "Removed", Compare: "=", Value: false}}, "UID")
		assert.NoError(t, err)
		assert.Equal(t, []LineItem{lineItem}, found)
	})

	t.Run("Query unsupported comparison", func(t *testing.T) {
		_, err := ps.Query(c, []Filter{{Field: "Quantity", Compare: ">", Value: 1}}, "UID")
		assert.Error(t, err)
	})
}

func TestTransaction(t *testing.T) {
	c := context.TODO()
	ps, _, _ := NewInMemoryStore[LineItem](c)

	t.Run("Commit", func(t *testing.T) {
		err := ps.RunInTransaction(c, func(c context.Context) error {
			return ps.Put(c, "1", LineItem{UID: "1", Quantity: 1})
		})
		assert.NoError(t, err)

		_, found, _ := ps.Get(c, "1")
		assert.True(t, found)
	})

	t.Run("Rollback", func(t *testing.T) {
		err := ps.RunInTransaction(c, func(c context.Context) error {
			err := ps.Put(c, "2", LineItem{UID: "2", Quantity: 1})
			if err != nil {
				return err
			}
			return fmt.Errorf("abort")
		})
		assert.Error(t, err)

		_, found, _ := ps.Get(c, "2")
		assert.False(t, found)
	})
}
