package myhttp

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/cartsync/lib/myerrors"
	"github.com/MarcGrol/cartsync/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	writer := NewWriter(mylog.New("test"))

	t.Run("Error", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(context.TODO(), response, 2, myerrors.NewInvalidInputError(fmt.Errorf("missing quantity")))

		assert.Equal(t, 400, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.Contains(t, response.Body.String(), `"ErrorCode": 2`)
		assert.Contains(t, response.Body.String(), `"Message": "status: 400, err: missing quantity"`)
	})

	t.Run("Success", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.Write(context.TODO(), response, 202, SuccessResponse{Message: "ok"})

		assert.Equal(t, 202, response.Code)
		assert.Contains(t, response.Body.String(), `"Message": "ok"`)
	})
}
