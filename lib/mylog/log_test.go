package mylog

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWriterLogger("cart", buf)

	logger.Log(context.TODO(), "item_1", SeverityWarn, "Error updating %s: %s", "item_1", "timeout")

	assert.Equal(t, "cart - item_1 - WARN - Error updating item_1: timeout\n", buf.String())
}

func TestStructuredEntry(t *testing.T) {
	got := entry{
		Component: "cart",
		Labels:    map[string]string{"aggregate": "123"},
		Severity:  "INFO",
		Message:   "cart:hello",
	}.String()

	assert.Equal(t, `{"component":"cart","labels":{"aggregate":"123"},"severity":"INFO","message":"cart:hello"}`, got)
}
