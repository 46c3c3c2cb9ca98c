package api_test

import (
	"context"
	"testing"

	"storefront/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Storefront API", doc.Info.Title)

	for _, path := range []string{
		"/",
		"/api/menu",
		"/api/orders",
		"/api/orders/{id}/status",
		"/api/config/high-demand",
		"/metrics",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	orders := doc.Paths.Find("/api/orders")
	require.NotNil(t, orders)
	assert.Equal(t, "CreateOrder", orders.Post.OperationID)
	assert.Equal(t, "ListOrders", orders.Get.OperationID)
	assert.NotNil(t, orders.Post.Responses.Status(201))
}

func TestLoad_StatusEnum(t *testing.T) {
	doc, err := api.Load(context.Background())
	require.NoError(t, err)

	status := doc.Components.Schemas["Status"]
	require.NotNil(t, status)
	assert.Equal(t,
		[]any{"pending", "cooking", "ready", "delivering", "completed", "cancelled"},
		status.Value.Enum,
	)
}

func TestDocument(t *testing.T) {
	assert.Contains(t, string(api.Document()), "openapi: 3.0.3")
}
