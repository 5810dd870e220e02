package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm-service/internal/client"
	"crm-service/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var _ jobs.API = (*client.Client)(nil)

func TestClient_Orders_SendsDateFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		gotQuery = r.URL.Query().Get("order_date_gte")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orders":[{"id":"o1","totalAmount":"15.50","customer":{"email":"a@example.com"}}]}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL+"/", time.Second, "", zap.NewNop())
	since := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

	orders, err := c.Orders(context.Background(), &since)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-08", gotQuery)
	require.Len(t, orders, 1)
	assert.Equal(t, "15.50", orders[0].TotalAmount)
	assert.Equal(t, "a@example.com", orders[0].Customer.Email)
}

func TestClient_Restock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"products":[{"name":"Mouse","stock":13}],"message":"Restocked 1 low-stock products","success":true}`))
	}))
	defer srv.Close()

	res, err := client.New(srv.URL, time.Second, "", zap.NewNop()).RestockLowStock(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.Products, 1)
	assert.Equal(t, 13, res.Products[0].Stock)
}

func TestClient_PingFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":"unavailable","message":"service unavailable"}`))
	}))
	defer srv.Close()

	err := client.New(srv.URL, time.Second, "", zap.NewNop()).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
