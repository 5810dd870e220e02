package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"crm-service/internal/dto"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Client — HTTP-клиент CRM API для одноразовых задач cmd/cron.
type Client struct {
	baseURL    string
	http       *http.Client
	healthAddr string
	log        *zap.Logger
}

// New: при непустом healthAddr Ping идёт через grpc.health.v1, иначе GET /health.
func New(baseURL string, timeout time.Duration, healthAddr string, log *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: timeout},
		healthAddr: healthAddr,
		log:        log,
	}
}

func (c *Client) Ping(ctx context.Context) error {
	if c.healthAddr != "" {
		return c.grpcHealth(ctx)
	}
	var res dto.HealthResponse
	return c.do(ctx, http.MethodGet, "/health", nil, &res)
}

func (c *Client) grpcHealth(ctx context.Context) error {
	conn, err := grpc.NewClient(c.healthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("grpc dial %s: %w", c.healthAddr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, c.http.Timeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return err
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("health status %s", resp.GetStatus())
	}
	return nil
}

func (c *Client) RestockLowStock(ctx context.Context) (dto.RestockPayload, error) {
	var res dto.RestockPayload
	err := c.do(ctx, http.MethodPost, "/api/v1/products/restock", nil, &res)
	return res, err
}

func (c *Client) Customers(ctx context.Context) ([]dto.CustomerResponse, error) {
	var res dto.CustomerList
	if err := c.do(ctx, http.MethodGet, "/api/v1/customers", nil, &res); err != nil {
		return nil, err
	}
	return res.Customers, nil
}

func (c *Client) Orders(ctx context.Context, since *time.Time) ([]dto.OrderResponse, error) {
	path := "/api/v1/orders"
	if since != nil {
		q := url.Values{}
		q.Set("order_date_gte", since.Format(time.DateOnly))
		path += "?" + q.Encode()
	}
	var res dto.OrderList
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.BaseError
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s %s: %d %s: %s", method, path, resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Warn("Не удалось разобрать ответ API", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
