package jobs

import (
	"context"
	"time"

	"crm-service/internal/dto"
	"crm-service/internal/repository"
	"crm-service/internal/service"
)

// API — операции, которые нужны задачам. Реализуется in-process (LocalAPI)
// и HTTP-клиентом (internal/client).
type API interface {
	Ping(ctx context.Context) error
	RestockLowStock(ctx context.Context) (dto.RestockPayload, error)
	Customers(ctx context.Context) ([]dto.CustomerResponse, error)
	// Orders возвращает заказы с order_date >= since; since == nil — все заказы.
	Orders(ctx context.Context, since *time.Time) ([]dto.OrderResponse, error)
}

type LocalAPI struct {
	query    service.QueryService
	mutation service.MutationService
}

func NewLocalAPI(query service.QueryService, mutation service.MutationService) *LocalAPI {
	return &LocalAPI{query: query, mutation: mutation}
}

func (a *LocalAPI) Ping(ctx context.Context) error { return a.query.Ping(ctx) }

func (a *LocalAPI) RestockLowStock(ctx context.Context) (dto.RestockPayload, error) {
	return dto.NewRestockPayload(a.mutation.RestockLowStock(ctx)), nil
}

func (a *LocalAPI) Customers(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := a.query.AllCustomers(ctx, repository.CustomerFilter{})
	if err != nil {
		return nil, err
	}
	return dto.FromCustomers(list), nil
}

func (a *LocalAPI) Orders(ctx context.Context, since *time.Time) ([]dto.OrderResponse, error) {
	list, err := a.query.AllOrders(ctx, repository.OrderFilter{OrderDateGte: since})
	if err != nil {
		return nil, err
	}
	return dto.FromOrders(list), nil
}
