package service

import (
	"context"

	"crm-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *mutationService) CreateOrder(ctx context.Context, in OrderInput) OrderPayload {
	order, err := s.createOrder(ctx, in)
	if err != nil {
		s.logFailure("createOrder", err)
		return OrderPayload{Message: err.Error()}
	}
	return OrderPayload{Order: order, Message: MsgOrderCreated, Success: true}
}

func (s *mutationService) createOrder(ctx context.Context, in OrderInput) (*models.Order, error) {
	var customer *models.Customer
	if cid, err := uuid.Parse(in.CustomerID); err == nil {
		customer, err = s.store.Customers().GetByID(ctx, cid)
		if err != nil {
			return nil, persistence(err)
		}
	}
	if customer == nil {
		return nil, newError(ErrNotFound, "Customer with ID %s does not exist", in.CustomerID)
	}

	if len(in.ProductIDs) == 0 {
		return nil, newError(ErrInvalidInput, MsgNoProducts)
	}

	products, err := s.resolveProducts(ctx, in.ProductIDs)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price)
		ids = append(ids, p.ID)
	}

	orderDate := s.now().UTC()
	if in.OrderDate != nil {
		orderDate = in.OrderDate.UTC()
	}

	var order *models.Order
	err = s.store.WithTx(ctx, func(tx Store) error {
		o := &models.Order{
			CustomerID:  customer.ID,
			TotalAmount: total,
			OrderDate:   orderDate,
		}
		if err := tx.Orders().Create(ctx, o, ids); err != nil {
			return err
		}
		full, err := tx.Orders().GetByID(ctx, o.ID)
		if err != nil {
			return err
		}
		order = full
		return nil
	})
	if err != nil {
		return nil, persistence(err)
	}
	return order, nil
}

// resolveProducts проверяет id в порядке ввода и сообщает о первом неразрешённом.
// Повторы схлопываются, остаётся первое вхождение.
func (s *mutationService) resolveProducts(ctx context.Context, raw []string) ([]models.Product, error) {
	parsed := make([]uuid.UUID, len(raw))
	valid := make([]uuid.UUID, 0, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			continue
		}
		parsed[i] = id
		valid = append(valid, id)
	}

	found, err := s.store.Products().GetByIDs(ctx, valid)
	if err != nil {
		return nil, persistence(err)
	}
	byID := make(map[uuid.UUID]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}

	seen := make(map[uuid.UUID]struct{}, len(raw))
	out := make([]models.Product, 0, len(raw))
	for i, r := range raw {
		p, ok := byID[parsed[i]]
		if parsed[i] == uuid.Nil || !ok {
			return nil, newError(ErrNotFound, "Invalid product ID: %s", r)
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
