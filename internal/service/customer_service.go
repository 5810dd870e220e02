package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"crm-service/internal/models"
	"crm-service/internal/repository"

	"go.uber.org/zap"
)

func (s *mutationService) CreateCustomer(ctx context.Context, in CustomerInput) CustomerPayload {
	c, err := s.createCustomer(ctx, s.store, in)
	if err != nil {
		s.logFailure("createCustomer", err)
		return CustomerPayload{Message: err.Error()}
	}
	return CustomerPayload{Customer: c, Message: MsgCustomerCreated, Success: true}
}

// BulkCreateCustomers создаёт клиентов в одной транзакции. Ошибка строки
// откатывается до её savepoint и не мешает остальным строкам.
func (s *mutationService) BulkCreateCustomers(ctx context.Context, in []CustomerInput) BulkCustomersPayload {
	var (
		created []models.Customer
		errs    []string
	)

	err := s.store.WithTx(ctx, func(tx Store) error {
		for i, row := range in {
			var c *models.Customer
			rowErr := tx.Savepoint(ctx, func(sp Store) error {
				var err error
				c, err = s.createCustomer(ctx, sp, row)
				return err
			})
			if rowErr != nil {
				errs = append(errs, rowMessage(i+1, row, rowErr))
				continue
			}
			created = append(created, *c)
		}
		return nil
	})
	if err != nil {
		s.log.Error("Массовое создание клиентов не зафиксировано", zap.Error(err))
		return BulkCustomersPayload{Errors: []string{err.Error()}}
	}

	return BulkCustomersPayload{
		Customers: created,
		Errors:    errs,
		Success:   len(created) > 0,
	}
}

func rowMessage(row int, in CustomerInput, err error) string {
	if errors.Is(err, ErrConflict) {
		return fmt.Sprintf("Row %d: Email '%s' already exists", row, in.Email)
	}
	return fmt.Sprintf("Row %d: %s", row, err.Error())
}

// createCustomer: сначала уникальность email, затем правила полей.
func (s *mutationService) createCustomer(ctx context.Context, st Store, in CustomerInput) (*models.Customer, error) {
	email := strings.TrimSpace(in.Email)
	if email != "" {
		exists, err := st.Customers().ExistsByEmail(ctx, email)
		if err != nil {
			return nil, persistence(err)
		}
		if exists {
			return nil, errEmailExists()
		}
	}

	if err := ValidateCustomer(in); err != nil {
		return nil, err
	}

	c := &models.Customer{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Phone:     normalizePhone(in.Phone),
		CreatedAt: s.now().UTC(),
	}
	if err := st.Customers().Create(ctx, c); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errEmailExists()
		}
		return nil, persistence(err)
	}
	return c, nil
}

func normalizePhone(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	v := *p
	return &v
}

func (s *mutationService) logFailure(op string, err error) {
	if errors.Is(err, ErrPersistence) {
		s.log.Error("Ошибка хранилища", zap.String("op", op), zap.Error(err))
		return
	}
	s.log.Debug("Мутация отклонена", zap.String("op", op), zap.String("reason", err.Error()))
}
