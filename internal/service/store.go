package service

import (
	"context"

	"crm-service/internal/repository"
)

type repoStore struct{ repo *repository.Repository }

// NewStore адаптирует repository.Repository к порту Store.
func NewStore(repo *repository.Repository) Store { return &repoStore{repo: repo} }

func (s *repoStore) Customers() CustomerRepo { return s.repo.Customers }
func (s *repoStore) Products() ProductRepo   { return s.repo.Products }
func (s *repoStore) Orders() OrderRepo       { return s.repo.Orders }

func (s *repoStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	return s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		return fn(&repoStore{repo: tx})
	})
}

func (s *repoStore) Savepoint(ctx context.Context, fn func(tx Store) error) error {
	return s.repo.Savepoint(ctx, func(tx *repository.Repository) error {
		return fn(&repoStore{repo: tx})
	})
}

func (s *repoStore) Ping(ctx context.Context) error { return s.repo.Ping(ctx) }
