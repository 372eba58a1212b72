package keyval

import (
	"context"
	"encoding/json"
	"log/slog"

	"bites/internal/domain/entity"
	"bites/internal/domain/repository"
	"bites/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	store  Store
	logger *slog.Logger
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store Store, logger *slog.Logger) repository.OrderRepository {
	return &orderRepository{store: store, logger: logger}
}

// LoadOrders retrieves the full order history. An absent key or malformed
// stored content degrades to the empty default.
func (repo *orderRepository) LoadOrders(ctx context.Context) ([]*entity.Order, error) {
	data, err := repo.store.Get(ctx, OrdersKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "load order history")
	}

	var models []*model.OrderModel
	if err := json.Unmarshal(data, &models); err != nil {
		repo.logger.Warn("malformed order history in storage, starting empty",
			slog.Any("error", err))

		return nil, nil
	}

	orders := make([]*entity.Order, len(models))
	for i, m := range models {
		orders[i] = model.ToOrderDomain(m)
	}

	return orders, nil
}

// SaveOrders replaces the stored order history with the given collection.
func (repo *orderRepository) SaveOrders(ctx context.Context, orders []*entity.Order) error {
	models := make([]*model.OrderModel, len(orders))
	for i, order := range orders {
		models[i] = model.FromOrderDomain(order)
	}

	data, err := json.Marshal(models)
	if err != nil {
		return errors.Wrap(err, "marshal order history")
	}

	return repo.store.Set(ctx, OrdersKey, data)
}
