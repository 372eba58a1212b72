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

// inquiryRepository implements the repository.InquiryRepository interface.
type inquiryRepository struct {
	store  Store
	logger *slog.Logger
}

// NewInquiryRepository is the constructor for inquiryRepository.
func NewInquiryRepository(store Store, logger *slog.Logger) repository.InquiryRepository {
	return &inquiryRepository{store: store, logger: logger}
}

// LoadInquiries retrieves the full inquiry history. An absent key or
// malformed stored content degrades to the empty default.
func (repo *inquiryRepository) LoadInquiries(ctx context.Context) ([]*entity.Inquiry, error) {
	data, err := repo.store.Get(ctx, InquiriesKey)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "load inquiry history")
	}

	var models []*model.InquiryModel
	if err := json.Unmarshal(data, &models); err != nil {
		repo.logger.Warn("malformed inquiry history in storage, starting empty",
			slog.Any("error", err))

		return nil, nil
	}

	inquiries := make([]*entity.Inquiry, len(models))
	for i, m := range models {
		inquiries[i] = model.ToInquiryDomain(m)
	}

	return inquiries, nil
}

// SaveInquiries replaces the stored inquiry history with the given collection.
func (repo *inquiryRepository) SaveInquiries(ctx context.Context, inquiries []*entity.Inquiry) error {
	models := make([]*model.InquiryModel, len(inquiries))
	for i, inquiry := range inquiries {
		models[i] = model.FromInquiryDomain(inquiry)
	}

	data, err := json.Marshal(models)
	if err != nil {
		return errors.Wrap(err, "marshal inquiry history")
	}

	return repo.store.Set(ctx, InquiriesKey, data)
}
