package keyval

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bites/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))
	data, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)

	require.NoError(t, store.Set(ctx, "k", []byte("v2")))
	data, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "k"))
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()

	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, OrdersKey, []byte(`[]`)))
	data, err := store.Get(ctx, OrdersKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewOrderRepository(store, newDiscardLogger())

	orders := []*entity.Order{
		{
			ID:               "1741003200000",
			Token:            "CB-412",
			CustomerName:     "Asha",
			CustomerUID:      "STU-42",
			Items:            "2x Cutting Chai",
			Total:            decimal.RequireFromString("27"),
			Mode:             entity.ModeDelivery,
			Location:         "Hostel Block C",
			Status:           entity.StatusPreparing,
			EstimatedMinutes: 17,
			CreatedAt:        time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:           "1741003100000",
			Token:        "CB-171",
			CustomerName: entity.GuestName,
			Items:        "1x Masala Dosa",
			Total:        decimal.RequireFromString("70"),
			Mode:         entity.ModePickup,
			Location:     entity.CounterLocation,
			Status:       entity.StatusReady,
			CreatedAt:    time.Date(2025, time.March, 3, 11, 55, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.SaveOrders(ctx, orders))

	loaded, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "1741003200000", loaded[0].ID)
	assert.Equal(t, entity.ModeDelivery, loaded[0].Mode)
	assert.Equal(t, entity.StatusPreparing, loaded[0].Status)
	assert.True(t, loaded[0].Total.Equal(orders[0].Total))
	assert.True(t, loaded[0].CreatedAt.Equal(orders[0].CreatedAt))
	assert.Equal(t, entity.GuestName, loaded[1].CustomerName)
}

func TestOrderRepository_AbsentKeyIsEmpty(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore(), newDiscardLogger())

	orders, err := repo.LoadOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_MalformedContentDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, OrdersKey, []byte("{not json")))

	repo := NewOrderRepository(store, newDiscardLogger())

	orders, err := repo.LoadOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestInquiryRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewInquiryRepository(NewMemoryStore(), newDiscardLogger())

	inquiries := []*entity.Inquiry{
		{
			ID:           uuid.New(),
			CustomerName: "Asha",
			CustomerUID:  "STU-42",
			Email:        "asha@campus.edu",
			Message:      "Do you cater events?",
			CreatedAt:    time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC),
		},
	}

	require.NoError(t, repo.SaveInquiries(ctx, inquiries))

	loaded, err := repo.LoadInquiries(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, inquiries[0].ID, loaded[0].ID)
	assert.Equal(t, "Do you cater events?", loaded[0].Message)
}

func TestInquiryRepository_AbsentKeyIsEmpty(t *testing.T) {
	repo := NewInquiryRepository(NewMemoryStore(), newDiscardLogger())

	inquiries, err := repo.LoadInquiries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, inquiries)
}

func TestProfileRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewProfileRepository(NewMemoryStore(), newDiscardLogger())

	// Absent profile means logged out, not an error.
	profile, err := repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)

	require.NoError(t, repo.SaveProfile(ctx, &entity.UserProfile{Name: "Asha", UID: "STU-42"}))

	profile, err = repo.LoadProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "STU-42", profile.UID)

	require.NoError(t, repo.ClearProfile(ctx))

	profile, err = repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileRepository_MalformedContentDegradesToLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, ProfileKey, []byte("???")))

	repo := NewProfileRepository(store, newDiscardLogger())

	profile, err := repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile)
}
