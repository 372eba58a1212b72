package impl

import (
	"context"
	"testing"

	"bites/internal/domain/entity"
	domainerrors "bites/internal/domain/errors"
	"bites/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	fx := createTestOrderStack(t)
	ctx := context.Background()

	require.NoError(t, fx.cart.AddItem(ctx, 1))
	require.NoError(t, fx.cart.AddItem(ctx, 1))
	require.NoError(t, fx.cart.AddItem(ctx, 5))

	view := fx.cart.View(ctx, entity.ModePickup)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 1, view.Lines[0].ItemID)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 5, view.Lines[1].ItemID)
	assert.Equal(t, 1, view.Lines[1].Quantity)
}

func TestCartService_AddItem_UnknownItem(t *testing.T) {
	fx := createTestOrderStack(t)

	err := fx.cart.AddItem(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownMenuItem)
}

func TestCartService_AddItem_CanteenClosed(t *testing.T) {
	fx := createTestOrderStack(t)
	ctx := context.Background()

	fx.clock.Set(closedNight)
	fx.canteen.Refresh()

	err := fx.cart.AddItem(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCanteenClosed)
	assert.Empty(t, fx.cart.View(ctx, entity.ModePickup).Lines)
}

func TestCartService_ChangeQuantity_ClampsAndRemoves(t *testing.T) {
	fx := createTestOrderStack(t)
	ctx := context.Background()

	require.NoError(t, fx.cart.AddItem(ctx, 1))
	fx.cart.ChangeQuantity(ctx, 1, 2)

	view := fx.cart.View(ctx, entity.ModePickup)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)

	// Dropping to zero or below removes the line.
	fx.cart.ChangeQuantity(ctx, 1, -5)
	assert.Empty(t, fx.cart.View(ctx, entity.ModePickup).Lines)

	// Unknown items are ignored.
	fx.cart.ChangeQuantity(ctx, 999, 1)
	assert.Empty(t, fx.cart.View(ctx, entity.ModePickup).Lines)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	fx := createTestOrderStack(t)
	ctx := context.Background()

	require.NoError(t, fx.cart.AddItem(ctx, 1))
	require.NoError(t, fx.cart.AddItem(ctx, 2))

	fx.cart.RemoveItem(ctx, 1)
	view := fx.cart.View(ctx, entity.ModePickup)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].ItemID)

	fx.cart.Clear(ctx)
	assert.Empty(t, fx.cart.View(ctx, entity.ModePickup).Lines)
}

func TestCartService_Totals_GuestPickup(t *testing.T) {
	fx := createTestOrderStack(t)
	ctx := context.Background()

	// Three croissants at 45 each.
	for i := 0; i < 3; i++ {
		require.NoError(t, fx.cart.AddItem(ctx, 1))
	}

	totals := fx.cart.View(ctx, entity.ModePickup).Totals
	assert.Equal(t, "135", totals.Subtotal.String())
	assert.Equal(t, "0", totals.Discount.String())
	assert.Equal(t, "0", totals.DeliveryFee.String())
	assert.Equal(t, "135", totals.GrandTotal.String())
}

func TestCartService_Totals_MemberDelivery(t *testing.T) {
	fx := createTestOrderStack(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().SaveProfile(mock.Anything, mock.Anything).Return(nil).Once()
	_, err := fx.session.Login(ctx, &usecase.LoginInput{Name: "Asha", UID: "STU-42"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, fx.cart.AddItem(ctx, 1))
	}

	totals := fx.cart.View(ctx, entity.ModePickup).Totals
	assert.Equal(t, "135", totals.Subtotal.String())
	assert.Equal(t, "13.5", totals.Discount.String())
	assert.Equal(t, "121.5", totals.GrandTotal.String())

	totals = fx.cart.View(ctx, entity.ModeDelivery).Totals
	assert.Equal(t, "20", totals.DeliveryFee.String())
	assert.Equal(t, "141.5", totals.GrandTotal.String())
}

func TestCartService_Totals_EmptyCartNoDeliveryFee(t *testing.T) {
	fx := createTestOrderStack(t)

	totals := fx.cart.View(context.Background(), entity.ModeDelivery).Totals
	assert.Equal(t, "0", totals.DeliveryFee.String())
	assert.Equal(t, "0", totals.GrandTotal.String())
}

func TestCartService_SnapshotIsIndependent(t *testing.T) {
	fx := createTestOrderStack(t)
	ctx := context.Background()

	require.NoError(t, fx.cart.AddItem(ctx, 1))

	snapshot := fx.cart.Snapshot(ctx)
	fx.cart.Clear(ctx)

	assert.False(t, snapshot.Empty())
	assert.Empty(t, fx.cart.View(ctx, entity.ModePickup).Lines)
}
