package impl

import (
	"context"
	"testing"

	"bites/internal/domain/entity"
	domainerrors "bites/internal/domain/errors"
	mockRepo "bites/internal/mocks/repository"
	"bites/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSessionService(t *testing.T) (usecase.SessionUsecase, *mockRepo.MockProfileRepository) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().LoadProfile(mock.Anything).Return(nil, nil).Once()

	return NewSessionService(context.Background(), profileRepo, newDiscardLogger()), profileRepo
}

func TestSessionService_LoginLogout(t *testing.T) {
	svc, profileRepo := createTestSessionService(t)
	ctx := context.Background()

	require.Nil(t, svc.Current(ctx))

	profileRepo.EXPECT().SaveProfile(ctx, &entity.UserProfile{Name: "Asha", UID: "STU-42"}).Return(nil).Once()
	profile, err := svc.Login(ctx, &usecase.LoginInput{Name: "  Asha  ", UID: " STU-42 "})
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, "STU-42", profile.UID)

	current := svc.Current(ctx)
	require.NotNil(t, current)
	assert.Equal(t, "Asha", current.Name)

	profileRepo.EXPECT().ClearProfile(ctx).Return(nil).Once()
	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.Current(ctx))
}

func TestSessionService_Login_IncompleteProfile(t *testing.T) {
	svc, _ := createTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, &usecase.LoginInput{Name: "   ", UID: "STU-42"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)

	_, err = svc.Login(ctx, &usecase.LoginInput{Name: "Asha", UID: ""})
	assert.ErrorIs(t, err, domainerrors.ErrProfileIncomplete)

	assert.Nil(t, svc.Current(ctx))
}

func TestSessionService_Login_PersistFailureKeepsSession(t *testing.T) {
	svc, profileRepo := createTestSessionService(t)
	ctx := context.Background()

	profileRepo.EXPECT().SaveProfile(ctx, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := svc.Login(ctx, &usecase.LoginInput{Name: "Asha", UID: "STU-42"})
	require.NoError(t, err)
	assert.NotNil(t, svc.Current(ctx))
}

func TestSessionService_RestoresPersistedProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().LoadProfile(mock.Anything).
		Return(&entity.UserProfile{Name: "Asha", UID: "STU-42"}, nil).Once()

	svc := NewSessionService(context.Background(), profileRepo, newDiscardLogger())

	current := svc.Current(context.Background())
	require.NotNil(t, current)
	assert.Equal(t, "STU-42", current.UID)
}

func TestSessionService_UnreadableProfileDegradesToLoggedOut(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	profileRepo.EXPECT().LoadProfile(mock.Anything).Return(nil, errors.New("corrupt")).Once()

	svc := NewSessionService(context.Background(), profileRepo, newDiscardLogger())

	assert.Nil(t, svc.Current(context.Background()))
}

func TestSessionService_CurrentReturnsCopy(t *testing.T) {
	svc, profileRepo := createTestSessionService(t)
	ctx := context.Background()

	profileRepo.EXPECT().SaveProfile(ctx, mock.Anything).Return(nil).Once()
	_, err := svc.Login(ctx, &usecase.LoginInput{Name: "Asha", UID: "STU-42"})
	require.NoError(t, err)

	svc.Current(ctx).Name = "Mallory"
	assert.Equal(t, "Asha", svc.Current(ctx).Name)
}
