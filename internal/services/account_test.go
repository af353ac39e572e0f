package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/facades"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
	"github.com/sbilibin2017/gw-payment-links/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountService_Policy(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		wantErr error
	}{
		{name: "empty defaults to relaxed", policy: ""},
		{name: "relaxed", policy: services.StatusPolicyRelaxed},
		{name: "strict", policy: services.StatusPolicyStrict},
		{name: "unknown", policy: "paranoid", wantErr: services.ErrUnknownAccountPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := services.NewAccountService(nil, nil, nil, nil, tt.policy)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestAccountService_Connect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("creates account on first connect", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockWriter := services.NewMockUserAccountWriter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)

		svc, err := services.NewAccountService(mockReader, mockWriter, mockGateway, nil, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "seller@example.com"}, nil)
		mockGateway.EXPECT().CreateAccount(gomock.Any(), "seller@example.com").Return("acct_1", nil)
		mockWriter.EXPECT().SetProcessorAccountID(gomock.Any(), userID, "acct_1").Return(nil)
		mockGateway.EXPECT().
			CreateAccountLink(gomock.Any(), "acct_1", "https://api.example/refresh", "https://api.example/return").
			Return("https://onboard.example/acct_1", nil)

		link, err := svc.Connect(context.Background(), userID, "https://api.example/refresh", "https://api.example/return")
		assert.NoError(t, err)
		assert.Equal(t, "https://onboard.example/acct_1", link)
	})

	t.Run("reuses existing account", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockWriter := services.NewMockUserAccountWriter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)

		svc, err := services.NewAccountService(mockReader, mockWriter, mockGateway, nil, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, ProcessorAccountID: strPtr("acct_1")}, nil)
		mockGateway.EXPECT().
			CreateAccountLink(gomock.Any(), "acct_1", gomock.Any(), gomock.Any()).
			Return("https://onboard.example/acct_1", nil)

		link, err := svc.Connect(context.Background(), userID, "r", "u")
		assert.NoError(t, err)
		assert.Equal(t, "https://onboard.example/acct_1", link)
	})

	t.Run("user not found", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockWriter := services.NewMockUserAccountWriter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)

		svc, err := services.NewAccountService(mockReader, mockWriter, mockGateway, nil, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

		_, err = svc.Connect(context.Background(), userID, "r", "u")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestAccountService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("mints login link", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)

		svc, err := services.NewAccountService(mockReader, nil, mockGateway, nil, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, ProcessorAccountID: strPtr("acct_1")}, nil)
		mockGateway.EXPECT().CreateLoginLink(gomock.Any(), "acct_1").Return("https://dash.example/acct_1", nil)

		link, err := svc.Dashboard(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, "https://dash.example/acct_1", link)
	})

	t.Run("no processor account", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)

		svc, err := services.NewAccountService(mockReader, nil, mockGateway, nil, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)

		_, err = svc.Dashboard(context.Background(), userID)
		assert.ErrorIs(t, err, services.ErrNoProcessorAccount)
	})
}

func TestAccountService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("no account means disconnected", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)

		svc, err := services.NewAccountService(mockReader, nil, nil, nil, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)

		status, err := svc.Status(context.Background(), userID)
		assert.NoError(t, err)
		assert.False(t, status.Connected)
	})

	t.Run("cache hit skips the gateway", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)
		mockCache := services.NewMockStatusCache(ctrl)

		svc, err := services.NewAccountService(mockReader, nil, mockGateway, mockCache, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, ProcessorAccountID: strPtr("acct_1")}, nil)
		mockCache.EXPECT().Get(gomock.Any(), "acct_1").
			Return(&models.AccountStatus{Connected: true, DetailsSubmitted: true}, nil)

		status, err := svc.Status(context.Background(), userID)
		assert.NoError(t, err)
		assert.True(t, status.Connected)
	})

	t.Run("relaxed policy connects on details submitted", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockWriter := services.NewMockUserAccountWriter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)
		mockCache := services.NewMockStatusCache(ctrl)

		svc, err := services.NewAccountService(mockReader, mockWriter, mockGateway, mockCache, services.StatusPolicyRelaxed)
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, ProcessorAccountID: strPtr("acct_1")}, nil)
		mockCache.EXPECT().Get(gomock.Any(), "acct_1").Return(nil, errors.New("cache miss"))
		mockGateway.EXPECT().RetrieveAccount(gomock.Any(), "acct_1").
			Return(&facades.Account{ID: "acct_1", DetailsSubmitted: true, ChargesEnabled: false}, nil)
		mockWriter.EXPECT().SetOnboardingComplete(gomock.Any(), userID, true).Return(nil)
		mockCache.EXPECT().Set(gomock.Any(), "acct_1", gomock.Any()).Return(nil)

		status, err := svc.Status(context.Background(), userID)
		assert.NoError(t, err)
		assert.True(t, status.Connected)
		assert.True(t, status.DetailsSubmitted)
		assert.False(t, status.ChargesEnabled)
	})

	t.Run("strict policy also requires charges enabled", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockWriter := services.NewMockUserAccountWriter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)
		mockCache := services.NewMockStatusCache(ctrl)

		svc, err := services.NewAccountService(mockReader, mockWriter, mockGateway, mockCache, services.StatusPolicyStrict)
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, ProcessorAccountID: strPtr("acct_1")}, nil)
		mockCache.EXPECT().Get(gomock.Any(), "acct_1").Return(nil, errors.New("cache miss"))
		mockGateway.EXPECT().RetrieveAccount(gomock.Any(), "acct_1").
			Return(&facades.Account{ID: "acct_1", DetailsSubmitted: true, ChargesEnabled: false}, nil)
		mockCache.EXPECT().Set(gomock.Any(), "acct_1", gomock.Any()).Return(nil)

		status, err := svc.Status(context.Background(), userID)
		assert.NoError(t, err)
		assert.False(t, status.Connected)
	})

	t.Run("cache set failure is not fatal", func(t *testing.T) {
		mockReader := services.NewMockUserGetter(ctrl)
		mockWriter := services.NewMockUserAccountWriter(ctrl)
		mockGateway := services.NewMockConnectGateway(ctrl)
		mockCache := services.NewMockStatusCache(ctrl)

		svc, err := services.NewAccountService(mockReader, mockWriter, mockGateway, mockCache, "")
		require.NoError(t, err)

		mockReader.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, ProcessorAccountID: strPtr("acct_1")}, nil)
		mockCache.EXPECT().Get(gomock.Any(), "acct_1").Return(nil, errors.New("cache miss"))
		mockGateway.EXPECT().RetrieveAccount(gomock.Any(), "acct_1").
			Return(&facades.Account{ID: "acct_1", DetailsSubmitted: true}, nil)
		mockWriter.EXPECT().SetOnboardingComplete(gomock.Any(), userID, true).Return(nil)
		mockCache.EXPECT().Set(gomock.Any(), "acct_1", gomock.Any()).Return(errors.New("redis down"))

		status, err := svc.Status(context.Background(), userID)
		assert.NoError(t, err)
		assert.True(t, status.Connected)
	})
}
