// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-area-keeper/internal/adapter"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/mock"
	"github.com/MKhiriev/go-area-keeper/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-area-keeper/models"
)

func signedTestToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("area-keeper-test", userID, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestClientAuthService_Login_EstablishesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAdapter := mock.NewMockAreaServerAdapter(ctrl)
	svc := NewClientAuthService(mockAdapter, logger.Nop())

	credentials := models.User{Login: "surveyor", Password: "secret"}
	mockAdapter.EXPECT().Login(gomock.Any(), credentials).
		Return(models.User{Login: "surveyor", Name: "Land Surveyor"}, nil)
	mockAdapter.EXPECT().Token().Return(signedTestToken(t, 42))

	user, err := svc.Login(context.Background(), credentials)

	require.NoError(t, err)
	assert.EqualValues(t, 42, user.UserID, "ID восстанавливается из subject токена")
	assert.Empty(t, user.Password)

	current, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, current)
}

func TestClientAuthService_Register_EstablishesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAdapter := mock.NewMockAreaServerAdapter(ctrl)
	svc := NewClientAuthService(mockAdapter, logger.Nop())

	newUser := models.User{Login: "surveyor", Name: "Land Surveyor", Password: "secret"}
	mockAdapter.EXPECT().Register(gomock.Any(), newUser).
		Return(models.User{Login: "surveyor", Name: "Land Surveyor"}, nil)
	mockAdapter.EXPECT().Token().Return(signedTestToken(t, 7))

	user, err := svc.Register(context.Background(), newUser)

	require.NoError(t, err)
	assert.EqualValues(t, 7, user.UserID)
}

func TestClientAuthService_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAdapter := mock.NewMockAreaServerAdapter(ctrl)
	svc := NewClientAuthService(mockAdapter, logger.Nop())

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, adapter.ErrUnauthorized)

	_, err := svc.Login(context.Background(), models.User{Login: "surveyor", Password: "wrong"})

	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, err = svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated, "неудачный логин не создаёт сессию")
}

func TestClientAuthService_CurrentUser_BeforeLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewClientAuthService(mock.NewMockAreaServerAdapter(ctrl), logger.Nop())

	_, err := svc.CurrentUser(context.Background())

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
