// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-area-keeper/internal/config"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/mock"
	"github.com/MKhiriev/go-area-keeper/internal/store"
	"github.com/MKhiriev/go-area-keeper/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	cfg := config.ServerApp{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "area-keeper-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(mockRepo, cfg, logger.Nop()), mockRepo
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Empty(t, user.Password, "plaintext never reaches storage")
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
			user.UserID = 42
			return user, nil
		})

	registered, err := svc.RegisterUser(context.Background(), models.User{Login: "surveyor", Password: "secret"})

	require.NoError(t, err)
	assert.EqualValues(t, 42, registered.UserID)
}

func TestAuthService_RegisterUser_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "surveyor"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "surveyor", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.EXPECT().FindUserByLogin(gomock.Any(), "surveyor").
		Return(models.User{UserID: 42, Login: "surveyor", PasswordHash: string(hash)}, nil)

	user, err := svc.Login(context.Background(), models.User{Login: "surveyor", Password: "secret"})

	require.NoError(t, err)
	assert.EqualValues(t, 42, user.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.EXPECT().FindUserByLogin(gomock.Any(), "surveyor").
		Return(models.User{Login: "surveyor", PasswordHash: string(hash)}, nil)

	_, err = svc.Login(context.Background(), models.User{Login: "surveyor", Password: "guess"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().FindUserByLogin(gomock.Any(), "stranger").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.User{Login: "stranger", Password: "secret"})

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestAuthSvc(t, ctrl)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.EqualValues(t, 42, parsed.UserID)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, _ := newTestAuthSvc(t, ctrl)

	other := NewAuthService(nil, config.ServerApp{
		TokenSignKey:  "another-key",
		TokenIssuer:   "area-keeper-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := other.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.Error(t, err)
}
