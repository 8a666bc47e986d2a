package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-area-keeper/internal/adapter"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/utils"
	"github.com/MKhiriev/go-area-keeper/models"
)

type clientAuthService struct {
	server adapter.AreaServerAdapter
	logger *logger.Logger

	mu     sync.RWMutex
	user   models.User
	loaded bool
}

// NewClientAuthService returns the auth service backing the client session.
func NewClientAuthService(server adapter.AreaServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{server: server, logger: log}
}

func (s *clientAuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	registered, err := s.server.Register(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	return s.establishSession(registered)
}

func (s *clientAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	found, err := s.server.Login(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	return s.establishSession(found)
}

// establishSession recovers the user ID from the issued token, since user
// payloads never carry it over the wire, and pins the session user.
func (s *clientAuthService) establishSession(user models.User) (models.User, error) {
	userID, err := utils.ParseUserIDFromJWT(s.server.Token())
	if err != nil {
		return models.User{}, fmt.Errorf("parsing user ID from issued token: %w", err)
	}
	user.UserID = userID
	user.Password = ""

	s.mu.Lock()
	s.user = user
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info().Str("func", "establishSession").Int64("userID", userID).Msg("session established")

	return user, nil
}

func (s *clientAuthService) CurrentUser(_ context.Context) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return models.User{}, ErrNotAuthenticated
	}

	return s.user, nil
}
