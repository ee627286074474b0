package service

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
)

// ConnectionService toggles platform connections. Credentials are mock
// tokens; real OAuth flows are out of scope.
type ConnectionService interface {
	Toggle(ctx context.Context, platform string) (bool, error)
	List(ctx context.Context) ([]*models.SocialAccount, error)
}

type connectionService struct {
	sar repository.SocialAccountRepository
}

func NewConnectionService(sar repository.SocialAccountRepository) ConnectionService {
	return &connectionService{sar: sar}
}

// Toggle connects the platform when no account exists and disconnects it
// otherwise. Returns whether the platform is connected afterwards.
func (s *connectionService) Toggle(ctx context.Context, platform string) (bool, error) {
	existing, err := s.sar.GetByPlatform(ctx, platform)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if err := s.sar.Remove(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	token, err := gonanoid.New()
	if err != nil {
		return false, err
	}

	account := &models.SocialAccount{
		Platform:    platform,
		Credentials: "mock_token_" + token,
		Status:      models.SocialAccountConnected,
	}
	if _, err := s.sar.Create(ctx, account); err != nil {
		return false, err
	}
	return true, nil
}

func (s *connectionService) List(ctx context.Context) ([]*models.SocialAccount, error) {
	return s.sar.List(ctx)
}
