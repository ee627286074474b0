package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

// SocialService is the publication collaborator. The real platform
// integrations are not specified yet; this mock honors the contract (publish
// returns a platform post id, metrics can be fetched later) without any
// network traffic.
type SocialService interface {
	PublishPost(ctx context.Context, platform, contentURL, caption string) (string, error)
	FetchMetrics(ctx context.Context, platformPostID string) (*transfer.SocialMetrics, error)
}

type mockSocialService struct{}

func NewSocialService() SocialService {
	return &mockSocialService{}
}

func (s *mockSocialService) PublishPost(ctx context.Context, platform, contentURL, caption string) (string, error) {
	slog.Info("publishing content", "platform", platform, "url", contentURL)
	slug := strings.ToLower(strings.ReplaceAll(platform, " ", "_"))
	return fmt.Sprintf("%s_post_%s", slug, uuid.NewString()), nil
}

func (s *mockSocialService) FetchMetrics(ctx context.Context, platformPostID string) (*transfer.SocialMetrics, error) {
	return &transfer.SocialMetrics{
		Views:    int64(rand.Intn(50000) + 1000),
		Likes:    int64(rand.Intn(5000) + 100),
		Comments: int64(rand.Intn(200) + 5),
		Shares:   int64(rand.Intn(1000) + 20),
	}, nil
}
