package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/tarnowskisean-beep/cook-book/configs"
)

// StorageService uploads media (persona avatars, seed images) to Cloudflare
// R2 and resolves their public urls.
type StorageService struct {
	config cfg.Config
}

func NewStorageService(config cfg.Config) *StorageService {
	return &StorageService{config: config}
}

func (r *StorageService) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r.config.R2.AccessKey, r.config.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.config.R2.AccountID))
	}), nil
}

func (r *StorageService) Upload(ctx context.Context, key string, file []byte, contentType string) error {
	client, err := r.client(ctx)
	if err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(r.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file),
		ContentType: aws.String(contentType),
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		slog.Error(err.Error())
		return err
	}
	return nil
}

func (r *StorageService) PublicURL(key string) string {
	return strings.TrimSuffix(r.config.R2.PublicURL, "/") + "/" + key
}
