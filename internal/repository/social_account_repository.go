package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
)

type SocialAccountRepository interface {
	GetByPlatform(ctx context.Context, platform string) (*models.SocialAccount, error)
	List(ctx context.Context) ([]*models.SocialAccount, error)
	Create(ctx context.Context, account *models.SocialAccount) (int64, error)
	Remove(ctx context.Context, id int64) error
}

type socialAccountRepository struct {
	db *sql.DB
}

func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

func (r *socialAccountRepository) GetByPlatform(ctx context.Context, platform string) (*models.SocialAccount, error) {
	query := `SELECT id, platform, credentials, status, created_at FROM social_accounts WHERE platform = $1`
	row := r.db.QueryRowContext(ctx, query, platform)

	var account models.SocialAccount
	err := row.Scan(&account.ID, &account.Platform, &account.Credentials, &account.Status, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &account, nil
}

func (r *socialAccountRepository) List(ctx context.Context) ([]*models.SocialAccount, error) {
	query := `SELECT id, platform, credentials, status, created_at FROM social_accounts ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SocialAccount
	for rows.Next() {
		var account models.SocialAccount
		err := rows.Scan(&account.ID, &account.Platform, &account.Credentials, &account.Status, &account.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, &account)
	}
	return accounts, nil
}

func (r *socialAccountRepository) Create(ctx context.Context, account *models.SocialAccount) (int64, error) {
	query := `
		INSERT INTO social_accounts (platform, credentials, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, account.Platform, account.Credentials, account.Status).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return id, nil
}

func (r *socialAccountRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM social_accounts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
