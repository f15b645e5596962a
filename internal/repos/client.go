package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hirecharm/onboarding-backend/internal/logger"
	"github.com/hirecharm/onboarding-backend/internal/types"
)

type ClientRepo interface {
	// GetByName does an exact-string lookup. Returns (nil, nil) when no row
	// matches.
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Client, error)
	Create(ctx context.Context, tx *gorm.DB, client *types.Client) error
}

type clientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
	repoLog := baseLog.With("repo", "ClientRepo")
	return &clientRepo{db: db, log: repoLog}
}

func (cr *clientRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Client, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Client
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (cr *clientRepo) Create(ctx context.Context, tx *gorm.DB, client *types.Client) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	return transaction.WithContext(ctx).Create(client).Error
}
