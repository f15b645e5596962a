package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hirecharm/onboarding-backend/internal/logger"
	"github.com/hirecharm/onboarding-backend/internal/types"
)

type PersonaRepo interface {
	Create(ctx context.Context, tx *gorm.DB, personas []*types.ClientPersona) error
	// ListBySubmissionID returns personas ordered by their stored order index
	// ascending.
	ListBySubmissionID(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID) ([]*types.ClientPersona, error)
}

type personaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonaRepo(db *gorm.DB, baseLog *logger.Logger) PersonaRepo {
	repoLog := baseLog.With("repo", "PersonaRepo")
	return &personaRepo{db: db, log: repoLog}
}

func (pr *personaRepo) Create(ctx context.Context, tx *gorm.DB, personas []*types.ClientPersona) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(personas) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).Create(&personas).Error
}

func (pr *personaRepo) ListBySubmissionID(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID) ([]*types.ClientPersona, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	results := []*types.ClientPersona{}
	if err := transaction.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("persona_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
