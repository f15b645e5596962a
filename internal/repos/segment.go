package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hirecharm/onboarding-backend/internal/logger"
	"github.com/hirecharm/onboarding-backend/internal/types"
)

type SegmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, segments []*types.ClientSegment) error
	// ListBySubmissionID returns segments ordered by their stored order index
	// ascending.
	ListBySubmissionID(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID) ([]*types.ClientSegment, error)
}

type segmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSegmentRepo(db *gorm.DB, baseLog *logger.Logger) SegmentRepo {
	repoLog := baseLog.With("repo", "SegmentRepo")
	return &segmentRepo{db: db, log: repoLog}
}

func (sr *segmentRepo) Create(ctx context.Context, tx *gorm.DB, segments []*types.ClientSegment) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if len(segments) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).Create(&segments).Error
}

func (sr *segmentRepo) ListBySubmissionID(ctx context.Context, tx *gorm.DB, submissionID uuid.UUID) ([]*types.ClientSegment, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	results := []*types.ClientSegment{}
	if err := transaction.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("segment_order ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
