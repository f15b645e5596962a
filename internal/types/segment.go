package types

import (
	"time"

	"github.com/google/uuid"
)

// ClientSegment is one market-segment entry of a submission. SegmentOrder is
// the entry's position in the submitted array, taken before the skip check,
// so indices after a skipped entry are non-contiguous.
type ClientSegment struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID          uuid.UUID `gorm:"type:uuid;not null;index;column:submission_id" json:"submission_id"`
	SegmentOrder          int       `gorm:"not null;column:segment_order" json:"segment_order"`
	SegmentName           string    `gorm:"not null;column:segment_name" json:"segment_name"`
	RevenuePercentage     *int      `gorm:"column:revenue_percentage" json:"revenue_percentage"`
	UniqueCharacteristics *string   `gorm:"column:unique_characteristics" json:"unique_characteristics"`
	PainPoints            *string   `gorm:"column:pain_points" json:"pain_points"`
	BuyingTriggers        *string   `gorm:"column:buying_triggers" json:"buying_triggers"`
	CreatedAt             time.Time `gorm:"not null;default:now();column:created_at" json:"created_at"`
}

func (ClientSegment) TableName() string {
	return "client_segments"
}
