package types

import (
	"time"

	"github.com/google/uuid"
)

// ClientPersona is one buyer-persona entry of a submission. PrimarySegment
// references a segment by name, not by foreign key.
type ClientPersona struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID     uuid.UUID `gorm:"type:uuid;not null;index;column:submission_id" json:"submission_id"`
	PersonaOrder     int       `gorm:"not null;column:persona_order" json:"persona_order"`
	JobTitle         string    `gorm:"not null;column:job_title" json:"job_title"`
	PrimarySegment   *string   `gorm:"column:primary_segment" json:"primary_segment"`
	SeniorityLevel   *string   `gorm:"column:seniority_level" json:"seniority_level"`
	PainBeforeBuying *string   `gorm:"column:pain_before_buying" json:"pain_before_buying"`
	AhaMoment        *string   `gorm:"column:aha_moment" json:"aha_moment"`
	Objections       *string   `gorm:"column:objections" json:"objections"`
	DecisionCriteria *string   `gorm:"column:decision_criteria" json:"decision_criteria"`
	CreatedAt        time.Time `gorm:"not null;default:now();column:created_at" json:"created_at"`
}

func (ClientPersona) TableName() string {
	return "client_personas"
}
