package types

import (
	"time"

	"github.com/google/uuid"
)

// Client is the organization a submission belongs to. Rows are created
// implicitly the first time a submission names an unknown company and are
// never updated or deleted here.
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null;column:name" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now();column:created_at" json:"created_at"`
}

func (Client) TableName() string {
	return "clients"
}
