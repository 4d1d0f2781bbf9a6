package model

import (
	"time"

	"gorm.io/datatypes"
)

// Form is the authored assessment artifact. Questions are heterogeneous and
// ordered, so the whole list is persisted as a single jsonb document column
// rather than per-question rows; a form is immutable once created.
type Form struct {
	ID          string                         `gorm:"primaryKey;size:36" json:"id"`
	Title       string                         `gorm:"not null" json:"title"`
	HeaderImage string                         `json:"headerImage,omitempty"`
	Questions   datatypes.JSONType[[]Question] `gorm:"type:jsonb" json:"questions"`
	CreatedAt   time.Time                      `json:"createdAt"`
}
