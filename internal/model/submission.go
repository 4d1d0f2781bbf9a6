package model

import (
	"time"

	"gorm.io/datatypes"
)

// Submission records one respondent's attempt at a form. Rows are
// insert-only: score and max score are computed once at submission time and
// never rewritten.
type Submission struct {
	ID          string                        `gorm:"primaryKey;size:36" json:"id"`
	FormID      string                        `gorm:"not null;index;size:36" json:"formId"`
	Form        *Form                         `gorm:"foreignKey:FormID" json:"-"`
	Username    string                        `gorm:"not null" json:"username"`
	Answers     datatypes.JSONType[AnswerSet] `gorm:"type:jsonb" json:"answers"`
	Score       float64                       `json:"score"`
	MaxScore    float64                       `json:"maxScore"`
	SubmittedAt time.Time                     `gorm:"autoCreateTime" json:"submittedAt"`
}
