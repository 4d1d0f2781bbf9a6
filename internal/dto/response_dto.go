package dto

import (
	"time"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
)

// FormDTO is the full admin view of a form, answer keys included.
type FormDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	HeaderImage string        `json:"headerImage,omitempty"`
	Questions   []QuestionDTO `json:"questions"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// QuestionDTO mirrors model.Question field for field; copier maps between
// the two by name.
type QuestionDTO struct {
	ID     string             `json:"id"`
	Type   model.QuestionType `json:"type"`
	Text   string             `json:"text"`
	Image  string             `json:"image,omitempty"`
	Points float64            `json:"points"`

	CategoryItems []CategoryGroupDTO `json:"categoryItems,omitempty"`

	ClozeWords []ClozeWordDTO `json:"clozeWords,omitempty"`

	Paragraph              string                     `json:"paragraph,omitempty"`
	ComprehensionQuestions []ComprehensionQuestionDTO `json:"comprehensionQuestions,omitempty"`
}

type CategoryGroupDTO struct {
	ID       string            `json:"id"`
	Category string            `json:"category"`
	Items    []CategoryItemDTO `json:"items"`
}

type CategoryItemDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	BelongsTo string `json:"belongsTo"`
}

type ClozeWordDTO struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	IsBlank  bool   `json:"isBlank"`
	Position int    `json:"position"`
}

type ComprehensionQuestionDTO struct {
	ID              string      `json:"id"`
	Question        string      `json:"question"`
	Options         []OptionDTO `json:"options"`
	CorrectOptionID string      `json:"correctOptionId"`
}

type OptionDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CreateFormResponse wraps the created form, matching the 201 body shape.
type CreateFormResponse struct {
	Form FormDTO `json:"form"`
}

// TestResultDTO is the response of a scored submission.
type TestResultDTO struct {
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"maxScore"`
	Percentage int     `json:"percentage"`
}

// SubmissionDTO is one entry of the admin responses view, annotated with
// the form's title.
type SubmissionDTO struct {
	ID          string          `json:"id"`
	FormID      string          `json:"formId"`
	FormTitle   string          `json:"formTitle,omitempty"`
	Username    string          `json:"username"`
	Answers     model.AnswerSet `json:"answers"`
	Score       float64         `json:"score"`
	MaxScore    float64         `json:"maxScore"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// UploadResponse carries the hosted URL of an uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the error envelope: explicit 4xx errors carry only Error,
// uncaught failures are reported as 500 with Error fixed to
// "Internal Server Error" and the cause in Message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
