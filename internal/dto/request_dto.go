package dto

import "github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"

// FormCreateDTO is the body of POST /api/create-form.
type FormCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	HeaderImage string              `json:"headerImage"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"dive"`
}

// QuestionCreateDTO carries one authored question. Only the fields matching
// Type are expected to be populated; the service validates the variant shape.
type QuestionCreateDTO struct {
	ID     string             `json:"id"`
	Type   model.QuestionType `json:"type" binding:"required,oneof=categorize cloze comprehension"`
	Text   string             `json:"text"`
	Image  string             `json:"image"`
	Points float64            `json:"points" binding:"gte=0"`

	CategoryItems []CategoryGroupCreateDTO `json:"categoryItems" binding:"omitempty,dive"`

	ClozeWords []ClozeWordCreateDTO `json:"clozeWords" binding:"omitempty,dive"`

	Paragraph              string                           `json:"paragraph"`
	ComprehensionQuestions []ComprehensionQuestionCreateDTO `json:"comprehensionQuestions" binding:"omitempty,dive"`
}

type CategoryGroupCreateDTO struct {
	ID       string                  `json:"id"`
	Category string                  `json:"category" binding:"required"`
	Items    []CategoryItemCreateDTO `json:"items" binding:"required,min=1,dive"`
}

type CategoryItemCreateDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text" binding:"required"`
	BelongsTo string `json:"belongsTo" binding:"required"`
}

type ClozeWordCreateDTO struct {
	ID       string `json:"id"`
	Word     string `json:"word" binding:"required"`
	IsBlank  bool   `json:"isBlank"`
	Position int    `json:"position" binding:"gte=0"`
}

type ComprehensionQuestionCreateDTO struct {
	ID              string            `json:"id"`
	Question        string            `json:"question" binding:"required"`
	Options         []OptionCreateDTO `json:"options" binding:"required,min=2,dive"`
	CorrectOptionID string            `json:"correctOptionId" binding:"required"`
}

type OptionCreateDTO struct {
	ID   string `json:"id"`
	Text string `json:"text" binding:"required"`
}

// SubmitTestDTO is the body of POST /api/submit-test/:id. Username is
// validated in the controller so the error message stays stable.
type SubmitTestDTO struct {
	Username string          `json:"username"`
	Answers  model.AnswerSet `json:"answers"`
}
