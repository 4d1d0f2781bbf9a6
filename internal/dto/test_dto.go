package dto

import "github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"

// TestFormDTO is the respondent-safe projection of a form: everything
// needed to render and answer the questions, with every answer key removed.
type TestFormDTO struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	HeaderImage string            `json:"headerImage,omitempty"`
	Questions   []TestQuestionDTO `json:"questions"`
}

type TestQuestionDTO struct {
	ID     string             `json:"id"`
	Type   model.QuestionType `json:"type"`
	Text   string             `json:"text"`
	Image  string             `json:"image,omitempty"`
	Points float64            `json:"points"`

	CategoryItems []TestCategoryGroupDTO `json:"categoryItems,omitempty"`

	// Blanks only; the words themselves are withheld.
	ClozeWords []TestClozeWordDTO `json:"clozeWords,omitempty"`
	// Word bank for the blanks, in shuffled order.
	Options []string `json:"options,omitempty"`

	Paragraph              string                         `json:"paragraph,omitempty"`
	ComprehensionQuestions []TestComprehensionQuestionDTO `json:"comprehensionQuestions,omitempty"`
}

type TestCategoryGroupDTO struct {
	ID       string      `json:"id"`
	Category string      `json:"category"`
	Items    []OptionDTO `json:"items"`
}

type TestClozeWordDTO struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	IsBlank  bool   `json:"isBlank"`
}

type TestComprehensionQuestionDTO struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Options  []OptionDTO `json:"options"`
}
