package model

import "strings"

// QuestionType discriminates the question union. Sanitizing and scoring
// both switch on it; an unknown value falls through to the base fields.
type QuestionType string

const (
	QuestionCategorize    QuestionType = "categorize"
	QuestionCloze         QuestionType = "cloze"
	QuestionComprehension QuestionType = "comprehension"
)

// Question is one entry of a form's ordered question list. It is stored
// inside the form document, not as its own row, so the per-variant fields
// live side by side and only the ones matching Type are populated.
type Question struct {
	ID     string       `json:"id"`
	Type   QuestionType `json:"type"`
	Text   string       `json:"text"`
	Image  string       `json:"image,omitempty"`
	Points float64      `json:"points"`

	// type == "categorize"
	CategoryItems []CategoryGroup `json:"categoryItems,omitempty"`

	// type == "cloze"
	ClozeWords []ClozeWord `json:"clozeWords,omitempty"`

	// type == "comprehension"
	Paragraph              string                  `json:"paragraph,omitempty"`
	ComprehensionQuestions []ComprehensionQuestion `json:"comprehensionQuestions,omitempty"`
}

// CategoryGroup holds the categories of a categorize question and the items
// to be sorted into them. Category is a comma-separated list of names.
type CategoryGroup struct {
	ID       string         `json:"id"`
	Category string         `json:"category"`
	Items    []CategoryItem `json:"items"`
}

// Categories parses the comma-separated category string into trimmed,
// non-empty names.
func (g CategoryGroup) Categories() []string {
	var names []string
	for _, part := range strings.Split(g.Category, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CategoryItem is a single draggable item. BelongsTo is the answer key and
// must never leave the server unsanitized.
type CategoryItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	BelongsTo string `json:"belongsTo"`
}

// ClozeWord is one token of a cloze question's text. Position is the
// zero-based index of the word in the whitespace-tokenized text and is the
// scoring key for blanks.
type ClozeWord struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	IsBlank  bool   `json:"isBlank"`
	Position int    `json:"position"`
}

// ComprehensionQuestion is a sub-question under a reading passage.
type ComprehensionQuestion struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
}

// Option is one selectable answer of a comprehension sub-question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
