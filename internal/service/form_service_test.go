package service

import (
	"encoding/json"
	"testing"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/dto"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() dto.FormCreateDTO {
	return dto.FormCreateDTO{
		Title: "Sample assessment",
		Questions: []dto.QuestionCreateDTO{
			{
				Type:   model.QuestionCategorize,
				Text:   "Sort the items",
				Points: 10,
				CategoryItems: []dto.CategoryGroupCreateDTO{{
					Category: "Fruits, Vegetables",
					Items: []dto.CategoryItemCreateDTO{
						{ID: "i1", Text: "Apple", BelongsTo: "Fruits"},
						{ID: "i2", Text: "Carrot", BelongsTo: "Vegetables"},
					},
				}},
			},
			{
				ID:     "q-cloze",
				Type:   model.QuestionCloze,
				Text:   "Go is expressive",
				Points: 6,
				ClozeWords: []dto.ClozeWordCreateDTO{
					{ID: "w2", Word: "expressive", IsBlank: true, Position: 2},
				},
			},
			{
				Type:      model.QuestionComprehension,
				Text:      "Read and answer",
				Points:    4,
				Paragraph: "A short passage.",
				ComprehensionQuestions: []dto.ComprehensionQuestionCreateDTO{{
					ID:       "c1",
					Question: "What now?",
					Options: []dto.OptionCreateDTO{
						{ID: "o1", Text: "This"},
						{ID: "o2", Text: "That"},
					},
					CorrectOptionID: "o1",
				}},
			},
		},
	}
}

func TestCreateFormAssignsIDsAndPersists(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo)

	form, err := svc.CreateForm(validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, form.ID)
	require.Len(t, form.Questions, 3)
	assert.NotEmpty(t, form.Questions[0].ID, "missing question ids get generated")
	assert.Equal(t, "q-cloze", form.Questions[1].ID, "provided question ids are kept")
	assert.Equal(t, "Fruits", form.Questions[0].CategoryItems[0].Items[0].BelongsTo)

	stored, ok := repo.forms[form.ID]
	require.True(t, ok)
	assert.Equal(t, "Sample assessment", stored.Title)
	assert.Len(t, stored.Questions.Data(), 3)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestCreateFormValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.FormCreateDTO)
	}{
		{
			name: "item in undeclared category",
			mutate: func(req *dto.FormCreateDTO) {
				req.Questions[0].CategoryItems[0].Items[0].BelongsTo = "Minerals"
			},
		},
		{
			name: "category with no items",
			mutate: func(req *dto.FormCreateDTO) {
				req.Questions[0].CategoryItems[0].Category = "Fruits, Vegetables, Minerals"
			},
		},
		{
			name: "categorize without a category group",
			mutate: func(req *dto.FormCreateDTO) {
				req.Questions[0].CategoryItems = nil
			},
		},
		{
			name: "cloze position outside text",
			mutate: func(req *dto.FormCreateDTO) {
				req.Questions[1].ClozeWords[0].Position = 12
			},
		},
		{
			name: "correct option referencing no option",
			mutate: func(req *dto.FormCreateDTO) {
				req.Questions[2].ComprehensionQuestions[0].CorrectOptionID = "o9"
			},
		},
		{
			name: "duplicate question ids",
			mutate: func(req *dto.FormCreateDTO) {
				req.Questions[0].ID = "q-cloze"
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			_, err := NewFormService(newStubFormRepo()).CreateForm(req)
			assert.ErrorIs(t, err, ErrInvalidForm)
		})
	}
}

func TestCreateFormTrimsCategoryNames(t *testing.T) {
	req := validCreateRequest()
	req.Questions[0].CategoryItems[0].Category = " Fruits , , Vegetables "

	_, err := NewFormService(newStubFormRepo()).CreateForm(req)
	assert.NoError(t, err, "padding and empty segments in the category list are ignored")
}

func TestGetFormNotFound(t *testing.T) {
	svc := NewFormService(newStubFormRepo())

	_, err := svc.GetForm("missing")
	assert.ErrorIs(t, err, ErrFormNotFound)

	_, err = svc.GetFormForTest("missing")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestGetFormForTestIsSanitized(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo)

	created, err := svc.CreateForm(validCreateRequest())
	require.NoError(t, err)

	safe, err := svc.GetFormForTest(created.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(safe)
	require.NoError(t, err)
	payload := string(raw)

	assert.NotContains(t, payload, "belongsTo")
	assert.NotContains(t, payload, "correctOptionId")
	assert.Contains(t, payload, "_____")
}

func TestGetFormKeepsAnswerKeys(t *testing.T) {
	repo := newStubFormRepo()
	svc := NewFormService(repo)

	created, err := svc.CreateForm(validCreateRequest())
	require.NoError(t, err)

	full, err := svc.GetForm(created.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(full)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "belongsTo")
	assert.Contains(t, string(raw), "correctOptionId")
}
