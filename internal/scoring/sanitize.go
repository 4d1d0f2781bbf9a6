package scoring

import (
	"math/rand"
	"strings"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/dto"
	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
)

// BlankToken replaces every blank word in a sanitized cloze text.
const BlankToken = "_____"

// Sanitize projects a form into its respondent-safe view: categorize items
// lose belongsTo, cloze texts are masked and their words moved into a
// shuffled word bank, comprehension options lose correctOptionId. Questions
// of unknown type keep only their base fields.
func Sanitize(form *model.Form) dto.TestFormDTO {
	out := dto.TestFormDTO{
		ID:          form.ID,
		Title:       form.Title,
		HeaderImage: form.HeaderImage,
	}
	for _, q := range form.Questions.Data() {
		out.Questions = append(out.Questions, sanitizeQuestion(q))
	}
	return out
}

func sanitizeQuestion(q model.Question) dto.TestQuestionDTO {
	safe := dto.TestQuestionDTO{
		ID:     q.ID,
		Type:   q.Type,
		Text:   q.Text,
		Image:  q.Image,
		Points: q.Points,
	}

	switch q.Type {
	case model.QuestionCategorize:
		for _, group := range q.CategoryItems {
			safeGroup := dto.TestCategoryGroupDTO{ID: group.ID, Category: group.Category}
			for _, item := range group.Items {
				safeGroup.Items = append(safeGroup.Items, dto.OptionDTO{ID: item.ID, Text: item.Text})
			}
			safe.CategoryItems = append(safe.CategoryItems, safeGroup)
		}

	case model.QuestionCloze:
		safe.Text = maskBlanks(q.Text, q.ClozeWords)
		var bank []string
		for _, w := range q.ClozeWords {
			if !w.IsBlank {
				continue
			}
			safe.ClozeWords = append(safe.ClozeWords, dto.TestClozeWordDTO{
				ID:       w.ID,
				Position: w.Position,
				IsBlank:  true,
			})
			bank = append(bank, w.Word)
		}
		rand.Shuffle(len(bank), func(i, j int) {
			bank[i], bank[j] = bank[j], bank[i]
		})
		safe.Options = bank

	case model.QuestionComprehension:
		safe.Paragraph = q.Paragraph
		for _, sub := range q.ComprehensionQuestions {
			safeSub := dto.TestComprehensionQuestionDTO{ID: sub.ID, Question: sub.Question}
			for _, opt := range sub.Options {
				safeSub.Options = append(safeSub.Options, dto.OptionDTO{ID: opt.ID, Text: opt.Text})
			}
			safe.ComprehensionQuestions = append(safe.ComprehensionQuestions, safeSub)
		}
	}

	return safe
}

// maskBlanks replaces every word equal to a blank word with BlankToken.
// Matching is by word value, so a non-blank occurrence of a blank word is
// masked too; fixtures shared with the authoring client rely on this.
func maskBlanks(text string, words []model.ClozeWord) string {
	fields := strings.Fields(text)
	for i, field := range fields {
		for _, w := range words {
			if w.IsBlank && w.Word == field {
				fields[i] = BlankToken
				break
			}
		}
	}
	return strings.Join(fields, " ")
}
