// Package scoring holds the two pure functions at the heart of the service:
// scoring a submission against a form's answer key and sanitizing a form for
// test-takers. Both are deterministic given their inputs (the word-bank
// shuffle aside), hold no state and are safe to call concurrently.
package scoring

import (
	"math"

	"github.com/SHAMIKH-ANWAR/Articulate-form/internal/model"
)

// Result is the outcome of scoring one submission.
type Result struct {
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
}

// Score computes partial credit for a respondent's answers against the
// authoritative question list. MaxScore is the sum of every question's
// points whether answered or not; a question of unknown type still counts
// toward MaxScore but can earn no credit. The accumulated score is rounded
// to 2 decimals, half away from zero.
func Score(questions []model.Question, answers model.AnswerSet) Result {
	var score, maxScore float64
	for _, q := range questions {
		maxScore += q.Points
		switch q.Type {
		case model.QuestionCategorize:
			score += categorizeCredit(q, answers.Categorize(q.ID))
		case model.QuestionCloze:
			score += clozeCredit(q, answers.Cloze(q.ID))
		case model.QuestionComprehension:
			score += comprehensionCredit(q, answers.Comprehension(q.ID))
		}
	}
	return Result{Score: Round2(score), MaxScore: maxScore}
}

// categorizeCredit grants points/itemCount for every item placed into its
// recorded category. Placement is looked up by item text, matching the wire
// format the test page submits.
func categorizeCredit(q model.Question, placed model.CategorizeAnswer) float64 {
	if len(q.CategoryItems) == 0 {
		return 0
	}
	items := q.CategoryItems[0].Items
	if len(items) == 0 {
		// Nothing to score; avoids dividing by zero.
		return 0
	}
	perItem := q.Points / float64(len(items))
	var credit float64
	for _, item := range items {
		category, ok := placed.CategoryOf(item.Text)
		if ok && category != "" && category == item.BelongsTo {
			credit += perItem
		}
	}
	return credit
}

// clozeCredit grants the fraction of blanks answered correctly, multiplied
// by the question's points. Blanks are keyed by position, not id.
func clozeCredit(q model.Question, answered model.ClozeAnswer) float64 {
	var blanks, correct int
	for _, w := range q.ClozeWords {
		if !w.IsBlank {
			continue
		}
		blanks++
		if word, ok := answered.At(w.Position); ok && word == w.Word {
			correct++
		}
	}
	if blanks == 0 {
		return 0
	}
	return q.Points * float64(correct) / float64(blanks)
}

// comprehensionCredit grants the fraction of sub-questions answered with the
// correct option id, multiplied by the question's points.
func comprehensionCredit(q model.Question, chosen model.ComprehensionAnswer) float64 {
	total := len(q.ComprehensionQuestions)
	if total == 0 {
		return 0
	}
	var correct int
	for _, sub := range q.ComprehensionQuestions {
		if optionID, ok := chosen[sub.ID]; ok && optionID == sub.CorrectOptionID {
			correct++
		}
	}
	return q.Points * float64(correct) / float64(total)
}

// Round2 rounds to the nearest 0.01, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Percentage returns round(score/maxScore*100). A max score of zero yields
// 0 rather than a division error; such forms are recorded but unscoreable.
func Percentage(score, maxScore float64) int {
	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(score / maxScore * 100))
}
