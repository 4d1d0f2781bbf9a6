package model

import (
	"encoding/json"
	"sort"
	"strconv"
)

// AnswerSet maps a question id to that question's raw answer payload. The
// payload shape depends on the question type, so decoding is deferred until
// the question is known. A missing or undecodable entry behaves like an
// empty answer; it is never an error.
type AnswerSet map[string]json.RawMessage

// CategorizeAnswer maps a category name to the item texts the respondent
// placed under it.
type CategorizeAnswer map[string][]string

// CategoryOf returns the category the given item text was placed into.
// Categories are checked in lexical order so duplicate item texts resolve
// deterministically.
func (a CategorizeAnswer) CategoryOf(itemText string) (string, bool) {
	for _, category := range sortedKeys(a) {
		for _, text := range a[category] {
			if text == itemText {
				return category, true
			}
		}
	}
	return "", false
}

// ClozeAnswer maps a blank's position (as a decimal string, since JSON
// object keys are strings) to the word the respondent chose.
type ClozeAnswer map[string]string

// At looks up the answer for the blank at the given position.
func (a ClozeAnswer) At(position int) (string, bool) {
	word, ok := a[strconv.Itoa(position)]
	return word, ok
}

// ComprehensionAnswer maps a sub-question id to the chosen option id.
type ComprehensionAnswer map[string]string

// Categorize decodes the payload for a categorize question.
func (s AnswerSet) Categorize(questionID string) CategorizeAnswer {
	var out CategorizeAnswer
	s.decode(questionID, &out)
	return out
}

// Cloze decodes the payload for a cloze question.
func (s AnswerSet) Cloze(questionID string) ClozeAnswer {
	var out ClozeAnswer
	s.decode(questionID, &out)
	return out
}

// Comprehension decodes the payload for a comprehension question.
func (s AnswerSet) Comprehension(questionID string) ComprehensionAnswer {
	var out ComprehensionAnswer
	s.decode(questionID, &out)
	return out
}

func (s AnswerSet) decode(questionID string, out any) {
	raw, ok := s[questionID]
	if !ok {
		return
	}
	// Ignore malformed payloads; the zero map scores every part incorrect.
	_ = json.Unmarshal(raw, out)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
