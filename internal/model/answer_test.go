package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerSetMissingQuestionBehavesAsEmpty(t *testing.T) {
	set := AnswerSet{}

	assert.Empty(t, set.Categorize("q1"))
	assert.Empty(t, set.Cloze("q1"))
	assert.Empty(t, set.Comprehension("q1"))
}

func TestAnswerSetMalformedPayloadBehavesAsEmpty(t *testing.T) {
	set := AnswerSet{
		"q1": json.RawMessage(`"not an object"`),
		"q2": json.RawMessage(`{"truncated":`),
	}

	assert.Empty(t, set.Categorize("q1"))
	assert.Empty(t, set.Cloze("q2"))
}

func TestAnswerSetDecodesPerType(t *testing.T) {
	set := AnswerSet{
		"cat":  json.RawMessage(`{"Fruits":["Apple"],"Vegetables":["Carrot"]}`),
		"clz":  json.RawMessage(`{"0":"Go","3":"concise"}`),
		"comp": json.RawMessage(`{"c1":"o1"}`),
	}

	placed := set.Categorize("cat")
	category, ok := placed.CategoryOf("Apple")
	assert.True(t, ok)
	assert.Equal(t, "Fruits", category)

	word, ok := set.Cloze("clz").At(3)
	assert.True(t, ok)
	assert.Equal(t, "concise", word)

	_, ok = set.Cloze("clz").At(1)
	assert.False(t, ok)

	assert.Equal(t, "o1", set.Comprehension("comp")["c1"])
}

func TestCategoryOfDuplicateTextResolvesLexically(t *testing.T) {
	placed := CategorizeAnswer{
		"Zoo":    {"Apple"},
		"Fruits": {"Apple"},
	}

	category, ok := placed.CategoryOf("Apple")
	assert.True(t, ok)
	assert.Equal(t, "Fruits", category)
}

func TestCategoryGroupCategories(t *testing.T) {
	group := CategoryGroup{Category: "Fruits, Vegetables, ,Grains "}
	assert.Equal(t, []string{"Fruits", "Vegetables", "Grains"}, group.Categories())
}
