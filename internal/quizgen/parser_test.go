package quizgen

import (
	"encoding/json"
	"fmt"
	"testing"

	"lingo-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beginnerParams(topics ...string) PromptParams {
	return PromptParams{
		Level:        domain.LevelBeginner,
		Topics:       topics,
		NumQuestions: len(topics),
	}
}

func item(topic, passage string) generatedQuestion {
	return generatedQuestion{
		Question:      "Pick the right option for " + topic,
		Options:       []string{"alpha", "beta", "gamma", "delta"},
		CorrectAnswer: "beta",
		Explanation:   "Beta fits the sentence.",
		Topic:         topic,
		Difficulty:    domain.LevelBeginner,
		Passage:       passage,
	}
}

func payload(items ...generatedQuestion) string {
	raw, _ := json.Marshal(generatedQuiz{Questions: items})
	return string(raw)
}

const testPassage = "Maria takes the early train to the city every weekday and reads a novel on the way."

func TestParseValidResponse(t *testing.T) {
	p := beginnerParams("Grammar", "Vocabulary")
	questions, err := Parse(payload(item("Grammar", ""), item("Vocabulary", "")), p)
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "Grammar", questions[0].Topic)
	assert.Equal(t, "beta", questions[0].CorrectAnswer)
	assert.Equal(t, domain.LevelBeginner, questions[0].Difficulty)
}

func TestParseBareArray(t *testing.T) {
	p := beginnerParams("Grammar")
	raw, _ := json.Marshal([]generatedQuestion{item("Grammar", "")})
	questions, err := Parse(string(raw), p)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestParseToleratesModelNoise(t *testing.T) {
	p := beginnerParams("Grammar")
	raw := fmt.Sprintf(
		"<think>Let me craft a question about verbs.</think>\nSure! Here is your quiz:\n```json\n%s\n```\nHope this helps!",
		payload(item("Grammar", "")))
	questions, err := Parse(raw, p)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestParseStripsTrailingCommas(t *testing.T) {
	p := beginnerParams("Grammar")
	raw := `{"questions": [{
		"question": "Choose one",
		"options": ["a", "b", "c", "d",],
		"correct_answer": "a",
		"explanation": "Because.",
		"topic": "Grammar",
		"difficulty": "beginner",
	},]}`
	questions, err := Parse(raw, p)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestParseRejections(t *testing.T) {
	okItem := item("Grammar", "")

	wrongAnswer := okItem
	wrongAnswer.CorrectAnswer = "epsilon"

	dupOptions := okItem
	dupOptions.Options = []string{"alpha", "alpha", "gamma", "delta"}

	threeOptions := okItem
	threeOptions.Options = []string{"alpha", "beta", "gamma"}

	wrongLevel := okItem
	wrongLevel.Difficulty = domain.LevelAdvanced

	badTopic := okItem
	badTopic.Topic = "Astrology"

	noExplanation := okItem
	noExplanation.Explanation = "  "

	strayPassage := okItem
	strayPassage.Passage = testPassage

	cases := []struct {
		name string
		raw  string
	}{
		{"no JSON at all", "I cannot produce a quiz right now."},
		{"wrong question count", payload(okItem, item("Grammar", ""))},
		{"answer not in options", payload(wrongAnswer)},
		{"duplicate options", payload(dupOptions)},
		{"three options", payload(threeOptions)},
		{"difficulty mismatch", payload(wrongLevel)},
		{"unknown topic", payload(badTopic)},
		{"empty explanation", payload(noExplanation)},
		{"passage on non-reading item", payload(strayPassage)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw, beginnerParams("Grammar"))
			assert.Error(t, err)
		})
	}
}

func TestParseReadingPassageRules(t *testing.T) {
	p := beginnerParams("Reading", "Reading")

	shared := payload(item("Reading", testPassage), item("Reading", testPassage))
	questions, err := Parse(shared, p)
	require.NoError(t, err)
	assert.Equal(t, testPassage, questions[0].Passage)
	assert.Equal(t, testPassage, questions[1].Passage)

	_, err = Parse(payload(item("Reading", ""), item("Reading", testPassage)), p)
	assert.Error(t, err, "reading item without a passage")

	_, err = Parse(payload(item("Reading", "Too short."), item("Reading", "Too short.")), p)
	assert.Error(t, err, "passage below the minimum length")

	other := testPassage + " She gets off at the last stop."
	_, err = Parse(payload(item("Reading", testPassage), item("Reading", other)), p)
	assert.Error(t, err, "reading items must share one passage")
}
