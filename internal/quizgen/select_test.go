package quizgen

import (
	"math/rand"
	"testing"

	"lingo-byte/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLevels = []string{domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced}

func TestBankCoversEveryCell(t *testing.T) {
	for _, level := range allLevels {
		for _, topic := range domain.Topics {
			cell := bank[level][topic]
			require.GreaterOrEqual(t, len(cell), 4, "%s/%s", level, topic)

			passage := ""
			for _, q := range cell {
				require.NoError(t, q.Validate(), "%s/%s: %s", level, topic, q.QuestionText)
				assert.Equal(t, topic, q.Topic)
				assert.Equal(t, level, q.Difficulty)
				assert.NotEmpty(t, q.Explanation)

				if topic == "Reading" {
					assert.Greater(t, len(q.Passage), minPassageLength)
					if passage == "" {
						passage = q.Passage
					}
					assert.Equal(t, passage, q.Passage, "reading cell shares one passage")
				} else {
					assert.Empty(t, q.Passage)
				}
			}
		}
	}
}

func TestBankHasNoDuplicateQuestions(t *testing.T) {
	seen := make(map[string]string)
	for level, topics := range bank {
		for topic, cell := range topics {
			for _, q := range cell {
				where := level + "/" + topic
				if prev, ok := seen[q.QuestionText]; ok {
					t.Errorf("question %q appears in both %s and %s", q.QuestionText, prev, where)
				}
				seen[q.QuestionText] = where
			}
		}
	}
}

func TestSelectFillsRequestedTopics(t *testing.T) {
	topics := []string{"Grammar", "Vocabulary", "Tenses", "Grammar"}
	questions := Select(domain.LevelBeginner, topics, nil)
	require.Len(t, questions, len(topics))

	seen := make(map[string]bool)
	for i, q := range questions {
		assert.Equal(t, topics[i], q.Topic)
		assert.False(t, seen[q.QuestionText], "duplicate %q", q.QuestionText)
		seen[q.QuestionText] = true
	}
}

func TestSelectSkipsAvoidedQuestions(t *testing.T) {
	avoid := []string{bank[domain.LevelBeginner]["Grammar"][0].QuestionText}
	questions := Select(domain.LevelBeginner, []string{"Grammar", "Grammar"}, avoid)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.NotEqual(t, avoid[0], q.QuestionText)
	}
}

func TestSelectPadsFromAdjacentLevel(t *testing.T) {
	var avoid []string
	for _, q := range bank[domain.LevelBeginner]["Grammar"] {
		avoid = append(avoid, q.QuestionText)
	}

	questions := Select(domain.LevelBeginner, []string{"Grammar", "Grammar"}, avoid)
	require.Len(t, questions, 2)
	for _, q := range questions {
		assert.Equal(t, "Grammar", q.Topic)
		assert.Equal(t, domain.LevelIntermediate, q.Difficulty,
			"with the whole home cell avoided, items come from the adjacent level")
	}
}

func TestSelectReusesOnlyWhenExhausted(t *testing.T) {
	// Beginner Grammar plus its only adjacent level holds 8 fresh items;
	// the 9th request has to repeat one.
	topics := make([]string, 9)
	for i := range topics {
		topics[i] = "Grammar"
	}
	questions := Select(domain.LevelBeginner, topics, nil)
	require.Len(t, questions, 9)

	unique := make(map[string]bool)
	for _, q := range questions {
		unique[q.QuestionText] = true
	}
	assert.Len(t, unique, 8)
}

func TestTopicMixWeightsWeakAreas(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	progress := map[string]float64{
		"Grammar":       0,
		"Vocabulary":    100,
		"Reading":       100,
		"Tenses":        100,
		"Pronunciation": 100,
	}

	mix := TopicMix(progress, 200, rng)
	require.Len(t, mix, 200)

	counts := make(map[string]int)
	for _, topic := range mix {
		require.True(t, domain.IsValidTopic(topic))
		counts[topic]++
	}
	// Grammar carries weight 100 against 10 for each mastered topic.
	assert.Greater(t, counts["Grammar"], 100)
	for _, topic := range []string{"Vocabulary", "Reading", "Tenses", "Pronunciation"} {
		assert.Less(t, counts[topic], counts["Grammar"], topic)
	}
}

func TestTopicMixUniformWithoutHistory(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	mix := TopicMix(nil, 50, rng)
	require.Len(t, mix, 50)
	for _, topic := range mix {
		assert.True(t, domain.IsValidTopic(topic))
	}
}

func TestWeakTopicsSortedWeakestFirst(t *testing.T) {
	progress := map[string]float64{
		"Grammar":    80,
		"Vocabulary": 30,
		"Tenses":     55,
	}
	assert.Equal(t, []string{"Vocabulary", "Tenses"}, WeakTopics(progress, 75))
	assert.Empty(t, WeakTopics(nil, 75))
}
