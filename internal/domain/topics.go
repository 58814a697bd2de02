package domain

// TopicMixed asks the server to pick topics, biased to the learner's weak
// areas.
const TopicMixed = "Mixed"

// Topics is the fixed set of quiz topics, in catalog order.
var Topics = []string{"Grammar", "Vocabulary", "Reading", "Tenses", "Pronunciation"}

// IsValidTopic reports whether t is a recognized topic (Mixed excluded).
func IsValidTopic(t string) bool {
	for _, v := range Topics {
		if v == t {
			return true
		}
	}
	return false
}

// TopicInfo describes a catalog entry served by /api/quiz-topics/.
type TopicInfo struct {
	Name      string   `json:"name"`
	Subtopics []string `json:"subtopics"`
	Levels    []string `json:"levels"`
}

// TopicCatalog returns the full topic catalog.
func TopicCatalog() []TopicInfo {
	levels := []string{LevelBeginner, LevelIntermediate, LevelAdvanced}
	return []TopicInfo{
		{Name: "Grammar", Subtopics: []string{"Verb Tenses", "Articles", "Prepositions", "Conditionals", "Passive Voice"}, Levels: levels},
		{Name: "Vocabulary", Subtopics: []string{"Synonyms", "Antonyms", "Idioms", "Phrasal Verbs", "Word Formation"}, Levels: levels},
		{Name: "Reading", Subtopics: []string{"Main Ideas", "Details", "Inference", "Vocabulary in Context"}, Levels: levels},
		{Name: "Tenses", Subtopics: []string{"Present", "Past", "Future", "Perfect Forms"}, Levels: levels},
		{Name: "Pronunciation", Subtopics: []string{"Stress", "Silent Letters", "Minimal Pairs", "Intonation"}, Levels: levels},
		{Name: TopicMixed, Subtopics: []string{"All topics combined"}, Levels: levels},
	}
}
