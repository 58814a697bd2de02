package quizgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"lingo-byte/internal/domain"
)

// minPassageLength is the shortest acceptable shared Reading passage.
const minPassageLength = 50

var (
	thinkBlockRe    = regexp.MustCompile(`(?s)<think>.*?</think>`)
	codeFenceRe     = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

type generatedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Topic         string   `json:"topic"`
	Difficulty    string   `json:"difficulty"`
	Passage       string   `json:"passage"`
}

type generatedQuiz struct {
	Questions []generatedQuestion `json:"questions"`
}

// Parse extracts and validates the questions from raw model text. Model
// output is untrusted: the extractor tolerates surrounding prose, reasoning
// tags, markdown fences and trailing commas, but semantic violations are
// rejected, never coerced.
func Parse(raw string, p PromptParams) ([]domain.Question, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var quiz generatedQuiz
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		// Some models answer with a bare array instead of the wrapper
		// object.
		var items []generatedQuestion
		if arrErr := json.Unmarshal([]byte(payload), &items); arrErr != nil {
			return nil, fmt.Errorf("response is not valid JSON: %v", err)
		}
		quiz.Questions = items
	}

	if err := validate(quiz.Questions, p); err != nil {
		return nil, err
	}

	questions := make([]domain.Question, len(quiz.Questions))
	for i, g := range quiz.Questions {
		questions[i] = domain.Question{
			QuestionText:  strings.TrimSpace(g.Question),
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   strings.TrimSpace(g.Explanation),
			Topic:         g.Topic,
			Difficulty:    p.Level,
			Passage:       strings.TrimSpace(g.Passage),
		}
	}
	return questions, nil
}

// extractJSON strips reasoning tags and markdown fences, then cuts out the
// outermost JSON value.
func extractJSON(raw string) (string, error) {
	cleaned := thinkBlockRe.ReplaceAllString(raw, "")
	if m := codeFenceRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = m[1]
	}
	cleaned = strings.TrimSpace(cleaned)

	start := strings.IndexAny(cleaned, "{[")
	if start == -1 {
		return "", fmt.Errorf("no JSON found in response")
	}
	var end int
	if cleaned[start] == '{' {
		end = strings.LastIndex(cleaned, "}")
	} else {
		end = strings.LastIndex(cleaned, "]")
	}
	if end <= start {
		return "", fmt.Errorf("no JSON found in response")
	}

	payload := cleaned[start : end+1]
	payload = trailingCommaRe.ReplaceAllString(payload, "$1")
	return payload, nil
}

func validate(items []generatedQuestion, p PromptParams) error {
	if len(items) != p.NumQuestions {
		return fmt.Errorf("expected exactly %d questions, got %d", p.NumQuestions, len(items))
	}

	readingPassage := ""
	for i, g := range items {
		n := i + 1
		if strings.TrimSpace(g.Question) == "" {
			return fmt.Errorf("question %d has empty text", n)
		}
		if len(g.Options) != domain.OptionsPerQuestion {
			return fmt.Errorf("question %d must have exactly %d options, got %d", n, domain.OptionsPerQuestion, len(g.Options))
		}
		seen := make(map[string]bool, len(g.Options))
		for _, opt := range g.Options {
			if seen[opt] {
				return fmt.Errorf("question %d has duplicate option %q", n, opt)
			}
			seen[opt] = true
		}
		if !seen[g.CorrectAnswer] {
			return fmt.Errorf("question %d: correct_answer %q is not one of the options", n, g.CorrectAnswer)
		}
		if strings.TrimSpace(g.Explanation) == "" {
			return fmt.Errorf("question %d has no explanation", n)
		}
		if !domain.IsValidTopic(g.Topic) {
			return fmt.Errorf("question %d has unrecognized topic %q", n, g.Topic)
		}
		if g.Difficulty != p.Level {
			return fmt.Errorf("question %d difficulty %q does not match requested level %q", n, g.Difficulty, p.Level)
		}

		passage := strings.TrimSpace(g.Passage)
		if g.Topic == "Reading" {
			if len(passage) <= minPassageLength {
				return fmt.Errorf("question %d is a Reading question but has no usable passage", n)
			}
			if readingPassage == "" {
				readingPassage = passage
			} else if passage != readingPassage {
				return fmt.Errorf("question %d does not share the passage with the other Reading questions", n)
			}
		} else if passage != "" {
			return fmt.Errorf("question %d has a passage but is not a Reading question", n)
		}
	}
	return nil
}
