package quizgen

import (
	"fmt"
	"strings"

	"lingo-byte/internal/domain"
)

// PromptParams carries everything the prompt builder needs for one
// generation attempt.
type PromptParams struct {
	Level        string
	Topics       []string // one entry per question, in order
	NumQuestions int
	// AvoidQuestions holds question texts from the user's recent quizzes;
	// the model is told not to repeat them.
	AvoidQuestions []string
	WeakTopics     []string
}

// NeedsPassage reports whether the attempt includes Reading items, which
// require a shared passage.
func (p PromptParams) NeedsPassage() bool {
	for _, t := range p.Topics {
		if t == "Reading" {
			return true
		}
	}
	return false
}

var levelDescriptions = map[string]string{
	domain.LevelBeginner:     "basic English concepts, simple grammar, common vocabulary",
	domain.LevelIntermediate: "more complex grammar structures, intermediate vocabulary, context-dependent questions",
	domain.LevelAdvanced:     "advanced grammar, nuanced vocabulary, complex sentence structures, idiomatic expressions",
}

// BuildPrompt constructs the generation prompt: level, per-question topics,
// avoid-list and the exact JSON schema the parser expects.
func BuildPrompt(p PromptParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert English teacher creating a personalized quiz for a %s level student.\n\n", p.Level)

	if len(p.WeakTopics) > 0 {
		fmt.Fprintf(&b, "Focus especially on these areas where the student needs improvement: %s.\n\n",
			strings.Join(p.WeakTopics, ", "))
	}

	fmt.Fprintf(&b, "Create exactly %d multiple choice questions with these topics, in order:\n", p.NumQuestions)
	for i, t := range p.Topics {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}

	fmt.Fprintf(&b, "\nLevel: %s - %s\n\n", p.Level, levelDescriptions[p.Level])

	b.WriteString("Requirements:\n")
	fmt.Fprintf(&b, "- Every question must be %s level appropriate\n", p.Level)
	b.WriteString("- Each question must have exactly 4 options\n")
	b.WriteString("- The correct_answer must be copied verbatim from the options\n")
	b.WriteString("- Provide a clear explanation for each correct answer\n")
	if p.NeedsPassage() {
		b.WriteString("- All Reading questions must share ONE passage of at least 60 words; put the identical passage text in the \"passage\" field of every Reading question\n")
		b.WriteString("- Questions for other topics must not have a passage field\n")
	}

	if len(p.AvoidQuestions) > 0 {
		b.WriteString("\nDo NOT repeat or closely paraphrase any of these questions the student has already seen:\n")
		for _, q := range p.AvoidQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	fmt.Fprintf(&b, `
Format your response as valid JSON only, with this exact structure:
{
    "questions": [
        {
            "question": "Question text here",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": "Option A",
            "explanation": "Clear explanation of why this is correct",
            "topic": "Grammar",
            "difficulty": "%s"%s
        }
    ]
}

Respond with the JSON object and nothing else.
`, p.Level, passageSchemaHint(p))

	return b.String()
}

func passageSchemaHint(p PromptParams) string {
	if p.NeedsPassage() {
		return ",\n            \"passage\": \"Shared passage text (Reading questions only)\""
	}
	return ""
}

// BuildRetryPrompt tightens the prompt after a rejected attempt by showing
// the model its own output and the specific violation.
func BuildRetryPrompt(p PromptParams, priorOutput, rejectionReason string) string {
	var b strings.Builder

	b.WriteString(BuildPrompt(p))
	b.WriteString("\n\nYour previous attempt was rejected.\n")
	fmt.Fprintf(&b, "Reason: %s\n\n", rejectionReason)
	b.WriteString("Previous output:\n")

	prior := priorOutput
	if len(prior) > 2000 {
		prior = prior[:2000]
	}
	b.WriteString(prior)
	b.WriteString("\n\nFix the problem and respond again with ONLY the JSON object, exactly matching the schema.\n")

	return b.String()
}
