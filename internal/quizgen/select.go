package quizgen

import (
	"math/rand"
	"sort"

	"lingo-byte/internal/domain"
)

// Select draws questions from the static bank: one per entry in topics, at
// the requested level. Items whose text appears in avoid are skipped while
// alternatives remain; short cells are padded from adjacent levels, and
// avoided items are reused only when the bank has nothing else left. Always
// returns len(topics) questions.
func Select(level string, topics []string, avoid []string) []domain.Question {
	avoided := make(map[string]bool, len(avoid))
	for _, a := range avoid {
		avoided[a] = true
	}
	used := make(map[string]bool, len(topics))

	levels := append([]string{level}, domain.AdjacentLevels(level)...)

	out := make([]domain.Question, 0, len(topics))
	for _, topic := range topics {
		item, ok := pick(levels, topic, used, avoided, true)
		if !ok {
			// Everything fresh is exhausted; repeating an old question
			// beats serving a short quiz.
			item, ok = pick(levels, topic, used, avoided, false)
		}
		if !ok {
			item, _ = pick(levels, topic, nil, avoided, false)
		}
		used[item.QuestionText] = true
		out = append(out, item)
	}
	return out
}

// pick walks the level preference order for one topic cell and returns the
// first usable item.
func pick(levels []string, topic string, used, avoided map[string]bool, skipAvoided bool) (domain.Question, bool) {
	for _, lvl := range levels {
		for _, item := range bank[lvl][topic] {
			if used != nil && used[item.QuestionText] {
				continue
			}
			if skipAvoided && avoided[item.QuestionText] {
				continue
			}
			return item, true
		}
	}
	return domain.Question{}, false
}

// TopicMix chooses one topic per question for a Mixed quiz. Topics the
// learner scores lower on are proportionally more likely; with no history the
// draw is uniform.
func TopicMix(progress map[string]float64, n int, rng *rand.Rand) []string {
	type weighted struct {
		topic  string
		weight float64
	}

	entries := make([]weighted, 0, len(domain.Topics))
	total := 0.0
	for _, t := range domain.Topics {
		w := 50.0
		if p, ok := progress[t]; ok {
			// A topic at 100% keeps a floor weight so it still shows up
			// occasionally.
			w = 100 - p
			if w < 10 {
				w = 10
			}
		}
		entries = append(entries, weighted{topic: t, weight: w})
		total += w
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		r := rng.Float64() * total
		for _, e := range entries {
			r -= e.weight
			if r <= 0 {
				out[i] = e.topic
				break
			}
		}
		if out[i] == "" {
			out[i] = entries[len(entries)-1].topic
		}
	}
	return out
}

// WeakTopics lists the topics with a recorded average below the threshold,
// weakest first. Fed into the generation prompt as focus areas.
func WeakTopics(progress map[string]float64, threshold float64) []string {
	var weak []string
	for _, t := range domain.Topics {
		if p, ok := progress[t]; ok && p < threshold {
			weak = append(weak, t)
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		return progress[weak[i]] < progress[weak[j]]
	})
	return weak
}
