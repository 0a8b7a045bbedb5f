// game/questions.go
package game

import (
	"encoding/json"
	"math/rand"
)

// Question is a single trivia question as stored in the catalog.
type Question struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Hints    []string `json:"hints"`
}

// ScoredQuestion is a question annotated with its difficulty group and
// the points it is worth.
type ScoredQuestion struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Hints      []string `json:"hints"`
	Difficulty string   `json:"difficulty"`
	Points     int      `json:"points"`
}

// DifficultyGroup is one difficulty bucket of the rendered question set.
type DifficultyGroup struct {
	Difficulty string           `json:"difficulty"`
	Questions  []ScoredQuestion `json:"questions"`
}

// DifficultyPoints maps a difficulty label to its point value.
func DifficultyPoints(difficulty string) int {
	switch difficulty {
	case "easy":
		return 10
	case "medium":
		return 20
	case "hard":
		return 30
	case "impossible":
		return 50
	default:
		return 10
	}
}

// flatQuestion is the legacy catalog shape: a bare list of questions,
// each carrying its own difficulty field.
type flatQuestion struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Hints      []string `json:"hints"`
	Difficulty string   `json:"difficulty"`
}

// ExtractQuestions flattens a catalog entry into scored questions. An
// entry is one of three shapes: a map from difficulty to a question
// list, a map from difficulty to a single question, or a legacy flat
// list. The shape is resolved here, once; anything unrecognized yields
// nil and the caller redirects instead of erroring.
func ExtractQuestions(entry json.RawMessage) []ScoredQuestion {
	var byDifficulty map[string]json.RawMessage
	if err := json.Unmarshal(entry, &byDifficulty); err == nil {
		var questions []ScoredQuestion
		for difficulty, value := range byDifficulty {
			points := DifficultyPoints(difficulty)

			var list []Question
			if err := json.Unmarshal(value, &list); err == nil {
				for _, q := range list {
					if q.Question == "" {
						continue
					}
					questions = append(questions, scored(q, difficulty, points))
				}
				continue
			}

			var single Question
			if err := json.Unmarshal(value, &single); err == nil && single.Question != "" {
				questions = append(questions, scored(single, difficulty, points))
			}
		}
		return questions
	}

	var flat []flatQuestion
	if err := json.Unmarshal(entry, &flat); err == nil {
		var questions []ScoredQuestion
		for _, item := range flat {
			if item.Question == "" {
				continue
			}
			difficulty := item.Difficulty
			if difficulty == "" {
				difficulty = "easy"
			}
			questions = append(questions, ScoredQuestion{
				Question:   item.Question,
				Answer:     item.Answer,
				Hints:      hintsOrEmpty(item.Hints),
				Difficulty: difficulty,
				Points:     DifficultyPoints(difficulty),
			})
		}
		return questions
	}

	return nil
}

func scored(q Question, difficulty string, points int) ScoredQuestion {
	return ScoredQuestion{
		Question:   q.Question,
		Answer:     q.Answer,
		Hints:      hintsOrEmpty(q.Hints),
		Difficulty: difficulty,
		Points:     points,
	}
}

func hintsOrEmpty(hints []string) []string {
	if hints == nil {
		return []string{}
	}
	return hints
}

// Sample draws min(n, len(questions)) questions uniformly at random
// without replacement. Result order is the draw order.
func Sample(questions []ScoredQuestion, n int) []ScoredQuestion {
	shuffled := make([]ScoredQuestion, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// GroupByDifficulty buckets questions by difficulty, preserving the
// order difficulties are first seen in the sampled draw.
func GroupByDifficulty(questions []ScoredQuestion) []DifficultyGroup {
	index := map[string]int{}
	var groups []DifficultyGroup
	for _, q := range questions {
		i, ok := index[q.Difficulty]
		if !ok {
			i = len(groups)
			index[q.Difficulty] = i
			groups = append(groups, DifficultyGroup{Difficulty: q.Difficulty})
		}
		groups[i].Questions = append(groups[i].Questions, q)
	}
	return groups
}
