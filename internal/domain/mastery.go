package domain

import "sort"

// Mastery score bounds and the score assumed for topics with no history.
const (
	MinMasteryScore     = 0
	MaxMasteryScore     = 100
	NeutralMasteryScore = 50
)

// MasteryMap holds per-topic mastery scores keyed by subject then topic.
// The scheduler only reads it.
type MasteryMap map[string]map[string]int

// Average returns the arithmetic mean of all recorded topic scores for the
// subject. ok is false when nothing is recorded.
func (m MasteryMap) Average(subject string) (avg float64, ok bool) {
	topics := m[subject]
	if len(topics) == 0 {
		return 0, false
	}
	total := 0
	for _, score := range topics {
		total += score
	}
	return float64(total) / float64(len(topics)), true
}

// Weakest returns the topic with the lowest recorded score for the subject.
// Ties resolve to the lexicographically smallest topic name so that the
// result does not depend on map iteration order.
func (m MasteryMap) Weakest(subject string) (topic string, score int, ok bool) {
	topics := m[subject]
	if len(topics) == 0 {
		return "", 0, false
	}

	names := make([]string, 0, len(topics))
	for name := range topics {
		names = append(names, name)
	}
	sort.Strings(names)

	topic, score = names[0], topics[names[0]]
	for _, name := range names[1:] {
		if topics[name] < score {
			topic, score = name, topics[name]
		}
	}
	return topic, score, true
}

// Set records a score, allocating the subject entry if needed.
func (m MasteryMap) Set(subject, topic string, score int) {
	if m[subject] == nil {
		m[subject] = make(map[string]int)
	}
	m[subject][topic] = ClampMastery(score)
}

// Validate checks every score lies in [0,100].
func (m MasteryMap) Validate() error {
	for subject, topics := range m {
		for topic, score := range topics {
			if score < MinMasteryScore || score > MaxMasteryScore {
				return NewValidationError(
					"mastery."+subject+"."+topic,
					"must be between 0 and 100",
					ErrInvalidMastery,
				)
			}
		}
	}
	return nil
}

// ClampMastery bounds a score to [0,100].
func ClampMastery(score int) int {
	if score < MinMasteryScore {
		return MinMasteryScore
	}
	if score > MaxMasteryScore {
		return MaxMasteryScore
	}
	return score
}
