// Package assessment aggregates the scores of an assessment session.
package assessment

const (
	Beginner     = "Beginner"
	Intermediate = "Intermediate"
	Advanced     = "Advanced"
)

const (
	beginnerCeiling     = 2.0
	intermediateCeiling = 3.5
)

// Level maps the average of scores to a proficiency level. A session without
// scores is Beginner.
func Level(scores []int) string {
	if len(scores) == 0 {
		return Beginner
	}

	total := 0
	for _, score := range scores {
		total += score
	}
	average := float64(total) / float64(len(scores))

	switch {
	case average <= beginnerCeiling:
		return Beginner
	case average <= intermediateCeiling:
		return Intermediate
	default:
		return Advanced
	}
}
