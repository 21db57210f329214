package gateway

import (
	"fmt"
	"strings"

	"github.com/spigell/edumatch/internal/extract"
)

func decodeProfile(item any, p matchParams) (TeacherProfile, bool) {
	fields, ok := item.(map[string]any)
	if !ok {
		return TeacherProfile{}, false
	}

	var profile TeacherProfile
	if err := extract.Decode(fields, &profile); err != nil {
		return TeacherProfile{}, false
	}

	return withDefaults(profile, p), true
}

// withDefaults trims every field and backfills blanks from the request.
func withDefaults(t TeacherProfile, p matchParams) TeacherProfile {
	return TeacherProfile{
		Name:          orDefault(t.Name, p.subject+" Teacher"),
		Expertise:     orDefault(t.Expertise, p.subject+" Education"),
		Experience:    orDefault(t.Experience, "10+ years"),
		TeachingStyle: orDefault(t.TeachingStyle, "Adaptive and engaging"),
		Availability:  orDefault(t.Availability, "Weekdays"),
		Bio:           orDefault(t.Bio, fmt.Sprintf("Specializes in teaching %s to grade %s students.", p.subject, p.grade)),
	}
}

func placeholderProfiles(p matchParams) []TeacherProfile {
	return []TeacherProfile{
		{
			Name:          p.subject + " Specialist",
			Expertise:     fmt.Sprintf("%s for Grade %s", p.subject, p.grade),
			Experience:    "10+ years",
			TeachingStyle: p.level + " focus with interactive elements",
			Availability:  "Weekdays & Weekends",
			Bio: fmt.Sprintf("Specialized in teaching %s at grade %s with focus on %s difficulty content.",
				p.subject, p.grade, p.level),
		},
		{
			Name:          p.subject + " Mentor",
			Expertise:     p.level + " " + p.subject,
			Experience:    "8+ years",
			TeachingStyle: "Personalized approach",
			Availability:  "Flexible scheduling",
			Bio: fmt.Sprintf("Expert in %s education with special emphasis on %s content for grade %s students.",
				p.subject, p.level, p.grade),
		},
	}
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
