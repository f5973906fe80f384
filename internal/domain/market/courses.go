package market

import (
	"context"
	"strings"

	"github.com/employeah/employeah/internal/domain"
)

// defaultCourseLimit caps course recommendations per skill.
const defaultCourseLimit = 5

// CoursesBySkill recommends university courses whose topic list matches
// the skill. Course topics are free text, so this is the one place that
// matches by case-insensitive containment instead of exact equality.
// Courses keep catalog order; there is no ranking. An empty skill yields
// an empty slice, not an error.
func (s *Service) CoursesBySkill(ctx context.Context, skill string, limit int) ([]domain.Course, error) {
	_ = ctx

	if limit <= 0 {
		limit = defaultCourseLimit
	}

	matched := []domain.Course{}
	if strings.TrimSpace(skill) == "" {
		return matched, nil
	}

	want := strings.ToLower(skill)
	for _, course := range s.catalog.Courses() {
		for _, topic := range course.Skills {
			if strings.Contains(strings.ToLower(topic), want) {
				matched = append(matched, course)
				break
			}
		}
		if len(matched) == limit {
			break
		}
	}
	return matched, nil
}
