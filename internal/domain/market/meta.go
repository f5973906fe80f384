package market

import (
	"context"
	"sort"
	"strings"

	"github.com/employeah/employeah/internal/domain"
)

// defaultSkillLimit caps skill-name autocomplete responses.
const defaultSkillLimit = 20

// JobTitles lists the distinct job titles in the catalog, sorted.
func (s *Service) JobTitles(ctx context.Context) []string {
	_ = ctx
	return s.distinct(func(p domain.JobPosting) []string { return []string{p.Title} })
}

// Locations lists the distinct posting locations, sorted.
func (s *Service) Locations(ctx context.Context) []string {
	_ = ctx
	return s.distinct(func(p domain.JobPosting) []string { return []string{p.Location} })
}

// SkillNames lists distinct posting skills, sorted, optionally filtered
// by a case-insensitive substring and truncated to limit. Backs the
// skill autocomplete box.
func (s *Service) SkillNames(ctx context.Context, query string, limit int) []string {
	_ = ctx

	if limit <= 0 {
		limit = defaultSkillLimit
	}

	names := s.distinct(func(p domain.JobPosting) []string { return p.Skills })
	if query != "" {
		q := strings.ToLower(query)
		filtered := names[:0]
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), q) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

// Stats summarizes the dataset for the landing page.
func (s *Service) Stats(ctx context.Context) domain.SiteStats {
	_ = ctx
	return domain.SiteStats{
		TotalAnnouncements: len(s.catalog.Postings()),
		TotalCourses:       len(s.catalog.Courses()),
	}
}

func (s *Service) distinct(extract func(domain.JobPosting) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, post := range s.catalog.Postings() {
		for _, value := range extract(post) {
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, value)
		}
	}
	sort.Strings(out)
	return out
}
