package market

import (
	"context"
	"sort"

	"github.com/employeah/employeah/internal/domain"
)

const (
	detailsSkillLimit        = 25
	detailsCompanyLimit      = 3
	detailsAnnouncementLimit = 5
)

// DetailsParams select postings for JobTitleDetails. Skills, when
// non-empty, narrow the universe to postings wanting at least one of
// them (the "my skills" drill-down on the title page).
type DetailsParams struct {
	JobTitle string
	Skills   []string
	Location string
	Window   string
}

// JobTitleDetails is the drill-down report for one job title: its top
// skills (postings-total denominator), the companies posting it most,
// and the latest announcements. An empty title yields an empty report.
func (s *Service) JobTitleDetails(ctx context.Context, p DetailsParams) (domain.JobTitleDetails, error) {
	_ = ctx

	result := domain.JobTitleDetails{
		JobTitle:          p.JobTitle,
		TopSkills:         []domain.SkillStat{},
		TopCompanies:      []domain.CompanyStat{},
		LastAnnouncements: []domain.Announcement{},
	}
	if p.JobTitle == "" {
		return result, nil
	}

	window, err := ParseWindow(p.Window)
	if err != nil {
		return domain.JobTitleDetails{}, err
	}

	cutoff, bounded := window.Cutoff(s.clock())
	var universe []domain.JobPosting
	for _, post := range s.catalog.Postings() {
		if bounded && !postedSince(post, cutoff) {
			continue
		}
		if !matchTitle(post, p.JobTitle) || !matchLocation(post, p.Location) {
			continue
		}
		if len(p.Skills) > 0 && !hasAnySkill(post, p.Skills) {
			continue
		}
		universe = append(universe, post)
	}

	result.TotalJobs = len(universe)
	if len(universe) == 0 {
		return result, nil
	}

	skills := newCounter()
	companies := newCounter()
	for _, post := range universe {
		for _, skill := range post.Skills {
			skills.add(skill)
		}
		if post.Company != "" {
			companies.add(post.Company)
		}
	}

	result.TopSkills = skillStats(skills, len(universe))
	if len(result.TopSkills) > detailsSkillLimit {
		result.TopSkills = result.TopSkills[:detailsSkillLimit]
	}

	for _, kc := range companies.byCountDesc() {
		result.TopCompanies = append(result.TopCompanies, domain.CompanyStat{Name: kc.key, Count: kc.count})
		if len(result.TopCompanies) == detailsCompanyLimit {
			break
		}
	}

	sort.SliceStable(universe, func(i, j int) bool {
		return universe[i].DatePosted.Time.After(universe[j].DatePosted.Time)
	})
	for _, post := range universe {
		result.LastAnnouncements = append(result.LastAnnouncements, domain.Announcement{
			ID:      post.ID,
			Title:   post.Title,
			Company: post.Company,
			Date:    post.DatePosted,
			URL:     post.URL,
		})
		if len(result.LastAnnouncements) == detailsAnnouncementLimit {
			break
		}
	}

	return result, nil
}
