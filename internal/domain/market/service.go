package market

import (
	"context"
	"fmt"
	"time"

	"github.com/employeah/employeah/internal/domain"
	"github.com/employeah/employeah/pkg/logging"
)

// Service is the query façade over a Catalog. It is safe for concurrent
// use: the catalog is read-only and the service keeps no per-query state.
type Service struct {
	catalog Catalog
	logger  *logging.Logger
	clock   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source; relative windows and the
// historical cutoff are computed against it. Tests inject fixed clocks.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService builds the façade from a catalog and options.
func NewService(catalog Catalog, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("market.Service: catalog is required")
	}

	s := &Service{
		catalog: catalog,
		logger:  logging.NewNop(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// JobSearchParams select the posting universe for SearchByJob and
// SkillDistribution. Empty fields are pass-throughs.
type JobSearchParams struct {
	Job      string
	Location string
	Window   string
}

// SearchByJob reports which skills a job title requires. The percentage
// answers "of all matched postings, what fraction mention this skill"
// (postings-total denominator), so percentages may sum past 100.
func (s *Service) SearchByJob(ctx context.Context, p JobSearchParams) (domain.JobSearchResult, error) {
	_ = ctx

	window, err := ParseWindow(p.Window)
	if err != nil {
		return domain.JobSearchResult{}, err
	}

	result := domain.JobSearchResult{
		Job:      p.Job,
		Location: p.Location,
		Skills:   []domain.SkillStat{},
	}

	cutoff, bounded := window.Cutoff(s.clock())
	skills := newCounter()
	for _, post := range s.catalog.Postings() {
		if bounded && !postedSince(post, cutoff) {
			continue
		}
		if !matchTitle(post, p.Job) || !matchLocation(post, p.Location) {
			continue
		}
		result.TotalJobs++
		for _, skill := range post.Skills {
			skills.add(skill)
		}
	}

	result.Skills = skillStats(skills, result.TotalJobs)
	s.logger.Debug("search by job", "job", p.Job, "location", p.Location, "window", string(window), "total_jobs", result.TotalJobs)
	return result, nil
}

// SkillDistribution is the pie-chart sibling of SearchByJob: the same
// universe, but percentages use the mentions-total denominator so every
// skill's share is mutually exclusive and the shares sum to 100.
func (s *Service) SkillDistribution(ctx context.Context, p JobSearchParams) (domain.SkillDistributionResult, error) {
	_ = ctx

	window, err := ParseWindow(p.Window)
	if err != nil {
		return domain.SkillDistributionResult{}, err
	}

	result := domain.SkillDistributionResult{
		Job:      p.Job,
		Location: p.Location,
		Skills:   []domain.SkillStat{},
	}

	cutoff, bounded := window.Cutoff(s.clock())
	skills := newCounter()
	mentions := 0
	for _, post := range s.catalog.Postings() {
		if bounded && !postedSince(post, cutoff) {
			continue
		}
		if !matchTitle(post, p.Job) || !matchLocation(post, p.Location) {
			continue
		}
		result.TotalJobs++
		for _, skill := range post.Skills {
			skills.add(skill)
			mentions++
		}
	}

	result.Skills = skillStats(skills, mentions)
	return result, nil
}

// SkillSearchParams select postings for SearchBySkills.
type SkillSearchParams struct {
	Skills   []string
	Location string
}

// SearchBySkills finds job titles demanding any of the user's skills.
// The denominator is the matched subset itself: of all postings wanting
// at least one of these skills, the fraction carrying each title.
func (s *Service) SearchBySkills(ctx context.Context, p SkillSearchParams) (domain.SkillSearchResult, error) {
	_ = ctx

	result := domain.SkillSearchResult{
		UserSkills: p.Skills,
		Location:   p.Location,
		Jobs:       []domain.TitleStat{},
	}
	if result.UserSkills == nil {
		result.UserSkills = []string{}
	}
	if len(p.Skills) == 0 {
		return result, nil
	}

	titles := newCounter()
	for _, post := range s.catalog.Postings() {
		if !matchLocation(post, p.Location) || !hasAnySkill(post, p.Skills) {
			continue
		}
		result.TotalJobs++
		titles.add(post.Title)
	}

	result.Jobs = titleStats(titles, result.TotalJobs)
	s.logger.Debug("search by skills", "skills", p.Skills, "location", p.Location, "total_jobs", result.TotalJobs)
	return result, nil
}
