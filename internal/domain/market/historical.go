package market

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/employeah/employeah/internal/domain"
)

// recentMonths is the exclusion window for retrospective reports: a
// posting inside the last three calendar months belongs to the "current"
// views and never appears in historical output.
const recentMonths = 3

// HistoricalParams select postings for HistoricalStats.
type HistoricalParams struct {
	Job      string
	Location string
}

type periodAgg struct {
	anchor time.Time
	jobs   int
	skills *counter
}

// halfYearAnchor returns the first day of the half-year containing d.
func halfYearAnchor(d time.Time) time.Time {
	start := time.January
	if d.Month() > time.June {
		start = time.July
	}
	return time.Date(d.Year(), start, 1, 0, 0, 0, 0, time.UTC)
}

// halfYearLabel formats a half-year anchor as "YYYY-01 to YYYY-06" or
// "YYYY-07 to YYYY-12".
func halfYearLabel(anchor time.Time) string {
	end := anchor.Month() + 5
	return fmt.Sprintf("%d-%02d to %d-%02d", anchor.Year(), anchor.Month(), anchor.Year(), end)
}

// HistoricalStats reports skill demand for a job title across half-year
// periods, considering only postings strictly older than the recent
// window. Periods come back oldest first; each period's skill
// percentages use that period's own postings count as denominator.
func (s *Service) HistoricalStats(ctx context.Context, p HistoricalParams) (domain.HistoricalResult, error) {
	_ = ctx

	result := domain.HistoricalResult{
		Job:      p.Job,
		Location: p.Location,
		Periods:  []domain.PeriodStats{},
	}

	cutoff := s.clock().AddDate(0, -recentMonths, 0)
	periods := make(map[time.Time]*periodAgg)
	for _, post := range s.catalog.Postings() {
		if !postedBefore(post, cutoff) {
			continue
		}
		if !matchTitle(post, p.Job) || !matchLocation(post, p.Location) {
			continue
		}

		anchor := halfYearAnchor(post.DatePosted.Time)
		agg := periods[anchor]
		if agg == nil {
			agg = &periodAgg{anchor: anchor, skills: newCounter()}
			periods[anchor] = agg
		}
		agg.jobs++
		for _, skill := range post.Skills {
			agg.skills.add(skill)
		}
	}

	anchors := make([]time.Time, 0, len(periods))
	for anchor := range periods {
		anchors = append(anchors, anchor)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Before(anchors[j]) })

	for _, anchor := range anchors {
		agg := periods[anchor]
		result.Periods = append(result.Periods, domain.PeriodStats{
			Period:    halfYearLabel(anchor),
			JobsCount: agg.jobs,
			Skills:    skillStats(agg.skills, agg.jobs),
		})
	}

	s.logger.Debug("historical stats", "job", p.Job, "location", p.Location, "periods", len(result.Periods))
	return result, nil
}
