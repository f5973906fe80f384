package market

import (
	"context"
	"sort"
	"time"

	"github.com/employeah/employeah/internal/domain"
)

// TrendParams select postings for SkillTrend. JobField narrows by title
// containment (not exact match), so "Data" covers Data Scientist and
// Data Engineer alike.
type TrendParams struct {
	Skill    string
	JobField string
	Location string
	Window   string
}

type trendBucket struct {
	total     int
	withSkill int
}

// bucketAnchor maps a posting date to its bucket's first day. Short
// windows bucket daily, month-scale windows weekly (fixed anchor days
// 1, 8, 15, 22, 29), everything else by calendar month.
func bucketAnchor(w Window, d time.Time) time.Time {
	switch w {
	case WindowWeek, WindowTwoWeeks:
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	case WindowMonth, WindowQuarter:
		weekStart := (d.Day()-1)/7*7 + 1
		return time.Date(d.Year(), d.Month(), weekStart, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// SkillTrend computes one point per populated time bucket: the share of
// postings in that bucket requiring the skill. The denominator is
// bucket-local: total postings in the bucket after the field/location
// filters but before the skill filter, recomputed per bucket.
//
// Points come back chronologically sorted by the underlying date, with
// DD/MM/YYYY labels (monthly buckets label their first day).
func (s *Service) SkillTrend(ctx context.Context, p TrendParams) ([]domain.TrendPoint, error) {
	_ = ctx

	window, err := ParseWindow(p.Window)
	if err != nil {
		return nil, err
	}

	cutoff, bounded := window.Cutoff(s.clock())
	buckets := make(map[time.Time]*trendBucket)
	for _, post := range s.catalog.Postings() {
		if bounded && !postedSince(post, cutoff) {
			continue
		}
		if !matchField(post, p.JobField) || !matchLocation(post, p.Location) {
			continue
		}

		anchor := bucketAnchor(window, post.DatePosted.Time)
		b := buckets[anchor]
		if b == nil {
			b = &trendBucket{}
			buckets[anchor] = b
		}
		b.total++
		if hasSkill(post, p.Skill) {
			b.withSkill++
		}
	}

	anchors := make([]time.Time, 0, len(buckets))
	for anchor := range buckets {
		anchors = append(anchors, anchor)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Before(anchors[j]) })

	points := make([]domain.TrendPoint, 0, len(anchors))
	for _, anchor := range anchors {
		b := buckets[anchor]
		points = append(points, domain.TrendPoint{
			X: anchor.Format("02/01/2006"),
			Y: percentage(b.withSkill, b.total),
		})
	}

	s.logger.Debug("skill trend", "skill", p.Skill, "job_field", p.JobField, "window", string(window), "points", len(points))
	return points, nil
}

// FieldParams select postings for JobFieldsBySkill.
type FieldParams struct {
	Skill    string
	Location string
	Window   string
	Limit    int
}

// JobFieldsBySkill ranks job titles by how often they require a skill:
// for each title, (postings of that title with the skill) / (postings of
// that title) × 100. Zero-percentage titles are dropped, the rest sorted
// descending and truncated to Limit (default 5).
func (s *Service) JobFieldsBySkill(ctx context.Context, p FieldParams) ([]domain.FieldStat, error) {
	_ = ctx

	window, err := ParseWindow(p.Window)
	if err != nil {
		return nil, err
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 5
	}

	cutoff, bounded := window.Cutoff(s.clock())
	totals := newCounter()
	withSkill := newCounter()
	for _, post := range s.catalog.Postings() {
		if bounded && !postedSince(post, cutoff) {
			continue
		}
		if !matchLocation(post, p.Location) {
			continue
		}
		totals.add(post.Title)
		if hasSkill(post, p.Skill) {
			withSkill.add(post.Title)
		}
	}

	fields := make([]domain.FieldStat, 0, withSkill.len())
	for _, title := range totals.order {
		matched := withSkill.get(title)
		if matched == 0 {
			continue
		}
		fields = append(fields, domain.FieldStat{
			Title:      title,
			Percentage: percentage(matched, totals.get(title)),
		})
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Percentage > fields[j].Percentage
	})

	if len(fields) > limit {
		fields = fields[:limit]
	}
	return fields, nil
}
