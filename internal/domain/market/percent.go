package market

import (
	"math"

	"github.com/employeah/employeah/internal/domain"
)

// round1 rounds to one decimal place, half away from zero. Rounding is
// applied exactly once, at the final division; intermediate values stay
// unrounded.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// percentage converts a count into a rounded percentage of total.
// A zero total yields 0, matching the empty-result-is-success contract.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(count) / float64(total) * 100)
}

// skillStats converts a skill counter into ordered stats against the
// given denominator (postings-total or mentions-total, per the caller).
func skillStats(c *counter, denominator int) []domain.SkillStat {
	out := make([]domain.SkillStat, 0, c.len())
	for _, kc := range c.byCountDesc() {
		out = append(out, domain.SkillStat{
			Name:       kc.key,
			Count:      kc.count,
			Percentage: percentage(kc.count, denominator),
		})
	}
	return out
}

// titleStats is skillStats for title counters.
func titleStats(c *counter, denominator int) []domain.TitleStat {
	out := make([]domain.TitleStat, 0, c.len())
	for _, kc := range c.byCountDesc() {
		out = append(out, domain.TitleStat{
			Title:      kc.key,
			Count:      kc.count,
			Percentage: percentage(kc.count, denominator),
		})
	}
	return out
}
