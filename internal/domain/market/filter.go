package market

import (
	"strings"
	"time"

	"github.com/employeah/employeah/internal/domain"
)

// Predicate filters over a single posting. Each filter treats an empty
// query argument as a pass-through so multi-criteria queries compose
// freely; filters combine by logical AND.
//
// Matching policy: job titles match exactly (case-insensitive), job
// fields and locations by containment, and posting skills by exact
// case-insensitive equality. Substring skill matching is reserved for
// the free-text course catalog.

func matchTitle(p domain.JobPosting, title string) bool {
	return title == "" || strings.EqualFold(p.Title, title)
}

func matchField(p domain.JobPosting, field string) bool {
	return field == "" || strings.Contains(strings.ToLower(p.Title), strings.ToLower(field))
}

func matchLocation(p domain.JobPosting, location string) bool {
	return location == "" || strings.Contains(strings.ToLower(p.Location), strings.ToLower(location))
}

func hasSkill(p domain.JobPosting, skill string) bool {
	for _, s := range p.Skills {
		if strings.EqualFold(s, skill) {
			return true
		}
	}
	return false
}

func hasAnySkill(p domain.JobPosting, skills []string) bool {
	for _, want := range skills {
		if hasSkill(p, want) {
			return true
		}
	}
	return false
}

// postedSince admits postings on or after the cutoff.
func postedSince(p domain.JobPosting, cutoff time.Time) bool {
	return !p.DatePosted.Time.Before(cutoff)
}

// postedBefore admits strictly older postings; used by retrospective
// queries that exclude the recent window entirely.
func postedBefore(p domain.JobPosting, cutoff time.Time) bool {
	return p.DatePosted.Time.Before(cutoff)
}
