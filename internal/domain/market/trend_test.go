package market

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/employeah/employeah/internal/domain"
)

func TestSkillTrendDailyBuckets(t *testing.T) {
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.August, 27)),
		posting(2, "Data Scientist", "Athens", []string{"SQL"}, domain.NewDate(2026, time.August, 27)),
		posting(3, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.August, 29)),
	}
	svc := newTestService(t, postings, nil)

	points, err := svc.SkillTrend(context.Background(), TrendParams{Skill: "Python", Window: "1w"})
	if err != nil {
		t.Fatalf("SkillTrend: %v", err)
	}

	want := []domain.TrendPoint{
		{X: "27/08/2026", Y: 50.0},
		{X: "29/08/2026", Y: 100.0},
	}
	if len(points) != len(want) {
		t.Fatalf("points = %+v, want %+v", points, want)
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("points[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestSkillTrendWeeklyAnchors(t *testing.T) {
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.August, 3)),
		posting(2, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.August, 7)),
		posting(3, "Data Scientist", "Athens", []string{"SQL"}, domain.NewDate(2026, time.August, 10)),
		posting(4, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.August, 30)),
	}
	svc := newTestService(t, postings, nil)

	points, err := svc.SkillTrend(context.Background(), TrendParams{Skill: "Python", Window: "1m"})
	if err != nil {
		t.Fatalf("SkillTrend: %v", err)
	}

	// Weekly anchors fall on days 1, 8, 15, 22 and 29 of the month.
	want := []domain.TrendPoint{
		{X: "01/08/2026", Y: 100.0},
		{X: "08/08/2026", Y: 0.0},
		{X: "29/08/2026", Y: 100.0},
	}
	if len(points) != len(want) {
		t.Fatalf("points = %+v, want %+v", points, want)
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("points[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestSkillTrendMonthlyBucketsForAll(t *testing.T) {
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2025, time.March, 14)),
		posting(2, "Data Scientist", "Athens", []string{"SQL"}, domain.NewDate(2025, time.March, 20)),
		posting(3, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.January, 2)),
	}
	svc := newTestService(t, postings, nil)

	points, err := svc.SkillTrend(context.Background(), TrendParams{Skill: "Python"})
	if err != nil {
		t.Fatalf("SkillTrend: %v", err)
	}

	want := []domain.TrendPoint{
		{X: "01/03/2025", Y: 50.0},
		{X: "01/01/2026", Y: 100.0},
	}
	if len(points) != len(want) {
		t.Fatalf("points = %+v, want %+v", points, want)
	}
	for i, p := range points {
		if p != want[i] {
			t.Errorf("points[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestSkillTrendFieldContainment(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 28)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python"}, recent),
		posting(2, "Data Engineer", "Athens", []string{"SQL"}, recent),
		posting(3, "Backend Developer", "Athens", []string{"Python"}, recent),
	}
	svc := newTestService(t, postings, nil)

	points, err := svc.SkillTrend(context.Background(), TrendParams{Skill: "Python", JobField: "data", Window: "1w"})
	if err != nil {
		t.Fatalf("SkillTrend: %v", err)
	}

	// "data" covers both Data titles; the Backend posting is excluded,
	// so 1 of 2 postings in the bucket mention Python.
	if len(points) != 1 {
		t.Fatalf("points = %+v, want a single bucket", points)
	}
	if points[0].Y != 50.0 {
		t.Errorf("points[0].Y = %v, want 50.0", points[0].Y)
	}
}

func TestSkillTrendRejectsUnknownWindow(t *testing.T) {
	svc := newTestService(t, nil, nil)

	_, err := svc.SkillTrend(context.Background(), TrendParams{Skill: "Python", Window: "5y"})
	if !errors.Is(err, ErrUnknownWindow) {
		t.Fatalf("SkillTrend(window=5y) error = %v, want ErrUnknownWindow", err)
	}
}

func TestJobFieldsBySkill(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 28)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"SQL"}, recent),
		posting(2, "Data Scientist", "Athens", []string{"SQL"}, recent),
		posting(3, "Data Analyst", "Athens", []string{"SQL"}, recent),
		posting(4, "Data Analyst", "Athens", []string{"Excel"}, recent),
		posting(5, "Backend Developer", "Athens", []string{"Java"}, recent),
	}
	svc := newTestService(t, postings, nil)

	fields, err := svc.JobFieldsBySkill(context.Background(), FieldParams{Skill: "SQL"})
	if err != nil {
		t.Fatalf("JobFieldsBySkill: %v", err)
	}

	// Backend Developer has zero SQL postings and is dropped entirely.
	want := []domain.FieldStat{
		{Title: "Data Scientist", Percentage: 100.0},
		{Title: "Data Analyst", Percentage: 50.0},
	}
	if len(fields) != len(want) {
		t.Fatalf("fields = %+v, want %+v", fields, want)
	}
	for i, f := range fields {
		if f != want[i] {
			t.Errorf("fields[%d] = %+v, want %+v", i, f, want[i])
		}
	}
}

func TestJobFieldsBySkillHonorsLimit(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 28)
	titles := []string{"A", "B", "C", "D", "E", "F", "G"}
	var postings []domain.JobPosting
	for i, title := range titles {
		postings = append(postings, posting(i+1, title, "Athens", []string{"Go"}, recent))
	}
	svc := newTestService(t, postings, nil)

	fields, err := svc.JobFieldsBySkill(context.Background(), FieldParams{Skill: "Go"})
	if err != nil {
		t.Fatalf("JobFieldsBySkill: %v", err)
	}
	if len(fields) != 5 {
		t.Errorf("default limit: got %d fields, want 5", len(fields))
	}

	fields, err = svc.JobFieldsBySkill(context.Background(), FieldParams{Skill: "Go", Limit: 2})
	if err != nil {
		t.Fatalf("JobFieldsBySkill: %v", err)
	}
	if len(fields) != 2 {
		t.Errorf("explicit limit: got %d fields, want 2", len(fields))
	}
}
