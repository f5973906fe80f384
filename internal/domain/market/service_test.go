package market

import (
	"context"
	"testing"
	"time"

	"github.com/employeah/employeah/internal/domain"
)

// fixedNow anchors all window math in tests.
var fixedNow = time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

type staticCatalog struct {
	postings []domain.JobPosting
	courses  []domain.Course
}

func (c staticCatalog) Postings() []domain.JobPosting { return c.postings }
func (c staticCatalog) Courses() []domain.Course      { return c.courses }

func newTestService(t *testing.T, postings []domain.JobPosting, courses []domain.Course) *Service {
	t.Helper()
	svc, err := NewService(
		staticCatalog{postings: postings, courses: courses},
		WithClock(func() time.Time { return fixedNow }),
	)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func posting(id int, title, location string, skills []string, posted domain.Date) domain.JobPosting {
	return domain.JobPosting{
		ID:         id,
		Title:      title,
		Location:   location,
		Company:    "Acme",
		Skills:     skills,
		DatePosted: posted,
	}
}

func TestNewServiceRequiresCatalog(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("NewService(nil): expected error, got nil")
	}
}

func TestSearchByJob(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python", "SQL"}, recent),
		posting(2, "Data Scientist", "Athens", []string{"Python"}, recent),
		posting(3, "Backend Developer", "Athens", []string{"Java"}, recent),
	}
	svc := newTestService(t, postings, nil)

	result, err := svc.SearchByJob(context.Background(), JobSearchParams{Job: "Data Scientist"})
	if err != nil {
		t.Fatalf("SearchByJob: %v", err)
	}

	if result.TotalJobs != 2 {
		t.Fatalf("TotalJobs = %d, want 2", result.TotalJobs)
	}
	want := []domain.SkillStat{
		{Name: "Python", Count: 2, Percentage: 100.0},
		{Name: "SQL", Count: 1, Percentage: 50.0},
	}
	if len(result.Skills) != len(want) {
		t.Fatalf("Skills = %+v, want %+v", result.Skills, want)
	}
	for i, stat := range result.Skills {
		if stat != want[i] {
			t.Errorf("Skills[%d] = %+v, want %+v", i, stat, want[i])
		}
	}
}

func TestSearchByJobTitleMatchesCaseInsensitive(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python"}, recent),
		posting(2, "Senior Data Scientist", "Athens", []string{"Python"}, recent),
	}
	svc := newTestService(t, postings, nil)

	result, err := svc.SearchByJob(context.Background(), JobSearchParams{Job: "data scientist"})
	if err != nil {
		t.Fatalf("SearchByJob: %v", err)
	}

	// Exact title match: the senior variant must not be included.
	if result.TotalJobs != 1 {
		t.Fatalf("TotalJobs = %d, want 1", result.TotalJobs)
	}
}

func TestSearchByJobLocationContainment(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens, Greece", []string{"Python"}, recent),
		posting(2, "Data Scientist", "Thessaloniki", []string{"SQL"}, recent),
	}
	svc := newTestService(t, postings, nil)

	result, err := svc.SearchByJob(context.Background(), JobSearchParams{Job: "Data Scientist", Location: "athens"})
	if err != nil {
		t.Fatalf("SearchByJob: %v", err)
	}

	if result.TotalJobs != 1 {
		t.Fatalf("TotalJobs = %d, want 1", result.TotalJobs)
	}
	if len(result.Skills) != 1 || result.Skills[0].Name != "Python" {
		t.Fatalf("Skills = %+v, want only Python", result.Skills)
	}
}

func TestSearchByJobWindowFilter(t *testing.T) {
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.August, 28)),
		posting(2, "Data Scientist", "Athens", []string{"SQL"}, domain.NewDate(2026, time.June, 1)),
	}
	svc := newTestService(t, postings, nil)

	tests := []struct {
		window    string
		wantTotal int
	}{
		{window: "1w", wantTotal: 1},
		{window: "1m", wantTotal: 1},
		{window: "3m", wantTotal: 2},
		{window: "all", wantTotal: 2},
		{window: "", wantTotal: 2},
	}
	for _, tt := range tests {
		result, err := svc.SearchByJob(context.Background(), JobSearchParams{Job: "Data Scientist", Window: tt.window})
		if err != nil {
			t.Fatalf("SearchByJob(window=%q): %v", tt.window, err)
		}
		if result.TotalJobs != tt.wantTotal {
			t.Errorf("SearchByJob(window=%q).TotalJobs = %d, want %d", tt.window, result.TotalJobs, tt.wantTotal)
		}
	}
}

func TestSearchByJobRejectsUnknownWindow(t *testing.T) {
	svc := newTestService(t, nil, nil)

	_, err := svc.SearchByJob(context.Background(), JobSearchParams{Window: "5y"})
	if err == nil {
		t.Fatal("SearchByJob(window=5y): expected error, got nil")
	}
}

func TestSearchByJobEmptyMatchIsSuccess(t *testing.T) {
	svc := newTestService(t, nil, nil)

	result, err := svc.SearchByJob(context.Background(), JobSearchParams{Job: "Astronaut"})
	if err != nil {
		t.Fatalf("SearchByJob: %v", err)
	}
	if result.TotalJobs != 0 {
		t.Errorf("TotalJobs = %d, want 0", result.TotalJobs)
	}
	if result.Skills == nil || len(result.Skills) != 0 {
		t.Errorf("Skills = %#v, want empty non-nil slice", result.Skills)
	}
}

func TestSearchByJobIsIdempotent(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python", "SQL"}, recent),
		posting(2, "Data Scientist", "Athens", []string{"Python"}, recent),
	}
	svc := newTestService(t, postings, nil)

	first, err := svc.SearchByJob(context.Background(), JobSearchParams{Job: "Data Scientist"})
	if err != nil {
		t.Fatalf("SearchByJob: %v", err)
	}
	second, err := svc.SearchByJob(context.Background(), JobSearchParams{Job: "Data Scientist"})
	if err != nil {
		t.Fatalf("SearchByJob (repeat): %v", err)
	}

	if first.TotalJobs != second.TotalJobs || len(first.Skills) != len(second.Skills) {
		t.Fatalf("repeated query diverged: %+v vs %+v", first, second)
	}
	for i := range first.Skills {
		if first.Skills[i] != second.Skills[i] {
			t.Errorf("Skills[%d] diverged: %+v vs %+v", i, first.Skills[i], second.Skills[i])
		}
	}
}

func TestSkillDistributionSumsToHundred(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python", "SQL", "Spark"}, recent),
		posting(2, "Data Scientist", "Athens", []string{"Python", "SQL"}, recent),
		posting(3, "Data Scientist", "Athens", []string{"Python"}, recent),
	}
	svc := newTestService(t, postings, nil)

	result, err := svc.SkillDistribution(context.Background(), JobSearchParams{Job: "Data Scientist"})
	if err != nil {
		t.Fatalf("SkillDistribution: %v", err)
	}

	if result.TotalJobs != 3 {
		t.Fatalf("TotalJobs = %d, want 3", result.TotalJobs)
	}

	// 6 mentions total: Python 3, SQL 2, Spark 1.
	want := []domain.SkillStat{
		{Name: "Python", Count: 3, Percentage: 50.0},
		{Name: "SQL", Count: 2, Percentage: 33.3},
		{Name: "Spark", Count: 1, Percentage: 16.7},
	}
	if len(result.Skills) != len(want) {
		t.Fatalf("Skills = %+v, want %+v", result.Skills, want)
	}
	var sum float64
	for i, stat := range result.Skills {
		if stat != want[i] {
			t.Errorf("Skills[%d] = %+v, want %+v", i, stat, want[i])
		}
		sum += stat.Percentage
	}
	if sum < 99.5 || sum > 100.5 {
		t.Errorf("percentages sum to %.1f, want ~100", sum)
	}
}

func TestSearchBySkills(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python", "SQL"}, recent),
		posting(2, "Data Scientist", "Athens", []string{"Python"}, recent),
		posting(3, "Backend Developer", "Athens", []string{"Java"}, recent),
	}
	svc := newTestService(t, postings, nil)

	result, err := svc.SearchBySkills(context.Background(), SkillSearchParams{Skills: []string{"Python"}})
	if err != nil {
		t.Fatalf("SearchBySkills: %v", err)
	}

	if result.TotalJobs != 2 {
		t.Fatalf("TotalJobs = %d, want 2", result.TotalJobs)
	}
	if len(result.Jobs) != 1 {
		t.Fatalf("Jobs = %+v, want a single title", result.Jobs)
	}
	got := result.Jobs[0]
	if got.Title != "Data Scientist" || got.Count != 2 || got.Percentage != 100.0 {
		t.Errorf("Jobs[0] = %+v, want Data Scientist count=2 percentage=100", got)
	}
}

func TestSearchBySkillsEmptyListIsSuccess(t *testing.T) {
	svc := newTestService(t, []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"Python"}, domain.NewDate(2026, time.August, 20)),
	}, nil)

	result, err := svc.SearchBySkills(context.Background(), SkillSearchParams{})
	if err != nil {
		t.Fatalf("SearchBySkills: %v", err)
	}
	if result.TotalJobs != 0 || len(result.Jobs) != 0 {
		t.Errorf("empty skill list must match nothing, got %+v", result)
	}
	if result.UserSkills == nil || result.Jobs == nil {
		t.Errorf("result slices must be non-nil: %#v", result)
	}
}

func TestSearchBySkillsMatchesExactCaseInsensitive(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "ML Engineer", "Athens", []string{"Python"}, recent),
		posting(2, "Data Engineer", "Athens", []string{"Python 3"}, recent),
	}
	svc := newTestService(t, postings, nil)

	result, err := svc.SearchBySkills(context.Background(), SkillSearchParams{Skills: []string{"python"}})
	if err != nil {
		t.Fatalf("SearchBySkills: %v", err)
	}

	// "Python 3" is a different skill: posting skills match exactly.
	if result.TotalJobs != 1 {
		t.Fatalf("TotalJobs = %d, want 1", result.TotalJobs)
	}
	if result.Jobs[0].Title != "ML Engineer" {
		t.Errorf("Jobs[0].Title = %q, want ML Engineer", result.Jobs[0].Title)
	}
}

func TestSearchBySkillsTieBreakKeepsFirstAppearance(t *testing.T) {
	recent := domain.NewDate(2026, time.August, 20)
	postings := []domain.JobPosting{
		posting(1, "Data Scientist", "Athens", []string{"SQL"}, recent),
		posting(2, "Backend Developer", "Athens", []string{"SQL"}, recent),
	}
	svc := newTestService(t, postings, nil)

	result, err := svc.SearchBySkills(context.Background(), SkillSearchParams{Skills: []string{"SQL"}})
	if err != nil {
		t.Fatalf("SearchBySkills: %v", err)
	}

	if len(result.Jobs) != 2 {
		t.Fatalf("Jobs = %+v, want 2 titles", result.Jobs)
	}
	if result.Jobs[0].Title != "Data Scientist" || result.Jobs[1].Title != "Backend Developer" {
		t.Errorf("tie order = [%s, %s], want first-appearance order", result.Jobs[0].Title, result.Jobs[1].Title)
	}
}
