package domain

// Result types for the query façade. Each query has its own shape with
// all fields always present; empty matches yield zero counts and empty
// slices, never nulls or errors.
//
// Counts and percentages are ordered slices rather than maps: the
// presentation layer expects descending-by-count order (chronological
// for period buckets), and a Go map would lose it.

// SkillStat is one skill's share of a posting universe.
type SkillStat struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TitleStat is one job title's share of a posting universe.
type TitleStat struct {
	Title      string  `json:"title"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// FieldStat ranks a job title by how often it requires a given skill.
type FieldStat struct {
	Title      string  `json:"title"`
	Percentage float64 `json:"percentage"`
}

// CompanyStat counts postings per company.
type CompanyStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TrendPoint is one chart coordinate. X is a DD/MM/YYYY bucket label;
// points are emitted in chronological order.
type TrendPoint struct {
	X string  `json:"x"`
	Y float64 `json:"y"`
}

// Announcement is a compact posting view for "latest postings" lists.
type Announcement struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Date    Date   `json:"date"`
	URL     string `json:"url"`
}

// JobSearchResult answers "which skills does job X require".
// Percentages use the postings-total denominator: of all matched
// postings, the fraction mentioning each skill.
type JobSearchResult struct {
	Job       string      `json:"job"`
	Location  string      `json:"location"`
	TotalJobs int         `json:"total_jobs"`
	Skills    []SkillStat `json:"skills"`
}

// SkillDistributionResult is the pie-chart view of the same universe:
// percentages use the mentions-total denominator and sum to 100 within
// rounding tolerance.
type SkillDistributionResult struct {
	Job       string      `json:"job"`
	Location  string      `json:"location"`
	TotalJobs int         `json:"total_jobs"`
	Skills    []SkillStat `json:"skills"`
}

// SkillSearchResult answers "which jobs want any of my skills".
type SkillSearchResult struct {
	UserSkills []string    `json:"user_skills"`
	Location   string      `json:"location"`
	TotalJobs  int         `json:"total_jobs"`
	Jobs       []TitleStat `json:"jobs"`
}

// PeriodStats aggregates one half-year bucket of a historical report.
type PeriodStats struct {
	Period    string      `json:"period"`
	JobsCount int         `json:"jobs_count"`
	Skills    []SkillStat `json:"skills"`
}

// HistoricalResult is the retrospective report: only postings older
// than the recent window, grouped by half-year, oldest period first.
type HistoricalResult struct {
	Job      string        `json:"job"`
	Location string        `json:"location"`
	Periods  []PeriodStats `json:"periods"`
}

// JobTitleDetails is the drill-down view for a single job title.
type JobTitleDetails struct {
	JobTitle          string         `json:"job_title"`
	TotalJobs         int            `json:"total_jobs"`
	TopSkills         []SkillStat    `json:"top_skills"`
	TopCompanies      []CompanyStat  `json:"top_companies"`
	LastAnnouncements []Announcement `json:"last_announcements"`
}

// SiteStats is the lightweight dataset summary for the landing page.
type SiteStats struct {
	TotalAnnouncements int `json:"total_announcements"`
	TotalCourses       int `json:"total_courses"`
}
