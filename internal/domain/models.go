package domain

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for posting dates. The dataset carries
// calendar dates only, no time-of-day component.
const dateLayout = "2006-01-02"

// Date is a calendar date. It marshals as "YYYY-MM-DD" and compares via
// the embedded time.Time (always midnight UTC).
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date: expected quoted %q value, got %s", dateLayout, s)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	d.Time = t
	return nil
}

// JobPosting is one job announcement. Postings are immutable: the store
// is populated once at startup and never written again.
type JobPosting struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	Company    string   `json:"company"`
	Skills     []string `json:"skills"`
	DatePosted Date     `json:"date_posted"`
	Salary     int      `json:"salary"`
	URL        string   `json:"url"`
}

// Course is a university course offering, related to postings only by
// fuzzy skill-name matching.
type Course struct {
	Title    string   `json:"title"`
	Semester string   `json:"semester"`
	Skills   []string `json:"skills"`
	URL      string   `json:"url"`
}
