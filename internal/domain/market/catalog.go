// Package market implements the aggregation core of Employeah: predicate
// filters over job postings, grouping and counting, percentage and trend
// calculators, and the query façade consumed by the HTTP and MCP surfaces.
//
// All queries are pure reads over an injected Catalog. The catalog is
// immutable after startup, so any number of queries may run concurrently
// without coordination.
package market

import "github.com/employeah/employeah/internal/domain"

// Catalog is the read-only data source behind every query. Implementations
// must return stable slices that are never mutated after construction;
// callers treat them as frozen.
type Catalog interface {
	Postings() []domain.JobPosting
	Courses() []domain.Course
}
