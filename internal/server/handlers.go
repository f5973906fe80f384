package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/employeah/employeah/internal/domain/market"
	"github.com/employeah/employeah/pkg/logging"
)

// api groups the REST handlers over the query façade. Routes mirror the
// original frontend API client, all read-only under /api/v1.
type api struct {
	svc    *market.Service
	logger *logging.Logger
}

func (a *api) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/job-titles", a.handleJobTitles)
	mux.HandleFunc("GET /api/v1/locations", a.handleLocations)
	mux.HandleFunc("GET /api/v1/skills", a.handleSkills)
	mux.HandleFunc("GET /api/v1/skills/{skill}/courses", a.handleCourses)
	mux.HandleFunc("GET /api/v1/stats", a.handleStats)
	mux.HandleFunc("GET /api/v1/reports/job-skill-distribution", a.handleJobSkillDistribution)
	mux.HandleFunc("GET /api/v1/reports/skill-mention-share", a.handleSkillMentionShare)
	mux.HandleFunc("GET /api/v1/reports/skill-trend", a.handleSkillTrend)
	mux.HandleFunc("GET /api/v1/reports/skill-top-job-titles", a.handleSkillTopJobTitles)
	mux.HandleFunc("GET /api/v1/reports/historical-stats", a.handleHistoricalStats)
	mux.HandleFunc("POST /api/v1/reports/jobs-by-skills", a.handleJobsBySkills)
	mux.HandleFunc("POST /api/v1/reports/job-title-details", a.handleJobTitleDetails)
}

func (a *api) handleJobTitles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.JobTitles(r.Context()))
}

func (a *api) handleLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Locations(r.Context()))
}

func (a *api) handleSkills(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, a.svc.SkillNames(r.Context(), r.URL.Query().Get("q"), limit))
}

func (a *api) handleCourses(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	courses, err := a.svc.CoursesBySkill(r.Context(), r.PathValue("skill"), limit)
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (a *api) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Stats(r.Context()))
}

func (a *api) handleJobSkillDistribution(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := a.svc.SearchByJob(r.Context(), market.JobSearchParams{
		Job:      q.Get("job_title"),
		Location: q.Get("location"),
		Window:   q.Get("time_window"),
	})
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *api) handleSkillMentionShare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := a.svc.SkillDistribution(r.Context(), market.JobSearchParams{
		Job:      q.Get("job_title"),
		Location: q.Get("location"),
		Window:   q.Get("time_window"),
	})
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *api) handleSkillTrend(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	points, err := a.svc.SkillTrend(r.Context(), market.TrendParams{
		Skill:    q.Get("skill"),
		JobField: q.Get("job_field"),
		Location: q.Get("location"),
		Window:   q.Get("time_window"),
	})
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"skill":  q.Get("skill"),
		"points": points,
	})
}

func (a *api) handleSkillTopJobTitles(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	fields, err := a.svc.JobFieldsBySkill(r.Context(), market.FieldParams{
		Skill:    q.Get("skill"),
		Location: q.Get("location"),
		Window:   q.Get("time_window"),
		Limit:    limit,
	})
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

func (a *api) handleHistoricalStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := a.svc.HistoricalStats(r.Context(), market.HistoricalParams{
		Job:      q.Get("job_title"),
		Location: q.Get("location"),
	})
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *api) handleJobsBySkills(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Skills   []string `json:"skills"`
		Location string   `json:"location"`
	}
	if !readJSON(w, r, &body) {
		return
	}

	result, err := a.svc.SearchBySkills(r.Context(), market.SkillSearchParams{
		Skills:   body.Skills,
		Location: body.Location,
	})
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *api) handleJobTitleDetails(w http.ResponseWriter, r *http.Request) {
	var body struct {
		JobTitle string   `json:"job_title"`
		Skills   []string `json:"skills"`
		Location string   `json:"location"`
		Window   string   `json:"time_window"`
	}
	if !readJSON(w, r, &body) {
		return
	}

	result, err := a.svc.JobTitleDetails(r.Context(), market.DetailsParams{
		JobTitle: body.JobTitle,
		Skills:   body.Skills,
		Location: body.Location,
		Window:   body.Window,
	})
	if err != nil {
		a.writeQueryError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// writeQueryError maps façade errors to HTTP statuses: a bad window
// label is the caller's fault, everything else is ours.
func (a *api) writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, market.ErrUnknownWindow) {
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}
	a.logger.Error("query failed", "path", r.URL.Path, "err", err)
	writeError(w, http.StatusInternalServerError, "InternalError", "query failed")
}

// queryLimit parses an optional positive limit query parameter.
// Reports false after writing a 400 when the value is malformed.
func queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > 200 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer between 1 and 200")
		return 0, false
	}
	return limit, true
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "malformed JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, errType, message string) {
	writeJSON(w, status, map[string]string{
		"error":   errType,
		"message": message,
	})
}
