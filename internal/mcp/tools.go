package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/employeah/employeah/internal/domain"
	"github.com/employeah/employeah/internal/domain/market"
)

// SearchByJobParams defines the arguments for the search_by_job tool.
type SearchByJobParams struct {
	Job      string `json:"job,omitempty" jsonschema:"Exact job title to analyze"`
	Location string `json:"location,omitempty" jsonschema:"Location substring filter"`
	Window   string `json:"time_window,omitempty" jsonschema:"Lookback window: 1w, 2w, 1m, 3m or all"`
}

// WithSearchByJob registers the search_by_job tool.
func WithSearchByJob(svc *market.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_by_job",
			Description: "Skill demand for a job title: per skill, the share of matching postings that require it",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchByJobParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			result, err := svc.SearchByJob(ctx, market.JobSearchParams{
				Job:      params.Job,
				Location: params.Location,
				Window:   params.Window,
			})
			if err != nil {
				return nil, nil, err
			}
			msg := fmt.Sprintf("[search_by_job] %d posting(s), %d distinct skill(s)", result.TotalJobs, len(result.Skills))
			return textResult(msg), result, nil
		})
	}
}

// SearchBySkillsParams defines the arguments for the search_by_skills tool.
type SearchBySkillsParams struct {
	Skills   []string `json:"skills" jsonschema:"Skills to match (any of)"`
	Location string   `json:"location,omitempty" jsonschema:"Location substring filter"`
}

// WithSearchBySkills registers the search_by_skills tool.
func WithSearchBySkills(svc *market.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_by_skills",
			Description: "Job titles demanding any of the given skills, ranked by posting count",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchBySkillsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			result, err := svc.SearchBySkills(ctx, market.SkillSearchParams{
				Skills:   params.Skills,
				Location: params.Location,
			})
			if err != nil {
				return nil, nil, err
			}
			msg := fmt.Sprintf("[search_by_skills] %d posting(s) across %d title(s)", result.TotalJobs, len(result.Jobs))
			return textResult(msg), result, nil
		})
	}
}

// HistoricalStatsParams defines the arguments for the historical_stats tool.
type HistoricalStatsParams struct {
	Job      string `json:"job,omitempty" jsonschema:"Exact job title to analyze"`
	Location string `json:"location,omitempty" jsonschema:"Location substring filter"`
}

// WithHistoricalStats registers the historical_stats tool.
func WithHistoricalStats(svc *market.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "historical_stats",
			Description: "Retrospective skill demand by half-year period, excluding the last three months",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *HistoricalStatsParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			result, err := svc.HistoricalStats(ctx, market.HistoricalParams{
				Job:      params.Job,
				Location: params.Location,
			})
			if err != nil {
				return nil, nil, err
			}
			msg := fmt.Sprintf("[historical_stats] %d period(s)", len(result.Periods))
			return textResult(msg), result, nil
		})
	}
}

// SkillTrendParams defines the arguments for the skill_trend tool.
type SkillTrendParams struct {
	Skill    string `json:"skill" jsonschema:"Skill to trace over time"`
	JobField string `json:"job_field,omitempty" jsonschema:"Job title substring filter"`
	Location string `json:"location,omitempty" jsonschema:"Location substring filter"`
	Window   string `json:"time_window,omitempty" jsonschema:"Lookback window: 1w, 2w, 1m, 3m or all"`
}

// WithSkillTrend registers the skill_trend tool.
func WithSkillTrend(svc *market.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "skill_trend",
			Description: "Per-bucket share of postings requiring a skill, chronologically ordered",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SkillTrendParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			points, err := svc.SkillTrend(ctx, market.TrendParams{
				Skill:    params.Skill,
				JobField: params.JobField,
				Location: params.Location,
				Window:   params.Window,
			})
			if err != nil {
				return nil, nil, err
			}
			msg := fmt.Sprintf("[skill_trend] %d point(s)", len(points))
			return textResult(msg), map[string]any{"points": points}, nil
		})
	}
}

// JobFieldsBySkillParams defines the arguments for the job_fields_by_skill tool.
type JobFieldsBySkillParams struct {
	Skill    string `json:"skill" jsonschema:"Skill to rank job titles by"`
	Location string `json:"location,omitempty" jsonschema:"Location substring filter"`
	Window   string `json:"time_window,omitempty" jsonschema:"Lookback window: 1w, 2w, 1m, 3m or all"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum titles to return (default 5)"`
}

// WithJobFieldsBySkill registers the job_fields_by_skill tool.
func WithJobFieldsBySkill(svc *market.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_fields_by_skill",
			Description: "Job titles that require a skill most often, as a share of each title's postings",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobFieldsBySkillParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			fields, err := svc.JobFieldsBySkill(ctx, market.FieldParams{
				Skill:    params.Skill,
				Location: params.Location,
				Window:   params.Window,
				Limit:    params.Limit,
			})
			if err != nil {
				return nil, nil, err
			}
			msg := fmt.Sprintf("[job_fields_by_skill] %d title(s)", len(fields))
			return textResult(msg), map[string]any{"fields": fields}, nil
		})
	}
}

// CoursesBySkillParams defines the arguments for the courses_by_skill tool.
type CoursesBySkillParams struct {
	Skill string `json:"skill" jsonschema:"Skill to find courses for"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum courses to return (default 5)"`
}

// WithCoursesBySkill registers the courses_by_skill tool.
func WithCoursesBySkill(svc *market.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "courses_by_skill",
			Description: "University courses whose topics match a skill, in catalog order",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *CoursesBySkillParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req
			courses, err := svc.CoursesBySkill(ctx, params.Skill, params.Limit)
			if err != nil {
				return nil, nil, err
			}
			msg := fmt.Sprintf("[courses_by_skill] %d course(s)", len(courses))
			return textResult(msg), coursesPayload{Courses: courses}, nil
		})
	}
}

type coursesPayload struct {
	Courses []domain.Course `json:"courses"`
}
