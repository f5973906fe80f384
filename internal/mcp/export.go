package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/employeah/employeah/internal/domain/market"
	"github.com/employeah/employeah/pkg/logging"
	"github.com/employeah/employeah/pkg/sheets"
)

// ExportReportParams defines the arguments for the export_report tool.
type ExportReportParams struct {
	Job      string `json:"job,omitempty" jsonschema:"Exact job title to report on"`
	Location string `json:"location,omitempty" jsonschema:"Location substring filter"`
	Window   string `json:"time_window,omitempty" jsonschema:"Lookback window: 1w, 2w, 1m, 3m or all"`
	Sheet    struct {
		SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
		Tab           string `json:"tab,omitempty" jsonschema:"Tab to overwrite (default Report)"`
	} `json:"sheet" jsonschema:"Destination sheet"`
}

// ExportReportResult summarizes a completed export.
type ExportReportResult struct {
	RowsWritten   int    `json:"rows_written"`
	SpreadsheetID string `json:"spreadsheet_id"`
	Tab           string `json:"tab"`
}

type exportReportTool struct {
	svc    *market.Service
	client *sheets.Client
	logger *logging.Logger
}

// WithExportReport registers the export_report tool. A nil client keeps
// the tool registered but failing with a configuration error, so agents
// get a clear message instead of a missing tool.
func WithExportReport(svc *market.Service, client *sheets.Client, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := exportReportTool{svc: svc, client: client, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "export_report",
			Description: "Write a job's skill-demand report to a Google Sheets tab",
		}, handler.handle)
	}
}

func (t exportReportTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *ExportReportParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if t.client == nil {
		return nil, nil, fmt.Errorf("sheets export is not configured: set SHEETS_CREDENTIALS_PATH")
	}
	if params.Sheet.SpreadsheetID == "" {
		return nil, nil, fmt.Errorf("sheet.spreadsheet_id is required")
	}

	tab := params.Sheet.Tab
	if tab == "" {
		tab = "Report"
	}

	report, err := t.svc.SearchByJob(ctx, market.JobSearchParams{
		Job:      params.Job,
		Location: params.Location,
		Window:   params.Window,
	})
	if err != nil {
		return nil, nil, err
	}

	rows := [][]interface{}{
		{"Skill", "Postings", "Percentage"},
	}
	for _, stat := range report.Skills {
		rows = append(rows, []interface{}{stat.Name, stat.Count, stat.Percentage})
	}

	if err := t.client.ReplaceTable(ctx, params.Sheet.SpreadsheetID, tab, rows); err != nil {
		t.logger.Error("report export failed", "spreadsheet_id", params.Sheet.SpreadsheetID, "tab", tab, "err", err)
		return nil, nil, fmt.Errorf("export report: %w", err)
	}

	result := ExportReportResult{
		RowsWritten:   len(rows),
		SpreadsheetID: params.Sheet.SpreadsheetID,
		Tab:           tab,
	}
	t.logger.Info("report exported", "job", params.Job, "rows", result.RowsWritten, "tab", tab)

	msg := fmt.Sprintf("[export_report] wrote %d row(s) to %s!%s", result.RowsWritten, result.SpreadsheetID, tab)
	return textResult(msg), result, nil
}
