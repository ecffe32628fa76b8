package http

import (
	"time"

	"timelog-assistant/internal/assistant"
)

// --- Request DTOs ---

type chatReq struct {
	Message string            `json:"message" binding:"required"`
	Context map[string]string `json:"context"`
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		Message: r.Message,
		Context: r.Context,
	}
}

type parseReq struct {
	Timelog string `json:"timelog" binding:"required"`
}

// entryDTO is the wire shape of one entry. It is both the parse output and
// the preview/submit input, so round-tripping it through the browser is
// lossless.
type entryDTO struct {
	Date        string   `json:"date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Duration    *int     `json:"duration"`
	Description string   `json:"description"`
	Project     *string  `json:"project"`
	Client      string   `json:"client"`
	Billable    *bool    `json:"billable"`
	Rate        *float64 `json:"rate"`
}

func (r entryDTO) toEntry() assistant.RawEntry {
	return assistant.RawEntry{
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Duration:    r.Duration,
		Description: r.Description,
		Project:     r.Project,
		Client:      r.Client,
		Billable:    r.Billable,
		Rate:        r.Rate,
	}
}

func newEntryDTO(e assistant.RawEntry) entryDTO {
	return entryDTO{
		Date:        e.Date,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Duration:    e.Duration,
		Description: e.Description,
		Project:     e.Project,
		Client:      e.Client,
		Billable:    e.Billable,
		Rate:        e.Rate,
	}
}

type entriesReq struct {
	Entries []entryDTO `json:"entries" binding:"required"`
}

func (r entriesReq) toEntries() []assistant.RawEntry {
	entries := make([]assistant.RawEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = e.toEntry()
	}
	return entries
}

// --- Response DTOs ---

type chatResp struct {
	Response string         `json:"response"`
	Usage    map[string]any `json:"usage"`
}

func (h *handler) newChatResp(out assistant.ChatOutput) chatResp {
	return chatResp{
		Response: out.Content,
		Usage:    out.Usage,
	}
}

type previewRowResp struct {
	Date        string    `json:"date"`
	Customer    string    `json:"customer"`
	Project     string    `json:"project"`
	Activity    string    `json:"activity"`
	Description string    `json:"description"`
	Begin       time.Time `json:"begin"`
	End         time.Time `json:"end"`
	Duration    int       `json:"duration"`
	Billable    bool      `json:"billable"`
	Rate        float64   `json:"rate"`
	Total       float64   `json:"total"`
}

func newPreviewRowResp(row assistant.PreviewRow) previewRowResp {
	return previewRowResp{
		Date:        row.Date,
		Customer:    row.CustomerName,
		Project:     row.ProjectName,
		Activity:    row.ActivityName,
		Description: row.Description,
		Begin:       row.Begin,
		End:         row.End,
		Duration:    row.Duration,
		Billable:    row.Billable,
		Rate:        row.Rate,
		Total:       row.Total,
	}
}

type parseResp struct {
	Entries []entryDTO       `json:"entries"`
	Preview []previewRowResp `json:"preview"`
}

func (h *handler) newParseResp(entries []assistant.RawEntry, rows []assistant.PreviewRow) parseResp {
	resp := parseResp{
		Entries: make([]entryDTO, len(entries)),
		Preview: make([]previewRowResp, len(rows)),
	}
	for i, e := range entries {
		resp.Entries[i] = newEntryDTO(e)
	}
	for i, r := range rows {
		resp.Preview[i] = newPreviewRowResp(r)
	}
	return resp
}

type previewResp struct {
	Preview []previewRowResp `json:"preview"`
}

func (h *handler) newPreviewResp(rows []assistant.PreviewRow) previewResp {
	resp := previewResp{Preview: make([]previewRowResp, len(rows))}
	for i, r := range rows {
		resp.Preview[i] = newPreviewRowResp(r)
	}
	return resp
}

type submitResp struct {
	EntriesCreated int    `json:"entries_created"`
	Message        string `json:"message"`
}

func (h *handler) newSubmitResp(out assistant.SubmitOutput) submitResp {
	return submitResp{
		EntriesCreated: out.CreatedCount,
		Message:        "Timesheet entries created",
	}
}
