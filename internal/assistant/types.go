package assistant

import "time"

// RawEntry is one unvalidated entry as emitted by the model, or echoed back
// by the browser on preview/submit. Nil pointers mean "absent"; defaults are
// applied during normalization, not here.
type RawEntry struct {
	Date        string
	StartTime   *string // HH:MM 24h
	EndTime     *string // HH:MM 24h
	Duration    *int    // minutes
	Description string
	Project     *string // may carry the literal sentinel "null"
	Client      string
	Billable    *bool
	Rate        *float64 // currency per hour
}

// NormalizedEntry is a RawEntry after project/description disambiguation,
// default filling and time derivation. Project and Description are never
// empty.
type NormalizedEntry struct {
	Date        string
	Project     string
	Description string
	Client      string
	Billable    bool
	Rate        float64
	Begin       time.Time
	End         time.Time
}

// DurationMinutes is the span length derived from the begin/end pair.
func (e NormalizedEntry) DurationMinutes() int {
	return int(e.End.Sub(e.Begin).Minutes())
}

// PreviewRow is a priced, display-only view of one normalized entry. Nothing
// about a preview is persisted.
type PreviewRow struct {
	Date         string
	CustomerName string
	ProjectName  string
	ActivityName string
	Description  string
	Begin        time.Time
	End          time.Time
	Duration     int // minutes
	Billable     bool
	Rate         float64
	Total        float64 // round(duration/60 * rate, 2)
}

// ChatInput carries one chat turn.
type ChatInput struct {
	Message string
	Context map[string]string
}

// ChatOutput carries the model reply plus provider usage metadata.
type ChatOutput struct {
	Content string
	Usage   map[string]any
}

// SubmitOutput reports how many timesheet records the batch created.
type SubmitOutput struct {
	CreatedCount int
}
