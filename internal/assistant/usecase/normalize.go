package usecase

import (
	"context"
	"strings"
	"time"

	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/timesheet/repository"
)

const (
	fallbackProject     = "General"
	fallbackDescription = "General work"
)

// normalizeEntry resolves one raw entry against the given customer: project
// disambiguation, default filling, then time derivation. customerID 0 means
// the customer does not exist yet, so no project lookup can succeed.
func (uc *implUseCase) normalizeEntry(ctx context.Context, raw assistant.RawEntry, customerID int64) (assistant.NormalizedEntry, error) {
	exists := func(name string) bool {
		return uc.projectExists(ctx, name, customerID)
	}
	project, description := disambiguate(raw, exists)

	begin, end, err := uc.deriveTimes(raw)
	if err != nil {
		return assistant.NormalizedEntry{}, err
	}

	client := strings.TrimSpace(raw.Client)
	if client == "" {
		client = defaultCustomerName
	}
	billable := true
	if raw.Billable != nil {
		billable = *raw.Billable
	}
	rate := uc.cfg.Assistant.DefaultRate
	if raw.Rate != nil && *raw.Rate > 0 {
		rate = *raw.Rate
	}

	return assistant.NormalizedEntry{
		Date:        begin.Format("2006-01-02"),
		Project:     project,
		Description: description,
		Client:      client,
		Billable:    billable,
		Rate:        rate,
		Begin:       begin,
		End:         end,
	}, nil
}

// disambiguate resolves the project/description ambiguity of free-text logs.
// Rules apply in order, first match wins:
//  1. explicit project field (unless it is the sentinel "null")
//  2. "Head: Tail" where Head is a known project of the customer
//  3. short single token that is a known project
//  4. up to 3 words that together name a known project
//  5. fall back to the "General" project
//
// A description-as-project inference is only trusted when that exact name
// already exists for the customer, so ordinary task descriptions never spawn
// projects.
func disambiguate(raw assistant.RawEntry, exists func(name string) bool) (string, string) {
	desc := strings.TrimSpace(raw.Description)

	if raw.Project != nil {
		p := strings.TrimSpace(*raw.Project)
		if p != "" && p != "null" {
			if desc == "" {
				desc = "Work on " + p
			}
			return p, desc
		}
	}

	if head, tail, ok := strings.Cut(desc, ":"); ok {
		head = strings.TrimSpace(head)
		tail = strings.TrimSpace(tail)
		if head != "" && exists(head) {
			if tail == "" {
				tail = "Work on " + head
			}
			return head, tail
		}
	}

	if desc != "" && len(desc) <= 50 && !strings.Contains(desc, " ") && exists(desc) {
		return desc, "Work on " + desc
	}

	if desc != "" && len(strings.Fields(desc)) <= 3 && exists(desc) {
		return desc, "Work on " + desc
	}

	if desc == "" {
		desc = fallbackDescription
	}
	return fallbackProject, desc
}

// deriveTimes turns the date/start/end/duration fields into a begin/end
// pair. An explicit start+end pair wins; duration is then recomputed from
// the range rather than trusted. Duration-only entries start at the
// configured default hour.
func (uc *implUseCase) deriveTimes(raw assistant.RawEntry) (time.Time, time.Time, error) {
	day := time.Now().In(uc.tz)
	if raw.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw.Date, uc.tz)
		if err != nil {
			return time.Time{}, time.Time{}, assistant.ErrInvalidEntry
		}
		day = parsed
	}

	if raw.StartTime != nil && raw.EndTime != nil {
		begin, err := combine(day, *raw.StartTime, uc.tz)
		if err != nil {
			return time.Time{}, time.Time{}, assistant.ErrInvalidEntry
		}
		end, err := combine(day, *raw.EndTime, uc.tz)
		if err != nil {
			return time.Time{}, time.Time{}, assistant.ErrInvalidEntry
		}
		if !end.After(begin) {
			return time.Time{}, time.Time{}, assistant.ErrInvalidEntry
		}
		return begin, end, nil
	}

	minutes := uc.cfg.Assistant.DefaultDuration
	if raw.Duration != nil && *raw.Duration > 0 {
		minutes = *raw.Duration
	}

	begin := time.Date(day.Year(), day.Month(), day.Day(), uc.cfg.Assistant.DefaultStartHour, 0, 0, 0, uc.tz)
	if raw.StartTime != nil {
		parsed, err := combine(day, *raw.StartTime, uc.tz)
		if err != nil {
			return time.Time{}, time.Time{}, assistant.ErrInvalidEntry
		}
		begin = parsed
	}
	return begin, begin.Add(time.Duration(minutes) * time.Minute), nil
}

// combine merges an HH:MM wall-clock time onto a calendar day.
func combine(day time.Time, clock string, tz *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, tz), nil
}

// projectExists reports whether a project with the exact name exists under
// the customer. A zero customerID short-circuits to false.
func (uc *implUseCase) projectExists(ctx context.Context, name string, customerID int64) bool {
	if customerID == 0 || name == "" {
		return false
	}
	p, err := uc.repo.GetOneProject(ctx, repository.GetOneProjectOptions{
		Name:       name,
		CustomerID: customerID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "assistant/usecase.projectExists: %v", err)
		return false
	}
	return p.ID != 0
}
