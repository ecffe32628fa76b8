package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/model"
	"timelog-assistant/pkg/openai"
)

func (uc *implUseCase) ParseTimelog(ctx context.Context, sc model.Scope, timelog string) ([]assistant.RawEntry, error) {
	if strings.TrimSpace(timelog) == "" {
		return nil, assistant.ErrEmptyTimelog
	}

	key, err := uc.apiKey(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.ParseTimelog apiKey: %v", err)
		return nil, err
	}
	if key == "" {
		return nil, assistant.ErrNotConfigured
	}

	res, err := uc.llm.ChatCompletion(ctx, key, openai.ChatRequest{
		SystemPrompt: openai.TimelogParsingPrompt,
		UserText:     openai.BuildTimelogUserText(time.Now().In(uc.tz), timelog),
		Temperature:  uc.cfg.OpenAI.ParseTemperature,
		MaxTokens:    uc.cfg.OpenAI.ParseMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.ParseTimelog llm: %v", err)
		return nil, err
	}

	entries, err := decodeEntries(res.Content)
	if err != nil {
		uc.l.Warnf(ctx, "assistant/usecase.ParseTimelog decode: %v", err)
		return nil, err
	}
	return entries, nil
}

// decodeEntries parses model output as a JSON array of entry documents. The
// output is untrusted: each document is coerced field by field instead of
// unmarshalled into the target type directly.
func decodeEntries(content string) ([]assistant.RawEntry, error) {
	var docs []map[string]any
	if err := json.Unmarshal([]byte(sanitizeContent(content)), &docs); err != nil {
		return nil, fmt.Errorf("%w: %v", assistant.ErrMalformedResponse, err)
	}

	entries := make([]assistant.RawEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, entryFromDoc(doc))
	}
	return entries, nil
}

// sanitizeContent strips markdown code fences some models wrap around JSON.
func sanitizeContent(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// entryFromDoc coerces one untyped document into a RawEntry. Fields of the
// wrong type are treated as absent, never as errors.
func entryFromDoc(doc map[string]any) assistant.RawEntry {
	e := assistant.RawEntry{
		Date:        docString(doc, "date"),
		Description: docString(doc, "description"),
		Client:      docString(doc, "client"),
	}

	if v := docString(doc, "start_time"); v != "" {
		e.StartTime = &v
	}
	if v := docString(doc, "end_time"); v != "" {
		e.EndTime = &v
	}
	if v := docString(doc, "project"); v != "" {
		e.Project = &v
	}
	if f, ok := docNumber(doc, "duration"); ok {
		d := int(f)
		e.Duration = &d
	}
	if f, ok := docNumber(doc, "rate"); ok {
		e.Rate = &f
	}
	if b, ok := doc["billable"].(bool); ok {
		e.Billable = &b
	}
	return e
}

func docString(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return strings.TrimSpace(s)
}

func docNumber(doc map[string]any, key string) (float64, bool) {
	switch v := doc[key].(type) {
	case float64:
		return v, true
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.TrimSpace(v), "%f", &f); err == nil {
			return f, true
		}
	}
	return 0, false
}
