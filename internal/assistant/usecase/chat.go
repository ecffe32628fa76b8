package usecase

import (
	"context"
	"strings"

	"timelog-assistant/internal/assistant"
	"timelog-assistant/internal/model"
	"timelog-assistant/pkg/openai"
)

func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input assistant.ChatInput) (assistant.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}

	key, err := uc.apiKey(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.Chat apiKey: %v", err)
		return assistant.ChatOutput{}, err
	}
	if key == "" {
		return assistant.ChatOutput{}, assistant.ErrNotConfigured
	}

	userCtx := make(map[string]string, len(input.Context)+1)
	for k, v := range input.Context {
		userCtx[k] = v
	}
	if sc.DisplayName != "" {
		userCtx["user"] = sc.DisplayName
	}

	res, err := uc.llm.ChatCompletion(ctx, key, openai.ChatRequest{
		SystemPrompt: openai.BuildChatSystemPrompt(userCtx),
		UserText:     input.Message,
		Temperature:  uc.cfg.OpenAI.ChatTemperature,
		MaxTokens:    uc.cfg.OpenAI.ChatMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant/usecase.Chat llm: %v", err)
		return assistant.ChatOutput{}, err
	}

	return assistant.ChatOutput{
		Content: res.Content,
		Usage:   res.Usage,
	}, nil
}
