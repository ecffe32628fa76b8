package usecase

import (
	"context"
	"strings"

	"timelog-assistant/internal/settings"
)

const maskPrefix = "****"

// maskKey hides all but the last 4 characters of a credential.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return maskPrefix
	}
	return maskPrefix + key[len(key)-4:]
}

func (uc *implUseCase) Get(ctx context.Context) (settings.GetSettingsOutput, error) {
	key, err := uc.repo.Get(ctx, settings.KeyOpenAIAPIKey)
	if err != nil {
		uc.l.Errorf(ctx, "settings/usecase.Get: %v", err)
		return settings.GetSettingsOutput{}, settings.ErrFailedToLoad
	}
	return settings.GetSettingsOutput{
		APIKey:     maskKey(key),
		Configured: key != "",
	}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input settings.UpdateSettingsInput) error {
	if input.APIKey == nil {
		return nil
	}
	// Admin forms echo the masked key back on save. A value still carrying
	// the mask prefix means "unchanged", not a new credential.
	value := strings.TrimSpace(*input.APIKey)
	if strings.HasPrefix(value, maskPrefix) {
		return nil
	}
	if err := uc.repo.Set(ctx, settings.KeyOpenAIAPIKey, value); err != nil {
		uc.l.Errorf(ctx, "settings/usecase.Update: %v", err)
		return settings.ErrFailedToSave
	}
	return nil
}

func (uc *implUseCase) APIKey(ctx context.Context) (string, error) {
	key, err := uc.repo.Get(ctx, settings.KeyOpenAIAPIKey)
	if err != nil {
		uc.l.Errorf(ctx, "settings/usecase.APIKey: %v", err)
		return "", settings.ErrFailedToLoad
	}
	return key, nil
}
