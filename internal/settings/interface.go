package settings

import "context"

// KeyOpenAIAPIKey is the configuration name under which the OpenAI API key
// is stored.
const KeyOpenAIAPIKey = "ai.openai_api_key"

//go:generate mockery --name UseCase
type UseCase interface {
	// Get returns the current assistant settings with secrets masked.
	Get(ctx context.Context) (GetSettingsOutput, error)
	// Update persists the provided settings. Masked values are ignored so
	// an admin form can round-trip the masked key without clobbering it.
	Update(ctx context.Context, input UpdateSettingsInput) error
	// APIKey returns the raw stored OpenAI API key, or "" when unset.
	APIKey(ctx context.Context) (string, error)
}
