package http

import (
	"timelog-assistant/internal/settings"
)

// --- Request DTOs ---

type updateReq struct {
	APIKey *string `json:"api_key"`
}

func (r updateReq) toInput() settings.UpdateSettingsInput {
	return settings.UpdateSettingsInput{
		APIKey: r.APIKey,
	}
}

// --- Response DTOs ---

type settingsResp struct {
	APIKey     string `json:"api_key"`
	Configured bool   `json:"configured"`
}

func (h *handler) newSettingsResp(out settings.GetSettingsOutput) settingsResp {
	return settingsResp{
		APIKey:     out.APIKey,
		Configured: out.Configured,
	}
}
