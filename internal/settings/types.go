package settings

// GetSettingsOutput carries the settings as exposed to admins. APIKey is
// masked, never the raw credential.
type GetSettingsOutput struct {
	APIKey     string
	Configured bool
}

// UpdateSettingsInput carries the fields an admin may change. Nil means
// "leave unchanged".
type UpdateSettingsInput struct {
	APIKey *string
}
