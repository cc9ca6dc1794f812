package domain

const (
	// SettingAutoApprove toggles whether new help requests bypass moderation.
	SettingAutoApprove = "auto_approve"
)

var (
	MessageSuccessGetSettings    = "settings retrieved successfully"
	MessageSuccessUpdateSettings = "Settings updated successfully"

	MessageFailedGetSettings    = "failed to retrieve settings"
	MessageFailedUpdateSettings = "Failed to update settings"
)

type (
	UpdateSettingsRequest struct {
		AutoApprove *bool `json:"autoApprove" validate:"required"`
	}

	Settings struct {
		AutoApprove bool `json:"autoApprove"`
	}
)
