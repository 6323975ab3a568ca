package models

// Settings are the user-tunable application preferences.
type Settings struct {
	DarkMode           bool   `json:"darkMode"`
	Language           string `json:"language" validate:"oneof=en ru"`
	Notifications      bool   `json:"notifications"`
	InjectionReminders bool   `json:"injectionReminders"`
	PinEnabled         bool   `json:"pinEnabled"`
	BiometricsEnabled  bool   `json:"biometricsEnabled"`
	AutoLockMinutes    int    `json:"autoLockMinutes" validate:"min=0"`
}

func DefaultSettings() Settings {
	return Settings{
		DarkMode:           true,
		Language:           "ru",
		Notifications:      true,
		InjectionReminders: true,
		PinEnabled:         false,
		BiometricsEnabled:  false,
		AutoLockMinutes:    5,
	}
}

// SettingsPatch is a partial update; nil fields are left unchanged.
type SettingsPatch struct {
	DarkMode           *bool
	Language           *string
	Notifications      *bool
	InjectionReminders *bool
	PinEnabled         *bool
	BiometricsEnabled  *bool
	AutoLockMinutes    *int
}

// Apply returns a copy of s with the non-nil patch fields applied.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.InjectionReminders != nil {
		s.InjectionReminders = *p.InjectionReminders
	}
	if p.PinEnabled != nil {
		s.PinEnabled = *p.PinEnabled
	}
	if p.BiometricsEnabled != nil {
		s.BiometricsEnabled = *p.BiometricsEnabled
	}
	if p.AutoLockMinutes != nil {
		s.AutoLockMinutes = *p.AutoLockMinutes
	}
	return s
}
