package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/client/repositories/kv"
	"github.com/dmitrijs2005/learninghub/internal/logging"
	"github.com/go-playground/validator/v10"
)

const SettingsKey = "@app_settings"

// SettingsService reads and writes the application preferences.
type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)
	Reset(ctx context.Context) error
}

type settingsService struct {
	repo     kv.Repository
	log      logging.Logger
	validate *validator.Validate

	mu sync.Mutex
}

func NewSettingsService(repo kv.Repository, log logging.Logger) SettingsService {
	return &settingsService{repo: repo, log: log, validate: validator.New()}
}

// Get returns the stored settings, falling back to defaults when nothing is
// stored or the stored blob cannot be decoded.
func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	raw, err := s.repo.Get(ctx, SettingsKey)
	if err != nil {
		return models.DefaultSettings(), err
	}
	if len(raw) == 0 {
		return models.DefaultSettings(), nil
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.log.Warn(ctx, "stored settings are unreadable, using defaults", "error", err)
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Get(ctx)
	if err != nil {
		return current, err
	}

	updated := patch.Apply(current)
	if err := s.validate.Struct(updated); err != nil {
		return current, models.NewValidationError(settingsMessage(err))
	}
	if err := s.save(ctx, updated); err != nil {
		return current, err
	}
	return updated, nil
}

func (s *settingsService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, models.DefaultSettings())
}

func (s *settingsService) save(ctx context.Context, settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.repo.Set(ctx, SettingsKey, payload); err != nil {
		s.log.Error(ctx, "failed to save settings", "error", err)
		return err
	}
	return nil
}

func settingsMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid settings"
	}
	switch verrs[0].Field() {
	case "Language":
		return "Language must be en or ru"
	case "AutoLockMinutes":
		return "Auto-lock minutes must not be negative"
	default:
		return "Invalid settings"
	}
}
