package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/learninghub/internal/client/models"
	"github.com/dmitrijs2005/learninghub/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(newTestRepo(t), logging.Discard())

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestSettingsService_UpdatePersists(t *testing.T) {
	repo := newTestRepo(t)
	svc := NewSettingsService(repo, logging.Discard())
	ctx := context.Background()

	got, err := svc.Update(ctx, models.SettingsPatch{Language: ptr("en"), AutoLockMinutes: ptr(15)})
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, 15, got.AutoLockMinutes)
	assert.True(t, got.DarkMode, "untouched fields keep their values")

	// a fresh service over the same store sees the update
	again, err := NewSettingsService(repo, logging.Discard()).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	raw, err := repo.Get(ctx, SettingsKey)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "en", decoded["language"])
	assert.Contains(t, decoded, "biometricsEnabled")
}

func TestSettingsService_UpdateValidation(t *testing.T) {
	svc := NewSettingsService(newTestRepo(t), logging.Discard())
	ctx := context.Background()

	tests := []struct {
		name  string
		patch models.SettingsPatch
		msg   string
	}{
		{"language", models.SettingsPatch{Language: ptr("de")}, "Language must be en or ru"},
		{"autolock", models.SettingsPatch{AutoLockMinutes: ptr(-1)}, "Auto-lock minutes must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Update(ctx, tt.patch)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.msg, verr.Message)
			assert.Equal(t, models.DefaultSettings(), got)
		})
	}

	stored, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), stored)
}

func TestSettingsService_Reset(t *testing.T) {
	svc := NewSettingsService(newTestRepo(t), logging.Discard())
	ctx := context.Background()

	_, err := svc.Update(ctx, models.SettingsPatch{DarkMode: ptr(false), PinEnabled: ptr(true)})
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestSettingsService_UnreadableFallsBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, SettingsKey, []byte("{not json")))

	got, err := NewSettingsService(repo, logging.Discard()).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), got)
}

func TestSettingsService_PartialBlobKeepsDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, SettingsKey, []byte(`{"language":"en"}`)))

	got, err := NewSettingsService(repo, logging.Discard()).Get(ctx)
	require.NoError(t, err)
	want := models.DefaultSettings()
	want.Language = "en"
	assert.Equal(t, want, got)
}

func TestSettingsService_StorageFailure(t *testing.T) {
	svc := NewSettingsService(failingRepo{err: errBoom}, logging.Discard())
	ctx := context.Background()

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, errBoom)
	_, err = svc.Update(ctx, models.SettingsPatch{DarkMode: ptr(false)})
	assert.ErrorIs(t, err, errBoom)
	assert.ErrorIs(t, svc.Reset(ctx), errBoom)
}
