package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsPatch_ApplyOnlySetFields(t *testing.T) {
	lang := "en"
	minutes := 0
	patch := SettingsPatch{Language: &lang, AutoLockMinutes: &minutes}

	got := patch.Apply(DefaultSettings())

	want := DefaultSettings()
	want.Language = "en"
	want.AutoLockMinutes = 0
	assert.Equal(t, want, got)
}

func TestNoteCategory_Valid(t *testing.T) {
	for _, c := range NoteCategories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, NoteCategory("Workout").Valid())
	assert.False(t, NoteCategory("").Valid())
}

func TestStorageError_Unwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := error(&StorageError{Op: "save", Err: cause})

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save session: disk full", err.Error())

	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "save", se.Op)
}

func TestValidationError_Message(t *testing.T) {
	err := error(NewValidationError("Invalid email format"))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Invalid email format", ve.Message)
	assert.Equal(t, "Invalid email format", err.Error())
}
