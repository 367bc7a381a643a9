package service

import (
	"testing"

	"github.com/ikkim/modumal-backend/internal/app/repository"
	"github.com/ikkim/modumal-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLanguageServiceTest(t *testing.T) LanguageService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	languageRepo := repository.NewLanguageRepository(testDB)
	return NewLanguageService(languageRepo)
}

func TestLanguageService_CreateLanguage(t *testing.T) {
	languageService := setupLanguageServiceTest(t)

	language, err := languageService.CreateLanguage("ko", "한국어", nil)
	require.NoError(t, err)
	assert.NotZero(t, language.ID)
	assert.True(t, language.IsActive, "active by default")

	inactive := false
	language, err = languageService.CreateLanguage("en", "English", &inactive)
	require.NoError(t, err)
	assert.False(t, language.IsActive)
}

func TestLanguageService_CreateLanguage_DuplicateCode(t *testing.T) {
	languageService := setupLanguageServiceTest(t)

	_, err := languageService.CreateLanguage("ko", "한국어", nil)
	require.NoError(t, err)

	_, err = languageService.CreateLanguage("ko", "Korean", nil)
	assert.ErrorIs(t, err, ErrLanguageCodeExists)

	// Nothing extra was written
	languages, err := languageService.ListLanguages()
	require.NoError(t, err)
	assert.Len(t, languages, 1)
}

func TestLanguageService_GetLanguage(t *testing.T) {
	languageService := setupLanguageServiceTest(t)

	created, err := languageService.CreateLanguage("ko", "한국어", nil)
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      uint
		wantErr error
	}{
		{
			name:    "Existing language",
			id:      created.ID,
			wantErr: nil,
		},
		{
			name:    "Non-existing language",
			id:      9999,
			wantErr: ErrLanguageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := languageService.GetLanguage(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, found)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "ko", found.Code)
			}
		})
	}
}

func TestLanguageService_UpdateLanguage(t *testing.T) {
	languageService := setupLanguageServiceTest(t)

	created, err := languageService.CreateLanguage("ko", "한국어", nil)
	require.NoError(t, err)

	// Partial update: only the name changes
	newName := "Korean"
	updated, err := languageService.UpdateLanguage(created.ID, UpdateLanguageInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Korean", updated.Name)
	assert.Equal(t, "ko", updated.Code)
	assert.True(t, updated.IsActive)

	// Deactivate without touching anything else
	inactive := false
	updated, err = languageService.UpdateLanguage(created.ID, UpdateLanguageInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Korean", updated.Name)
}

func TestLanguageService_UpdateLanguage_DuplicateCode(t *testing.T) {
	languageService := setupLanguageServiceTest(t)

	_, err := languageService.CreateLanguage("ko", "한국어", nil)
	require.NoError(t, err)
	target, err := languageService.CreateLanguage("en", "English", nil)
	require.NoError(t, err)

	taken := "ko"
	_, err = languageService.UpdateLanguage(target.ID, UpdateLanguageInput{Code: &taken})
	assert.ErrorIs(t, err, ErrLanguageCodeExists)

	// Re-submitting its own code is fine
	own := "en"
	updated, err := languageService.UpdateLanguage(target.ID, UpdateLanguageInput{Code: &own})
	require.NoError(t, err)
	assert.Equal(t, "en", updated.Code)
}

func TestLanguageService_UpdateLanguage_NotFound(t *testing.T) {
	languageService := setupLanguageServiceTest(t)

	name := "French"
	_, err := languageService.UpdateLanguage(9999, UpdateLanguageInput{Name: &name})
	assert.ErrorIs(t, err, ErrLanguageNotFound)
}

func TestLanguageService_DeleteLanguage(t *testing.T) {
	languageService := setupLanguageServiceTest(t)

	created, err := languageService.CreateLanguage("ko", "한국어", nil)
	require.NoError(t, err)

	err = languageService.DeleteLanguage(created.ID)
	assert.NoError(t, err)

	_, err = languageService.GetLanguage(created.ID)
	assert.ErrorIs(t, err, ErrLanguageNotFound)

	err = languageService.DeleteLanguage(created.ID)
	assert.ErrorIs(t, err, ErrLanguageNotFound)
}
