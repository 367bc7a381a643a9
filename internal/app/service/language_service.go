package service

import (
	"errors"

	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/internal/app/repository"
	"github.com/ikkim/modumal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrLanguageNotFound   = errors.New("language not found")
	ErrLanguageCodeExists = errors.New("language code already exists")
)

// UpdateLanguageInput carries partial-update fields; nil means "leave as is"
type UpdateLanguageInput struct {
	Code     *string
	Name     *string
	IsActive *bool
}

type LanguageService interface {
	ListLanguages() ([]model.Language, error)
	CreateLanguage(code, name string, isActive *bool) (*model.Language, error)
	GetLanguage(id uint) (*model.Language, error)
	UpdateLanguage(id uint, input UpdateLanguageInput) (*model.Language, error)
	DeleteLanguage(id uint) error
}

type languageService struct {
	languageRepo repository.LanguageRepository
}

func NewLanguageService(languageRepo repository.LanguageRepository) LanguageService {
	return &languageService{languageRepo: languageRepo}
}

func (s *languageService) ListLanguages() ([]model.Language, error) {
	return s.languageRepo.FindAll()
}

// CreateLanguage registers a language. is_active defaults to true when omitted.
func (s *languageService) CreateLanguage(code, name string, isActive *bool) (*model.Language, error) {
	exists, err := s.languageRepo.ExistsByCode(code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warn("Language creation rejected: duplicate code", map[string]interface{}{
			"code": code,
		})
		return nil, ErrLanguageCodeExists
	}

	language := &model.Language{
		Code:     code,
		Name:     name,
		IsActive: true,
	}
	if isActive != nil {
		language.IsActive = *isActive
	}

	if err := s.languageRepo.Create(language); err != nil {
		return nil, err
	}

	logger.Info("Language created", map[string]interface{}{
		"language_id": language.ID,
		"code":        language.Code,
	})
	return language, nil
}

func (s *languageService) GetLanguage(id uint) (*model.Language, error) {
	language, err := s.languageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLanguageNotFound
		}
		return nil, err
	}
	return language, nil
}

// UpdateLanguage applies the present fields only; code uniqueness is
// re-checked excluding the language's own row.
func (s *languageService) UpdateLanguage(id uint, input UpdateLanguageInput) (*model.Language, error) {
	language, err := s.GetLanguage(id)
	if err != nil {
		return nil, err
	}

	if input.Code != nil && *input.Code != language.Code {
		exists, err := s.languageRepo.ExistsByCode(*input.Code, language.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrLanguageCodeExists
		}
		language.Code = *input.Code
	}
	if input.Name != nil {
		language.Name = *input.Name
	}
	if input.IsActive != nil {
		language.IsActive = *input.IsActive
	}

	if err := s.languageRepo.Update(language); err != nil {
		return nil, err
	}
	return language, nil
}

// DeleteLanguage hard-deletes the language and cascades to its translations
func (s *languageService) DeleteLanguage(id uint) error {
	if err := s.languageRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLanguageNotFound
		}
		return err
	}

	logger.Info("Language deleted", map[string]interface{}{
		"language_id": id,
	})
	return nil
}
