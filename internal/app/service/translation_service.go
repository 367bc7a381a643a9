package service

import (
	"errors"
	"math"

	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/internal/app/repository"
	"github.com/ikkim/modumal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrTranslationNotFound = errors.New("translation not found")
	ErrInvalidTagIDs       = errors.New("one or more tags do not exist")
)

const (
	DefaultPerPage = 50
	MaxPerPage     = 100
)

// TranslationListOptions mirrors the listing query parameters
type TranslationListOptions struct {
	Language string // language code, exact match
	Group    string // exact match
	Tag      string // tag name, matches if any attached tag matches
	Key      string // substring match
	PerPage  int
	Page     int
}

// PageMeta describes one page of a listing
type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

type CreateTranslationInput struct {
	Key        string
	Value      string
	LanguageID uint
	Group      *string
	TagIDs     []uint
}

// UpdateTranslationInput carries partial-update fields; nil means "leave as
// is". TagIDs non-nil (even empty) replaces the whole attachment set.
type UpdateTranslationInput struct {
	Key        *string
	Value      *string
	LanguageID *uint
	Group      *string
	TagIDs     *[]uint
}

type TranslationService interface {
	ListTranslations(opts TranslationListOptions) ([]model.Translation, PageMeta, error)
	CreateTranslation(input CreateTranslationInput) (*model.Translation, error)
	GetTranslation(id uint) (*model.Translation, error)
	UpdateTranslation(id uint, input UpdateTranslationInput) (*model.Translation, error)
	DeleteTranslation(id uint) error
	GetByKey(key, group string) ([]model.Translation, error)
}

type translationService struct {
	translationRepo repository.TranslationRepository
	languageRepo    repository.LanguageRepository
	tagRepo         repository.TagRepository
}

func NewTranslationService(
	translationRepo repository.TranslationRepository,
	languageRepo repository.LanguageRepository,
	tagRepo repository.TagRepository,
) TranslationService {
	return &translationService{
		translationRepo: translationRepo,
		languageRepo:    languageRepo,
		tagRepo:         tagRepo,
	}
}

// ListTranslations returns one page of filtered translations with paging
// metadata. per_page is clamped to [1, 100] and defaults to 50.
func (s *translationService) ListTranslations(opts TranslationListOptions) ([]model.Translation, PageMeta, error) {
	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	page := opts.Page
	if page < 1 {
		page = 1
	}

	translations, total, err := s.translationRepo.FindWithFilter(repository.TranslationFilter{
		LanguageCode: opts.Language,
		Group:        opts.Group,
		TagName:      opts.Tag,
		Key:          opts.Key,
		Limit:        perPage,
		Offset:       (page - 1) * perPage,
	})
	if err != nil {
		return nil, PageMeta{}, err
	}

	lastPage := int(math.Ceil(float64(total) / float64(perPage)))
	if lastPage < 1 {
		lastPage = 1
	}

	meta := PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	return translations, meta, nil
}

// CreateTranslation validates every reference before anything is written:
// the language must exist and every tag id must resolve, otherwise the whole
// call fails and nothing is persisted.
func (s *translationService) CreateTranslation(input CreateTranslationInput) (*model.Translation, error) {
	if _, err := s.languageRepo.FindByID(input.LanguageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Translation creation rejected: unknown language", map[string]interface{}{
				"language_id": input.LanguageID,
			})
			return nil, ErrLanguageNotFound
		}
		return nil, err
	}

	tagIDs, err := s.resolveTagIDs(input.TagIDs)
	if err != nil {
		return nil, err
	}

	group := model.DefaultGroup
	if input.Group != nil && *input.Group != "" {
		group = *input.Group
	}

	translation := &model.Translation{
		Key:        input.Key,
		Value:      input.Value,
		LanguageID: input.LanguageID,
		Group:      group,
	}
	if err := s.translationRepo.Create(translation, tagIDs); err != nil {
		return nil, err
	}

	logger.Info("Translation created", map[string]interface{}{
		"translation_id": translation.ID,
		"key":            translation.Key,
		"language_id":    translation.LanguageID,
		"tag_count":      len(tagIDs),
	})
	return s.GetTranslation(translation.ID)
}

func (s *translationService) GetTranslation(id uint) (*model.Translation, error) {
	translation, err := s.translationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTranslationNotFound
		}
		return nil, err
	}
	return translation, nil
}

// UpdateTranslation applies the present fields only. A present tag set, even
// an empty one, replaces the whole attachment set atomically with the row
// update; an absent one leaves the attachments untouched.
func (s *translationService) UpdateTranslation(id uint, input UpdateTranslationInput) (*model.Translation, error) {
	translation, err := s.GetTranslation(id)
	if err != nil {
		return nil, err
	}

	if input.LanguageID != nil && *input.LanguageID != translation.LanguageID {
		if _, err := s.languageRepo.FindByID(*input.LanguageID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLanguageNotFound
			}
			return nil, err
		}
		translation.LanguageID = *input.LanguageID
	}
	if input.Key != nil {
		translation.Key = *input.Key
	}
	if input.Value != nil {
		translation.Value = *input.Value
	}
	if input.Group != nil {
		translation.Group = *input.Group
	}

	var tagIDs *[]uint
	if input.TagIDs != nil {
		resolved, err := s.resolveTagIDs(*input.TagIDs)
		if err != nil {
			return nil, err
		}
		tagIDs = &resolved
	}

	if err := s.translationRepo.Update(translation, tagIDs); err != nil {
		return nil, err
	}

	logger.Info("Translation updated", map[string]interface{}{
		"translation_id": translation.ID,
		"synced_tags":    tagIDs != nil,
	})
	return s.GetTranslation(translation.ID)
}

func (s *translationService) DeleteTranslation(id uint) error {
	if err := s.translationRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTranslationNotFound
		}
		return err
	}

	logger.Info("Translation deleted", map[string]interface{}{
		"translation_id": id,
	})
	return nil
}

// GetByKey is the cross-language lookup: the exact key in every language,
// optionally narrowed to one group.
func (s *translationService) GetByKey(key, group string) ([]model.Translation, error) {
	return s.translationRepo.FindByKey(key, group)
}

// resolveTagIDs deduplicates the requested ids and verifies each one
// references an existing tag.
func (s *translationService) resolveTagIDs(ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	seen := make(map[uint]bool, len(ids))
	unique := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	tags, err := s.tagRepo.FindByIDs(unique)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(unique) {
		logger.Warn("Tag resolution failed: unknown tag ids", map[string]interface{}{
			"requested": len(unique),
			"found":     len(tags),
		})
		return nil, ErrInvalidTagIDs
	}
	return unique, nil
}
