package repository

import (
	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LanguageRepository interface {
	Create(language *model.Language) error
	FindAll() ([]model.Language, error)
	FindByID(id uint) (*model.Language, error)
	FindByCode(code string) (*model.Language, error)
	ExistsByCode(code string, excludeID uint) (bool, error)
	Update(language *model.Language) error
	Delete(id uint) error
}

type languageRepository struct {
	db *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) Create(language *model.Language) error {
	logger.Debug("Creating language in database", map[string]interface{}{
		"code": language.Code,
		"name": language.Name,
	})

	if err := r.db.Omit(clause.Associations).Create(language).Error; err != nil {
		logger.Error("Failed to create language in database", err, map[string]interface{}{
			"code": language.Code,
		})
		return err
	}
	return nil
}

// FindAll returns every language in creation order
func (r *languageRepository) FindAll() ([]model.Language, error) {
	var languages []model.Language
	if err := r.db.Order("id ASC").Find(&languages).Error; err != nil {
		logger.Error("Failed to list languages", err, nil)
		return nil, err
	}
	return languages, nil
}

func (r *languageRepository) FindByID(id uint) (*model.Language, error) {
	var language model.Language
	if err := r.db.First(&language, id).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) FindByCode(code string) (*model.Language, error) {
	var language model.Language
	if err := r.db.Where("code = ?", code).First(&language).Error; err != nil {
		return nil, err
	}
	return &language, nil
}

// ExistsByCode checks code uniqueness, ignoring the given id (0 to check all rows)
func (r *languageRepository) ExistsByCode(code string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Language{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *languageRepository) Update(language *model.Language) error {
	logger.Debug("Updating language in database", map[string]interface{}{
		"language_id": language.ID,
		"code":        language.Code,
	})

	if err := r.db.Omit(clause.Associations).Save(language).Error; err != nil {
		logger.Error("Failed to update language in database", err, map[string]interface{}{
			"language_id": language.ID,
		})
		return err
	}
	return nil
}

// Delete removes the language, its translations and their tag links in one
// transaction. The FK carries OnDelete:CASCADE as well, but doing it here
// keeps the behavior identical across postgres and the sqlite test database.
func (r *languageRepository) Delete(id uint) error {
	logger.Debug("Deleting language from database", map[string]interface{}{
		"language_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var language model.Language
		if err := tx.First(&language, id).Error; err != nil {
			return err
		}

		var translationIDs []uint
		if err := tx.Model(&model.Translation{}).
			Where("language_id = ?", id).
			Pluck("id", &translationIDs).Error; err != nil {
			return err
		}

		if len(translationIDs) > 0 {
			if err := tx.Where("translation_id IN ?", translationIDs).
				Delete(&model.TranslationTag{}).Error; err != nil {
				return err
			}
			if err := tx.Where("language_id = ?", id).
				Delete(&model.Translation{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&model.Language{}, id).Error; err != nil {
			return err
		}

		logger.Debug("Language deleted from database", map[string]interface{}{
			"language_id":          id,
			"cascaded_translations": len(translationIDs),
		})
		return nil
	})
}
