package repository

import (
	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	Create(tag *model.Tag) error
	FindAll() ([]model.Tag, error)
	FindByID(id uint) (*model.Tag, error)
	FindByIDWithTranslations(id uint) (*model.Tag, error)
	FindByIDs(ids []uint) ([]model.Tag, error)
	ExistsByName(name string, excludeID uint) (bool, error)
	Update(tag *model.Tag) error
	Delete(id uint) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *model.Tag) error {
	logger.Debug("Creating tag in database", map[string]interface{}{
		"name": tag.Name,
	})

	if err := r.db.Omit(clause.Associations).Create(tag).Error; err != nil {
		logger.Error("Failed to create tag in database", err, map[string]interface{}{
			"name": tag.Name,
		})
		return err
	}
	return nil
}

func (r *tagRepository) FindAll() ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.Order("id ASC").Find(&tags).Error; err != nil {
		logger.Error("Failed to list tags", err, nil)
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByIDWithTranslations eager-loads the tag's translations for inspection
func (r *tagRepository) FindByIDWithTranslations(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.Preload("Translations").First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) FindByIDs(ids []uint) ([]model.Tag, error) {
	var tags []model.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ExistsByName checks name uniqueness, ignoring the given id (0 to check all rows)
func (r *tagRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&model.Tag{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *tagRepository) Update(tag *model.Tag) error {
	logger.Debug("Updating tag in database", map[string]interface{}{
		"tag_id": tag.ID,
		"name":   tag.Name,
	})

	if err := r.db.Omit(clause.Associations).Save(tag).Error; err != nil {
		logger.Error("Failed to update tag in database", err, map[string]interface{}{
			"tag_id": tag.ID,
		})
		return err
	}
	return nil
}

// Delete removes the tag and detaches it from translations. Translations
// themselves are never deleted here.
func (r *tagRepository) Delete(id uint) error {
	logger.Debug("Deleting tag from database", map[string]interface{}{
		"tag_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var tag model.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			return err
		}

		if err := tx.Where("tag_id = ?", id).Delete(&model.TranslationTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Tag{}, id).Error
	})
}
