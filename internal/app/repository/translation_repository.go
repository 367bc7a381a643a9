package repository

import (
	"fmt"

	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TranslationFilter narrows a listing; all zero-valued fields are ignored
// and the remaining conditions are AND-combined.
type TranslationFilter struct {
	LanguageCode string // exact match on the owning language's code
	Group        string // exact match
	TagName      string // translation qualifies if any of its tags matches
	Key          string // substring match
	Limit        int
	Offset       int
}

type TranslationRepository interface {
	Create(translation *model.Translation, tagIDs []uint) error
	FindWithFilter(filter TranslationFilter) ([]model.Translation, int64, error)
	FindByID(id uint) (*model.Translation, error)
	FindByKey(key, group string) ([]model.Translation, error)
	Update(translation *model.Translation, tagIDs *[]uint) error
	Delete(id uint) error
	BulkCreate(translations []model.Translation, batchSize int) error
}

type translationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) TranslationRepository {
	return &translationRepository{db: db}
}

// Create persists the translation and its tag attachments in one transaction.
// Either everything becomes visible together or nothing does.
func (r *translationRepository) Create(translation *model.Translation, tagIDs []uint) error {
	logger.Debug("Creating translation in database", map[string]interface{}{
		"key":         translation.Key,
		"language_id": translation.LanguageID,
		"group":       translation.Group,
		"tag_count":   len(tagIDs),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(translation).Error; err != nil {
			return err
		}
		return attachTags(tx, translation.ID, tagIDs)
	})
	if err != nil {
		logger.Error("Failed to create translation in database", err, map[string]interface{}{
			"key":         translation.Key,
			"language_id": translation.LanguageID,
		})
		return err
	}
	return nil
}

// filteredQuery builds a fresh query with every requested condition applied
func (r *translationRepository) filteredQuery(filter TranslationFilter) *gorm.DB {
	query := r.db.Model(&model.Translation{})

	if filter.LanguageCode != "" {
		query = query.
			Joins("JOIN languages ON languages.id = translations.language_id").
			Where("languages.code = ?", filter.LanguageCode)
	}
	if filter.Group != "" {
		query = query.Where("translations.group_name = ?", filter.Group)
	}
	if filter.TagName != "" {
		query = query.
			Joins("JOIN translation_tags ON translation_tags.translation_id = translations.id").
			Joins("JOIN tags ON tags.id = translation_tags.tag_id").
			Where("tags.name = ?", filter.TagName)
	}
	if filter.Key != "" {
		query = query.Where("translations.key LIKE ?", fmt.Sprintf("%%%s%%", filter.Key))
	}

	return query
}

// FindWithFilter returns one page of matching translations plus the total
// match count. Ordering is ascending by id so pages stay stable.
func (r *translationRepository) FindWithFilter(filter TranslationFilter) ([]model.Translation, int64, error) {
	logger.Debug("Finding translations with filter", map[string]interface{}{
		"language": filter.LanguageCode,
		"group":    filter.Group,
		"tag":      filter.TagName,
		"key":      filter.Key,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})

	var total int64
	if err := r.filteredQuery(filter).Count(&total).Error; err != nil {
		logger.Error("Failed to count translations", err, nil)
		return nil, 0, err
	}

	query := r.filteredQuery(filter).
		Preload("Language").
		Preload("Tags").
		Order("translations.id ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var translations []model.Translation
	if err := query.Find(&translations).Error; err != nil {
		logger.Error("Failed to find translations with filter", err, nil)
		return nil, 0, err
	}

	return translations, total, nil
}

func (r *translationRepository) FindByID(id uint) (*model.Translation, error) {
	var translation model.Translation
	err := r.db.Preload("Language").Preload("Tags").First(&translation, id).Error
	if err != nil {
		return nil, err
	}
	return &translation, nil
}

// FindByKey returns the exact key in every language, optionally narrowed to
// one group. Bounded by the number of languages, so no pagination.
func (r *translationRepository) FindByKey(key, group string) ([]model.Translation, error) {
	query := r.db.Where("key = ?", key)
	if group != "" {
		query = query.Where("group_name = ?", group)
	}

	var translations []model.Translation
	err := query.Preload("Language").Preload("Tags").
		Order("translations.id ASC").
		Find(&translations).Error
	if err != nil {
		logger.Error("Failed to find translations by key", err, map[string]interface{}{
			"key":   key,
			"group": group,
		})
		return nil, err
	}
	return translations, nil
}

// Update saves the row and, when tagIDs is non-nil, syncs the attachment set
// to exactly that set. Both happen in one transaction.
func (r *translationRepository) Update(translation *model.Translation, tagIDs *[]uint) error {
	logger.Debug("Updating translation in database", map[string]interface{}{
		"translation_id": translation.ID,
		"sync_tags":      tagIDs != nil,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(translation).Error; err != nil {
			return err
		}
		if tagIDs != nil {
			return syncTags(tx, translation.ID, *tagIDs)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to update translation in database", err, map[string]interface{}{
			"translation_id": translation.ID,
		})
		return err
	}
	return nil
}

func (r *translationRepository) Delete(id uint) error {
	logger.Debug("Deleting translation from database", map[string]interface{}{
		"translation_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		var translation model.Translation
		if err := tx.First(&translation, id).Error; err != nil {
			return err
		}

		if err := tx.Where("translation_id = ?", id).Delete(&model.TranslationTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Translation{}, id).Error
	})
}

// BulkCreate inserts translations in batches. Used by the seed command for
// large imports; no tag attachments here.
func (r *translationRepository) BulkCreate(translations []model.Translation, batchSize int) error {
	if len(translations) == 0 {
		return nil
	}

	logger.Info("Bulk creating translations", map[string]interface{}{
		"total":      len(translations),
		"batch_size": batchSize,
	})
	return r.db.Omit(clause.Associations).CreateInBatches(translations, batchSize).Error
}

func attachTags(tx *gorm.DB, translationID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.TranslationTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.TranslationTag{
			TranslationID: translationID,
			TagID:         tagID,
		})
	}
	return tx.Create(&rows).Error
}

// syncTags replaces the attachment set: currently attached tags missing from
// the requested set are detached, new ones are attached, the rest are kept.
func syncTags(tx *gorm.DB, translationID uint, tagIDs []uint) error {
	var currentIDs []uint
	if err := tx.Model(&model.TranslationTag{}).
		Where("translation_id = ?", translationID).
		Pluck("tag_id", &currentIDs).Error; err != nil {
		return err
	}

	requested := make(map[uint]bool, len(tagIDs))
	for _, id := range tagIDs {
		requested[id] = true
	}
	current := make(map[uint]bool, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = true
	}

	var toRemove []uint
	for _, id := range currentIDs {
		if !requested[id] {
			toRemove = append(toRemove, id)
		}
	}
	var toAdd []uint
	for _, id := range tagIDs {
		if !current[id] {
			toAdd = append(toAdd, id)
		}
	}

	if len(toRemove) > 0 {
		if err := tx.Where("translation_id = ? AND tag_id IN ?", translationID, toRemove).
			Delete(&model.TranslationTag{}).Error; err != nil {
			return err
		}
	}

	return attachTags(tx, translationID, toAdd)
}
