package service

import (
	"errors"

	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/internal/app/repository"
	"github.com/ikkim/modumal-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrTagNotFound   = errors.New("tag not found")
	ErrTagNameExists = errors.New("tag name already exists")
)

// UpdateTagInput carries partial-update fields. DescriptionSet distinguishes
// an absent description (leave as is) from an explicit null (clear it).
type UpdateTagInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
}

type TagService interface {
	ListTags() ([]model.Tag, error)
	CreateTag(name string, description *string) (*model.Tag, error)
	GetTag(id uint) (*model.Tag, error)
	GetTagWithTranslations(id uint) (*model.Tag, error)
	UpdateTag(id uint, input UpdateTagInput) (*model.Tag, error)
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) ListTags() ([]model.Tag, error) {
	return s.tagRepo.FindAll()
}

func (s *tagService) CreateTag(name string, description *string) (*model.Tag, error) {
	exists, err := s.tagRepo.ExistsByName(name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		logger.Warn("Tag creation rejected: duplicate name", map[string]interface{}{
			"name": name,
		})
		return nil, ErrTagNameExists
	}

	tag := &model.Tag{
		Name:        name,
		Description: description,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	logger.Info("Tag created", map[string]interface{}{
		"tag_id": tag.ID,
		"name":   tag.Name,
	})
	return tag, nil
}

func (s *tagService) GetTag(id uint) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

// GetTagWithTranslations returns the tag with its translations eager-loaded
func (s *tagService) GetTagWithTranslations(id uint) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByIDWithTranslations(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *tagService) UpdateTag(id uint, input UpdateTagInput) (*model.Tag, error) {
	tag, err := s.GetTag(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != tag.Name {
		exists, err := s.tagRepo.ExistsByName(*input.Name, tag.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrTagNameExists
		}
		tag.Name = *input.Name
	}
	if input.DescriptionSet {
		tag.Description = input.Description
	}

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes the tag; referencing translations are detached, not deleted
func (s *tagService) DeleteTag(id uint) error {
	if err := s.tagRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTagNotFound
		}
		return err
	}

	logger.Info("Tag deleted", map[string]interface{}{
		"tag_id": id,
	})
	return nil
}
