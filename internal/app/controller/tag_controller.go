package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/modumal-backend/internal/app/service"
	apperrors "github.com/ikkim/modumal-backend/internal/errors"
	"github.com/ikkim/modumal-backend/internal/middleware"
)

type TagController struct {
	tagService service.TagService
}

func NewTagController(tagService service.TagService) *TagController {
	return &TagController{tagService: tagService}
}

type CreateTagRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}

type UpdateTagRequest struct {
	Name        *string        `json:"name" binding:"omitempty,max=255"`
	Description NullableString `json:"description"`
}

// ListTags 태그 목록 조회
// GET /api/v1/tags
func (ctrl *TagController) ListTags(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	tags, err := ctrl.tagService.ListTags()
	if err != nil {
		log.Error("Failed to list tags", err, nil)
		apperrors.InternalError(c, "태그 목록 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag 태그 등록
// POST /api/v1/tags
func (ctrl *TagController) CreateTag(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid tag creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingErrorFields(err))
		return
	}

	tag, err := ctrl.tagService.CreateTag(req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrTagNameExists) {
			apperrors.RespondWithValidationError(c, map[string]string{
				"name": "이미 사용 중인 태그 이름입니다",
			})
			return
		}
		log.Error("Failed to create tag", err, map[string]interface{}{
			"name": req.Name,
		})
		respondStorageError(c, err, "tag")
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// GetTag 태그 단건 조회. 연결된 번역도 함께 반환
// GET /api/v1/tags/:id
func (ctrl *TagController) GetTag(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	tag, err := ctrl.tagService.GetTagWithTranslations(id)
	if err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			apperrors.NotFound(c, apperrors.TagNotFound, "태그를 찾을 수 없습니다")
			return
		}
		respondStorageError(c, err, "tag")
		return
	}

	c.JSON(http.StatusOK, tag)
}

// UpdateTag 태그 수정. description에 null을 보내면 비움
// PUT /api/v1/tags/:id
func (ctrl *TagController) UpdateTag(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid tag update request", map[string]interface{}{
			"tag_id": id,
			"error":  err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingErrorFields(err))
		return
	}

	tag, err := ctrl.tagService.UpdateTag(id, service.UpdateTagInput{
		Name:           req.Name,
		Description:    req.Description.Value,
		DescriptionSet: req.Description.Set,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTagNotFound):
			apperrors.NotFound(c, apperrors.TagNotFound, "태그를 찾을 수 없습니다")
		case errors.Is(err, service.ErrTagNameExists):
			apperrors.RespondWithValidationError(c, map[string]string{
				"name": "이미 사용 중인 태그 이름입니다",
			})
		default:
			log.Error("Failed to update tag", err, map[string]interface{}{
				"tag_id": id,
			})
			respondStorageError(c, err, "tag")
		}
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag 태그 삭제. 번역과의 연결만 끊고 번역은 남김
// DELETE /api/v1/tags/:id
func (ctrl *TagController) DeleteTag(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.tagService.DeleteTag(id); err != nil {
		if errors.Is(err, service.ErrTagNotFound) {
			apperrors.NotFound(c, apperrors.TagNotFound, "태그를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete tag", err, map[string]interface{}{
			"tag_id": id,
		})
		respondStorageError(c, err, "tag")
		return
	}

	c.Status(http.StatusNoContent)
}
