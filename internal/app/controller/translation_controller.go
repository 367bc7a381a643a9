package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/internal/app/service"
	apperrors "github.com/ikkim/modumal-backend/internal/errors"
	"github.com/ikkim/modumal-backend/internal/middleware"
)

type TranslationController struct {
	translationService service.TranslationService
}

func NewTranslationController(translationService service.TranslationService) *TranslationController {
	return &TranslationController{translationService: translationService}
}

type CreateTranslationRequest struct {
	Key        string  `json:"key" binding:"required,max=255"`
	Value      string  `json:"value" binding:"required"`
	LanguageID uint    `json:"language_id" binding:"required"`
	Group      *string `json:"group" binding:"omitempty,max=255"`
	Tags       []uint  `json:"tags"`
}

// UpdateTranslationRequest: 모든 필드가 선택적. tags는 배열이 오면 전체 교체
type UpdateTranslationRequest struct {
	Key        *string `json:"key" binding:"omitempty,max=255"`
	Value      *string `json:"value"`
	LanguageID *uint   `json:"language_id"`
	Group      *string `json:"group" binding:"omitempty,max=255"`
	Tags       *[]uint `json:"tags"`
}

// ListTranslations 번역 목록 조회 (필터 + 페이지네이션)
// GET /api/v1/translations?language=&group=&tag=&key=&per_page=&page=
func (ctrl *TranslationController) ListTranslations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	opts := service.TranslationListOptions{
		Language: c.Query("language"),
		Group:    c.Query("group"),
		Tag:      c.Query("tag"),
		Key:      c.Query("key"),
	}
	if v := c.Query("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.PerPage = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Page = n
		}
	}

	translations, meta, err := ctrl.translationService.ListTranslations(opts)
	if err != nil {
		log.Error("Failed to list translations", err, map[string]interface{}{
			"language": opts.Language,
			"group":    opts.Group,
			"tag":      opts.Tag,
		})
		apperrors.InternalError(c, "번역 목록 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": model.TranslationViews(translations),
		"meta": meta,
	})
}

// CreateTranslation 번역 등록. 태그가 있으면 함께 연결
// POST /api/v1/translations
func (ctrl *TranslationController) CreateTranslation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid translation creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingErrorFields(err))
		return
	}

	translation, err := ctrl.translationService.CreateTranslation(service.CreateTranslationInput{
		Key:        req.Key,
		Value:      req.Value,
		LanguageID: req.LanguageID,
		Group:      req.Group,
		TagIDs:     req.Tags,
	})
	if err != nil {
		if ctrl.respondReferenceError(c, err) {
			return
		}
		log.Error("Failed to create translation", err, map[string]interface{}{
			"key":         req.Key,
			"language_id": req.LanguageID,
		})
		respondStorageError(c, err, "translation")
		return
	}

	c.JSON(http.StatusCreated, translation.View())
}

// GetTranslation 번역 단건 조회
// GET /api/v1/translations/:id
func (ctrl *TranslationController) GetTranslation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	translation, err := ctrl.translationService.GetTranslation(id)
	if err != nil {
		if errors.Is(err, service.ErrTranslationNotFound) {
			apperrors.NotFound(c, apperrors.TranslationNotFound, "번역을 찾을 수 없습니다")
			return
		}
		respondStorageError(c, err, "translation")
		return
	}

	c.JSON(http.StatusOK, translation.View())
}

// UpdateTranslation 번역 부분 수정. tags 배열이 포함되면 연결을 통째로 교체
// PUT /api/v1/translations/:id
func (ctrl *TranslationController) UpdateTranslation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateTranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid translation update request", map[string]interface{}{
			"translation_id": id,
			"error":          err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingErrorFields(err))
		return
	}

	translation, err := ctrl.translationService.UpdateTranslation(id, service.UpdateTranslationInput{
		Key:        req.Key,
		Value:      req.Value,
		LanguageID: req.LanguageID,
		Group:      req.Group,
		TagIDs:     req.Tags,
	})
	if err != nil {
		if errors.Is(err, service.ErrTranslationNotFound) {
			apperrors.NotFound(c, apperrors.TranslationNotFound, "번역을 찾을 수 없습니다")
			return
		}
		if ctrl.respondReferenceError(c, err) {
			return
		}
		log.Error("Failed to update translation", err, map[string]interface{}{
			"translation_id": id,
		})
		respondStorageError(c, err, "translation")
		return
	}

	c.JSON(http.StatusOK, translation.View())
}

// DeleteTranslation 번역 삭제
// DELETE /api/v1/translations/:id
func (ctrl *TranslationController) DeleteTranslation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.translationService.DeleteTranslation(id); err != nil {
		if errors.Is(err, service.ErrTranslationNotFound) {
			apperrors.NotFound(c, apperrors.TranslationNotFound, "번역을 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete translation", err, map[string]interface{}{
			"translation_id": id,
		})
		respondStorageError(c, err, "translation")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetByKey 같은 키의 번역을 전체 언어에서 조회
// GET /api/v1/translations/by-key?key=&group=
func (ctrl *TranslationController) GetByKey(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	key := c.Query("key")
	if key == "" {
		apperrors.RespondWithValidationError(c, map[string]string{
			"key": "key 파라미터는 필수입니다",
		})
		return
	}
	group := c.Query("group")

	translations, err := ctrl.translationService.GetByKey(key, group)
	if err != nil {
		log.Error("Failed to look up translations by key", err, map[string]interface{}{
			"key":   key,
			"group": group,
		})
		apperrors.InternalError(c, "번역 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, model.TranslationKeyedViews(translations))
}

// respondReferenceError handles the shared reference-validation failures of
// create and update. Returns true when it wrote a response.
func (ctrl *TranslationController) respondReferenceError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrLanguageNotFound):
		apperrors.RespondWithValidationError(c, map[string]string{
			"language_id": "선택한 언어가 유효하지 않습니다",
		})
		return true
	case errors.Is(err, service.ErrInvalidTagIDs):
		apperrors.RespondWithValidationError(c, map[string]string{
			"tags": "존재하지 않는 태그가 포함되어 있습니다",
		})
		return true
	}
	return false
}
