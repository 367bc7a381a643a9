package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/modumal-backend/internal/app/service"
	apperrors "github.com/ikkim/modumal-backend/internal/errors"
	"github.com/ikkim/modumal-backend/internal/middleware"
)

type LanguageController struct {
	languageService service.LanguageService
}

func NewLanguageController(languageService service.LanguageService) *LanguageController {
	return &LanguageController{languageService: languageService}
}

type CreateLanguageRequest struct {
	Code     string `json:"code" binding:"required,max=10"`
	Name     string `json:"name" binding:"required,max=255"`
	IsActive *bool  `json:"is_active"`
}

type UpdateLanguageRequest struct {
	Code     *string `json:"code" binding:"omitempty,max=10"`
	Name     *string `json:"name" binding:"omitempty,max=255"`
	IsActive *bool   `json:"is_active"`
}

// languageListItem is the listing projection
type languageListItem struct {
	ID       uint   `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ListLanguages 언어 목록 조회 (등록 순서대로)
// GET /api/v1/languages
func (ctrl *LanguageController) ListLanguages(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	languages, err := ctrl.languageService.ListLanguages()
	if err != nil {
		log.Error("Failed to list languages", err, nil)
		apperrors.InternalError(c, "언어 목록 조회에 실패했습니다")
		return
	}

	items := make([]languageListItem, 0, len(languages))
	for _, language := range languages {
		items = append(items, languageListItem{
			ID:       language.ID,
			Code:     language.Code,
			Name:     language.Name,
			IsActive: language.IsActive,
		})
	}

	c.JSON(http.StatusOK, items)
}

// CreateLanguage 언어 등록
// POST /api/v1/languages
func (ctrl *LanguageController) CreateLanguage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid language creation request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingErrorFields(err))
		return
	}

	language, err := ctrl.languageService.CreateLanguage(req.Code, req.Name, req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrLanguageCodeExists) {
			apperrors.RespondWithValidationError(c, map[string]string{
				"code": "이미 사용 중인 언어 코드입니다",
			})
			return
		}
		log.Error("Failed to create language", err, map[string]interface{}{
			"code": req.Code,
		})
		respondStorageError(c, err, "language")
		return
	}

	c.JSON(http.StatusCreated, language)
}

// GetLanguage 언어 단건 조회
// GET /api/v1/languages/:id
func (ctrl *LanguageController) GetLanguage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	language, err := ctrl.languageService.GetLanguage(id)
	if err != nil {
		if errors.Is(err, service.ErrLanguageNotFound) {
			apperrors.NotFound(c, apperrors.LanguageNotFound, "언어를 찾을 수 없습니다")
			return
		}
		respondStorageError(c, err, "language")
		return
	}

	c.JSON(http.StatusOK, language)
}

// UpdateLanguage 언어 수정 (부분 수정: 없는 필드는 그대로 유지)
// PUT /api/v1/languages/:id
func (ctrl *LanguageController) UpdateLanguage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid language update request", map[string]interface{}{
			"language_id": id,
			"error":       err.Error(),
		})
		apperrors.RespondWithValidationError(c, apperrors.BindingErrorFields(err))
		return
	}

	language, err := ctrl.languageService.UpdateLanguage(id, service.UpdateLanguageInput{
		Code:     req.Code,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLanguageNotFound):
			apperrors.NotFound(c, apperrors.LanguageNotFound, "언어를 찾을 수 없습니다")
		case errors.Is(err, service.ErrLanguageCodeExists):
			apperrors.RespondWithValidationError(c, map[string]string{
				"code": "이미 사용 중인 언어 코드입니다",
			})
		default:
			log.Error("Failed to update language", err, map[string]interface{}{
				"language_id": id,
			})
			respondStorageError(c, err, "language")
		}
		return
	}

	c.JSON(http.StatusOK, language)
}

// DeleteLanguage 언어 삭제. 소속 번역도 함께 삭제됨
// DELETE /api/v1/languages/:id
func (ctrl *LanguageController) DeleteLanguage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.languageService.DeleteLanguage(id); err != nil {
		if errors.Is(err, service.ErrLanguageNotFound) {
			apperrors.NotFound(c, apperrors.LanguageNotFound, "언어를 찾을 수 없습니다")
			return
		}
		log.Error("Failed to delete language", err, map[string]interface{}{
			"language_id": id,
		})
		respondStorageError(c, err, "language")
		return
	}

	c.Status(http.StatusNoContent)
}
