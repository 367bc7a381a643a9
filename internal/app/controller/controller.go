package controller

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ikkim/modumal-backend/internal/errors"
	"github.com/ikkim/modumal-backend/internal/middleware"
)

// parseIDParam reads the :id path parameter; on failure it responds 422 and
// returns false.
func parseIDParam(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		log := middleware.GetLoggerFromContext(c)
		log.Warn("Invalid ID format", map[string]interface{}{
			"id":    idStr,
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, map[string]string{
			"id": "올바른 ID가 아닙니다",
		})
		return 0, false
	}
	return uint(id), true
}

// respondStorageError parses an unexpected storage error and picks the
// matching status: 404 for missing rows, 409 for uniqueness races lost at
// the database, 500 otherwise.
func respondStorageError(c *gin.Context, err error, context string) {
	info := apperrors.ParseError(err, context)
	switch info.Code {
	case apperrors.LanguageNotFound, apperrors.TagNotFound,
		apperrors.TranslationNotFound, apperrors.ResourceNotFound:
		apperrors.NotFound(c, info.Code, info.Message)
	case apperrors.LanguageCodeExists, apperrors.TagNameExists,
		apperrors.AuthEmailAlreadyExists, apperrors.ResourceAlreadyExists:
		apperrors.Conflict(c, info.Code, info.Message)
	default:
		apperrors.InternalError(c, info.Message)
	}
}

// NullableString distinguishes an absent JSON field (Set == false) from an
// explicit null (Set == true, Value == nil). Needed for partial updates of
// nullable columns.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
