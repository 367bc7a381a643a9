package errors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// PostgreSQL SQLSTATE codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// ParseError converts a storage error into a user-facing code and message.
// Context is the resource name ("language", "tag", "translation", "user")
// used to pick the message when the error itself carries no column info.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "서버 오류가 발생했습니다"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: notFoundCode(context), Message: notFoundMessage(context)}
	}

	// Postgres surfaces typed errors; sqlite (tests) only gives strings
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			return parseDuplicate(pqErr.Constraint + " " + pqErr.Detail, context)
		case pgForeignKeyViolation:
			return ErrorInfo{Code: notFoundCode(context), Message: "참조하는 데이터를 찾을 수 없습니다"}
		case pgNotNullViolation:
			return ErrorInfo{Code: ValidationRequired, Message: "필수 항목이 누락되었습니다"}
		}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "duplicate key") ||
		strings.Contains(errLower, "unique constraint") {
		return parseDuplicate(errLower, context)
	}
	if strings.Contains(errLower, "foreign key constraint") {
		return ErrorInfo{Code: notFoundCode(context), Message: "참조하는 데이터를 찾을 수 없습니다"}
	}
	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{Code: InternalDatabaseError, Message: "저장소 연결에 실패했습니다. 잠시 후 다시 시도해주세요"}
	}

	return ErrorInfo{Code: InternalServerError, Message: "서버 오류가 발생했습니다. 잠시 후 다시 시도해주세요"}
}

func parseDuplicate(detail string, context string) ErrorInfo {
	detailLower := strings.ToLower(detail)

	if strings.Contains(detailLower, "languages") || strings.Contains(detailLower, "code") {
		return ErrorInfo{Code: LanguageCodeExists, Message: "이미 사용 중인 언어 코드입니다"}
	}
	if strings.Contains(detailLower, "tags") {
		return ErrorInfo{Code: TagNameExists, Message: "이미 사용 중인 태그 이름입니다"}
	}
	if strings.Contains(detailLower, "email") || strings.Contains(detailLower, "users") {
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "이미 사용 중인 이메일입니다"}
	}

	return ErrorInfo{Code: ResourceAlreadyExists, Message: "이미 존재하는 데이터입니다"}
}

func notFoundCode(context string) string {
	switch context {
	case "language":
		return LanguageNotFound
	case "tag":
		return TagNotFound
	case "translation":
		return TranslationNotFound
	default:
		return ResourceNotFound
	}
}

func notFoundMessage(context string) string {
	switch context {
	case "language":
		return "언어를 찾을 수 없습니다"
	case "tag":
		return "태그를 찾을 수 없습니다"
	case "translation":
		return "번역을 찾을 수 없습니다"
	case "user":
		return "사용자를 찾을 수 없습니다"
	default:
		return "요청한 데이터를 찾을 수 없습니다"
	}
}
