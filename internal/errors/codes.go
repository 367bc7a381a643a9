package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"       // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이메일/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"      // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"      // 잘못된 토큰
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"      // 토큰 폐기됨
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"       // 이메일 중복

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // 잘못된 입력
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // 잘못된 ID
	ValidationTooLong      = "VALIDATION_TOO_LONG"      // 너무 길음
	ValidationRequired     = "VALIDATION_REQUIRED"      // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 언어 (LANGUAGE_) ====================
	LanguageNotFound   = "LANGUAGE_NOT_FOUND"    // 언어 없음
	LanguageCodeExists = "LANGUAGE_CODE_EXISTS"  // 언어 코드 중복

	// ==================== 태그 (TAG_) ====================
	TagNotFound   = "TAG_NOT_FOUND"   // 태그 없음
	TagNameExists = "TAG_NAME_EXISTS" // 태그 이름 중복

	// ==================== 번역 (TRANSLATION_) ====================
	TranslationNotFound    = "TRANSLATION_NOT_FOUND"    // 번역 없음
	TranslationInvalidTags = "TRANSLATION_INVALID_TAGS" // 존재하지 않는 태그 참조

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
)
