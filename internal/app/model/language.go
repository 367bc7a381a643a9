package model

import (
	"time"
)

// Language represents a language supported by the translation catalog
// 번역 카탈로그가 지원하는 언어
type Language struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Code      string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"code"` // 언어 코드 (예: "ko", "en-US")
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`            // 언어 이름 (예: "한국어")
	IsActive  bool      `gorm:"not null" json:"is_active"`                         // 활성화 여부. 기본값은 서비스 계층에서 처리
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 언어 삭제 시 소속 번역도 함께 삭제
	Translations []Translation `gorm:"foreignKey:LanguageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Language) TableName() string {
	return "languages"
}

// LanguageSummary is the compact projection embedded in translation payloads
type LanguageSummary struct {
	ID   uint   `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func (l *Language) Summary() LanguageSummary {
	return LanguageSummary{ID: l.ID, Code: l.Code, Name: l.Name}
}
