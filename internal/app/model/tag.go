package model

import (
	"time"
)

// Tag represents a categorization label that can be attached to translations
// 번역에 붙일 수 있는 분류 라벨
type Tag struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"` // 태그 이름 (예: "frontend")
	Description *string   `gorm:"type:text" json:"description"`                       // 설명 (nullable)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 태그 삭제 시 연결만 해제되고 번역은 남음
	Translations []Translation `gorm:"many2many:translation_tags;" json:"translations,omitempty"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagSummary is the compact projection embedded in translation payloads
type TagSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (t *Tag) Summary() TagSummary {
	return TagSummary{ID: t.ID, Name: t.Name}
}
