package model

import (
	"time"
)

const DefaultGroup = "general"

// Translation represents a single key/value pair in one language
// 한 언어에 속한 번역 키/값 쌍. (key, language_id, group)의 유일성은
// 의도적으로 강제하지 않음
type Translation struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Key        string    `gorm:"type:varchar(255);not null;index" json:"key"` // 조회 키 (예: "welcome.header.1")
	Value      string    `gorm:"type:text;not null" json:"value"`             // 번역된 문자열
	LanguageID uint      `gorm:"not null;index" json:"language_id"`
	Group      string    `gorm:"column:group_name;type:varchar(255);not null;default:general;index" json:"group"` // 네임스페이스 (예: "emails")
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Language *Language `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"language,omitempty"`
	Tags     []Tag     `gorm:"many2many:translation_tags;" json:"tags,omitempty"`
}

func (Translation) TableName() string {
	return "translations"
}

// TranslationTag is the explicit join row between translations and tags
// 번역과 태그의 다대다 관계
type TranslationTag struct {
	TranslationID uint `gorm:"primaryKey;index" json:"translation_id"`
	TagID         uint `gorm:"primaryKey;index" json:"tag_id"`
}

func (TranslationTag) TableName() string {
	return "translation_tags"
}

// TranslationView is the API payload with language and tag summaries embedded
type TranslationView struct {
	ID         uint            `json:"id"`
	Key        string          `json:"key"`
	Value      string          `json:"value"`
	LanguageID uint            `json:"language_id"`
	Group      string          `json:"group"`
	Language   LanguageSummary `json:"language"`
	Tags       []TagSummary    `json:"tags"`
}

// View projects a translation (with preloaded associations) into its API shape
func (t *Translation) View() TranslationView {
	view := TranslationView{
		ID:         t.ID,
		Key:        t.Key,
		Value:      t.Value,
		LanguageID: t.LanguageID,
		Group:      t.Group,
		Tags:       make([]TagSummary, 0, len(t.Tags)),
	}
	if t.Language != nil {
		view.Language = t.Language.Summary()
	}
	for i := range t.Tags {
		view.Tags = append(view.Tags, t.Tags[i].Summary())
	}
	return view
}

// TranslationViews projects a slice of translations, never returning nil
func TranslationViews(translations []Translation) []TranslationView {
	views := make([]TranslationView, 0, len(translations))
	for i := range translations {
		views = append(views, translations[i].View())
	}
	return views
}

// TranslationKeyedView is the by-key payload. Unlike the listing projection
// it embeds the full language record, so callers comparing a key across
// languages can see is_active without a second lookup
// 키 조회 응답. 언어 요약이 아닌 전체 언어 레코드를 포함
type TranslationKeyedView struct {
	ID         uint         `json:"id"`
	Key        string       `json:"key"`
	Value      string       `json:"value"`
	LanguageID uint         `json:"language_id"`
	Group      string       `json:"group"`
	Language   *Language    `json:"language"`
	Tags       []TagSummary `json:"tags"`
}

// KeyedView projects a translation (with its Language preloaded) into the
// by-key API shape
func (t *Translation) KeyedView() TranslationKeyedView {
	view := TranslationKeyedView{
		ID:         t.ID,
		Key:        t.Key,
		Value:      t.Value,
		LanguageID: t.LanguageID,
		Group:      t.Group,
		Language:   t.Language,
		Tags:       make([]TagSummary, 0, len(t.Tags)),
	}
	for i := range t.Tags {
		view.Tags = append(view.Tags, t.Tags[i].Summary())
	}
	return view
}

// TranslationKeyedViews projects a slice for the by-key response, never
// returning nil
func TranslationKeyedViews(translations []Translation) []TranslationKeyedView {
	views := make([]TranslationKeyedView, 0, len(translations))
	for i := range translations {
		views = append(views, translations[i].KeyedView())
	}
	return views
}
