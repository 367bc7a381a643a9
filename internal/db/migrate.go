package db

import (
	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Language{},
		&model.Tag{},
		&model.Translation{},
		&model.TranslationTag{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedLanguages(); err != nil {
		logger.Error("Failed to seed languages", err)
		return err
	}
	if err := seedTags(); err != nil {
		logger.Error("Failed to seed tags", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// seedLanguages 기본 언어 데이터 생성
func seedLanguages() error {
	var count int64
	if err := DB.Model(&model.Language{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Languages already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding language data...")

	languages := []model.Language{
		{Code: "ko", Name: "한국어", IsActive: true},
		{Code: "en", Name: "English", IsActive: true},
		{Code: "ja", Name: "日本語", IsActive: true},
		{Code: "zh", Name: "中文", IsActive: true},
	}

	totalInserted := 0
	for _, language := range languages {
		if err := DB.Create(&language).Error; err != nil {
			logger.Error("Failed to create language", err, map[string]interface{}{
				"code": language.Code,
			})
			return err
		}
		totalInserted++
	}

	logger.Info("Languages seeded successfully", map[string]interface{}{
		"total_languages": totalInserted,
	})

	return nil
}

// seedTags 기본 태그 데이터 생성
func seedTags() error {
	var count int64
	if err := DB.Model(&model.Tag{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Tags already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding tag data...")

	describe := func(s string) *string { return &s }

	tags := []model.Tag{
		{Name: "frontend", Description: describe("웹/앱 화면에 노출되는 문구")},
		{Name: "backend", Description: describe("서버 응답 메시지")},
		{Name: "email", Description: describe("이메일 템플릿 문구")},
		{Name: "error", Description: describe("에러 메시지")},
		{Name: "marketing", Description: describe("마케팅/프로모션 문구")},
	}

	totalInserted := 0
	for _, tag := range tags {
		if err := DB.Create(&tag).Error; err != nil {
			logger.Error("Failed to create tag", err, map[string]interface{}{
				"tag": tag.Name,
			})
			return err
		}
		totalInserted++
	}

	logger.Info("Tags seeded successfully", map[string]interface{}{
		"total_tags": totalInserted,
	})

	return nil
}
