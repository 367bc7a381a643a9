package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ikkim/modumal-backend/config"
	"github.com/ikkim/modumal-backend/internal/app/model"
	"github.com/ikkim/modumal-backend/internal/app/repository"
	"github.com/ikkim/modumal-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Repository 생성
	languageRepo := repository.NewLanguageRepository(db.GetDB())
	translationRepo := repository.NewTranslationRepository(db.GetDB())

	// 언어 코드 -> ID 매핑 준비
	languages, err := languageRepo.FindAll()
	if err != nil {
		log.Fatal("Failed to load languages:", err)
	}
	languageIDs := make(map[string]uint, len(languages))
	for _, language := range languages {
		languageIDs[language.Code] = language.ID
	}

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	translations, skipped, err := readTranslationsFromXLSX(filePath, languageIDs)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total translations to import: %d (skipped: %d)\n", len(translations), skipped)

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	// 배치로 저장
	batchSize := 1000
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := translationRepo.BulkCreate(translations, batchSize); err != nil {
		log.Fatal("Failed to bulk create translations:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total translations imported: %d\n", len(translations))
}

// readTranslationsFromXLSX reads rows of (key, value, language code, group).
// Rows referencing an unknown language code are skipped, not failed.
func readTranslationsFromXLSX(filePath string, languageIDs map[string]uint) ([]model.Translation, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// 첫 번째 시트 이름 가져오기
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	// 모든 행 읽기
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var translations []model.Translation
	seen := make(map[string]bool) // 중복 제거용 (key + language + group)
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			// 헤더 출력 (디버깅용)
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		// 필수 컬럼 수 확인: key, value, language code
		if len(row) < 3 {
			skippedCount++
			continue
		}

		key := strings.TrimSpace(row[0])
		value := strings.TrimSpace(row[1])
		languageCode := strings.TrimSpace(row[2])

		group := model.DefaultGroup
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			group = strings.TrimSpace(row[3])
		}

		if key == "" || value == "" || languageCode == "" {
			skippedCount++
			continue
		}

		languageID, ok := languageIDs[languageCode]
		if !ok {
			fmt.Printf("Row %d: unknown language code %q, skipping\n", i+1, languageCode)
			skippedCount++
			continue
		}

		dedupeKey := fmt.Sprintf("%s|%s|%s", key, languageCode, group)
		if seen[dedupeKey] {
			skippedCount++
			continue
		}
		seen[dedupeKey] = true

		translations = append(translations, model.Translation{
			Key:        key,
			Value:      value,
			LanguageID: languageID,
			Group:      group,
		})
	}

	return translations, skippedCount, nil
}
