package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mroshb/trivia_bot/internal/models"
	"github.com/mroshb/trivia_bot/internal/repositories"
	"github.com/mroshb/trivia_bot/internal/trivia"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: import_questions <file.xlsx>")
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}
	questionRepo := repositories.NewQuestionRepository(db)

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()

	totalImported := 0

	for _, sheetName := range sheets {
		fmt.Printf("Importing sheet: %s\n", sheetName)
		rows, err := f.GetRows(sheetName)
		if err != nil {
			fmt.Printf("Error reading sheet %s: %v\n", sheetName, err)
			continue
		}

		for i, row := range rows {
			if i == 0 || len(row) < 4 { // Skip header or invalid rows
				continue
			}

			// row[0]: Question Text
			// row[1]: Category (general | computers)
			// row[2]: Difficulty (easy | medium | hard)
			// row[3]: Correct Answer (T / F / True / False)

			questionText := strings.TrimSpace(row[0])
			category := strings.ToLower(strings.TrimSpace(row[1]))
			difficulty := strings.ToLower(strings.TrimSpace(row[2]))
			answerIndicator := strings.ToLower(strings.TrimSpace(row[3]))

			if questionText == "" {
				continue
			}

			var correctAnswer string
			switch {
			case strings.HasPrefix(answerIndicator, "t"):
				correctAnswer = "True"
			case strings.HasPrefix(answerIndicator, "f"):
				correctAnswer = "False"
			default:
				fmt.Printf("Invalid correct answer indicator: %s in row %d\n", row[3], i)
				continue
			}

			if category == "" {
				category = trivia.CategoryGeneral
			}
			if difficulty == "" {
				difficulty = trivia.DifficultyEasy
			}

			question := models.TriviaQuestion{
				QuestionText:  questionText,
				Category:      category,
				Difficulty:    difficulty,
				CorrectAnswer: correctAnswer,
			}

			if err := questionRepo.Create(&question); err != nil {
				fmt.Printf("Error creating question in row %d: %v\n", i, err)
			} else {
				totalImported++
			}
		}
	}

	fmt.Printf("Successfully imported %d questions.\n", totalImported)

	if total, err := questionRepo.Count(); err == nil {
		fmt.Printf("The bank now holds %d questions.\n", total)
	}
}
