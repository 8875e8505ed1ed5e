package repositories

import (
	"github.com/mroshb/trivia_bot/internal/models"
	"github.com/mroshb/trivia_bot/pkg/errors"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// RandomQuestions retrieves up to count random questions, optionally
// filtered by category and difficulty.
func (r *QuestionRepository) RandomQuestions(count int, category, difficulty string) ([]models.TriviaQuestion, error) {
	query := r.db.Model(&models.TriviaQuestion{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var questions []models.TriviaQuestion
	result := query.Order("RANDOM()").Limit(count).Find(&questions)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get questions")
	}

	return questions, nil
}

// Create stores a new question in the bank.
func (r *QuestionRepository) Create(question *models.TriviaQuestion) error {
	if err := r.db.Create(question).Error; err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to create question")
	}
	return nil
}

// Count returns the total number of questions in the bank.
func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.TriviaQuestion{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeInternalError, "failed to count questions")
	}
	return count, nil
}
