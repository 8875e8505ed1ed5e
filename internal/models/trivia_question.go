package models

import "time"

// TriviaQuestion is a true/false question in the local bank. The bank backs
// up the OpenTDB provider; game state itself is never persisted.
type TriviaQuestion struct {
	ID            uint      `gorm:"primaryKey"`
	QuestionText  string    `gorm:"type:text;not null"`
	Category      string    `gorm:"type:varchar(50);index"`
	Difficulty    string    `gorm:"type:varchar(20);index"`
	CorrectAnswer string    `gorm:"type:varchar(10);not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (TriviaQuestion) TableName() string {
	return "trivia_questions"
}
