package database

import (
	"context"
	"fmt"

	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	SampleUserEmail    = "demo@example.com"
	SampleUserPassword = "password123"
)

// SeedSampleData loads a demo user and one course with lessons and a quiz.
// It does nothing when seeding is disabled or any user already exists.
func SeedSampleData(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Seed {
		return nil
	}
	return Seed(context.Background(), db, cfg.Auth.BcryptCost)
}

func Seed(ctx context.Context, db *gorm.DB, bcryptCost int) error {
	db = db.WithContext(ctx)

	var users int64
	if err := db.Model(&model.User{}).Count(&users).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if users > 0 {
		log.Info().Int64("users", users).Msg("Seed: Database already populated, skipping")
		return nil
	}

	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(SampleUserPassword), bcryptCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			FirstName: "Demo",
			LastName:  "Learner",
			Username:  "demo",
			Email:     SampleUserEmail,
			Password:  string(hash),
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		course := sampleCourse()
		if err := tx.Create(&course).Error; err != nil {
			return fmt.Errorf("failed to seed course: %w", err)
		}

		log.Info().Uint("userID", user.ID).Uint("courseID", course.ID).Msg("Seed: Sample data created")
		return nil
	})
}

func sampleCourse() model.Course {
	htmlQuestion := model.QuizQuestion{
		QuestionText:  "HTML stands for HyperText Markup Language.",
		QuestionType:  model.QuestionTypeTrueFalse,
		CorrectAnswer: "True",
		Points:        1,
		QuestionOrder: 1,
	}
	htmlQuestion.SetOptions([]string{"True", "False"})

	acronym := model.QuizQuestion{
		QuestionText:  "What does DOM stand for?",
		QuestionType:  model.QuestionTypeShortAnswer,
		CorrectAnswer: "Document Object Model",
		Points:        2,
		QuestionOrder: 2,
	}

	tag := model.QuizQuestion{
		QuestionText:  "Which tag links an external stylesheet?",
		QuestionType:  model.QuestionTypeMultipleChoice,
		CorrectAnswer: "<link>",
		Points:        1,
		QuestionOrder: 3,
	}
	tag.SetOptions([]string{"<style>", "<link>", "<script>", "<css>"})

	return model.Course{
		Title:           "Web Development Fundamentals",
		Description:     "HTML, CSS and the browser document model from the ground up.",
		DifficultyLevel: model.DifficultyBeginner,
		DurationHours:   12,
		Lessons: []model.Lesson{
			{Title: "How the Web Works", Content: "Clients, servers and HTTP.", LessonOrder: 1, DurationMinutes: 20},
			{Title: "HTML Basics", Content: "Elements, attributes and document structure.", LessonOrder: 2, DurationMinutes: 35},
			{Title: "Styling with CSS", Content: "Selectors, the cascade and the box model.", LessonOrder: 3, DurationMinutes: 40},
		},
		Quizzes: []model.Quiz{
			{
				Title:            "HTML Fundamentals Quiz",
				Description:      "Check your understanding of the first two lessons.",
				TotalQuestions:   3,
				TimeLimitMinutes: 15,
				Questions:        []model.QuizQuestion{htmlQuestion, acronym, tag},
			},
		},
	}
}
