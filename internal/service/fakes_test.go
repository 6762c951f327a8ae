package service

import (
	"context"
	"fmt"

	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"gorm.io/gorm"
)

/* ---------------- In-memory fakes for the repository interfaces ---------------- */

type fakeQuizRepo struct {
	quizzes     map[uint]model.Quiz
	questions   map[uint][]model.QuizQuestion // key: quiz id
	questionErr error
	calls       int
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:   map[uint]model.Quiz{},
		questions: map[uint][]model.QuizQuestion{},
	}
}

func (r *fakeQuizRepo) FindByID(ctx context.Context, id uint) (*model.Quiz, error) {
	q, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *fakeQuizRepo) FindByIDWithCourse(ctx context.Context, id uint) (*repository.QuizWithCourse, error) {
	q, ok := r.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &repository.QuizWithCourse{Quiz: q, CourseTitle: fmt.Sprintf("Course %d", q.CourseID)}, nil
}

func (r *fakeQuizRepo) FindByCourseIDWithQuestionCount(ctx context.Context, courseID uint) ([]repository.QuizWithQuestionCount, error) {
	var out []repository.QuizWithQuestionCount
	for _, q := range r.quizzes {
		if q.CourseID == courseID {
			out = append(out, repository.QuizWithQuestionCount{Quiz: q, QuestionCount: len(r.questions[q.ID])})
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) FindQuestionsByQuizID(ctx context.Context, quizID uint) ([]model.QuizQuestion, error) {
	r.calls++
	if r.questionErr != nil {
		return nil, r.questionErr
	}
	return r.questions[quizID], nil
}

type answerKey struct{ userID, questionID uint }

type fakeAnswerRepo struct {
	rows    map[answerKey]model.QuizAnswer
	upserts int
	failAt  int // 1-based upsert call that fails; 0 never fails
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{rows: map[answerKey]model.QuizAnswer{}}
}

func (r *fakeAnswerRepo) Upsert(ctx context.Context, answer *model.QuizAnswer) error {
	r.upserts++
	if r.failAt > 0 && r.upserts == r.failAt {
		return fmt.Errorf("connection reset")
	}
	r.rows[answerKey{answer.UserID, answer.QuestionID}] = *answer
	return nil
}

type fakeProgressRepo struct {
	rows      []model.UserProgress
	upsertErr error
}

func (r *fakeProgressRepo) UpsertQuizProgress(ctx context.Context, progress *model.UserProgress) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	for i, row := range r.rows {
		if row.UserID == progress.UserID && row.CourseID == progress.CourseID &&
			row.LessonID == nil && row.QuizID != nil && *row.QuizID == *progress.QuizID {
			progress.ID = row.ID
			r.rows[i] = *progress
			return nil
		}
	}
	progress.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *progress)
	return nil
}

func (r *fakeProgressRepo) FindByUserAndCourse(ctx context.Context, userID, courseID uint) ([]repository.ProgressWithLesson, error) {
	var out []repository.ProgressWithLesson
	for _, row := range r.rows {
		if row.UserID == userID && row.CourseID == courseID {
			out = append(out, repository.ProgressWithLesson{UserProgress: row})
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uint]model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// domQuiz is quiz 7 of course 3: question 1 "True" (1 pt), question 2
// "Document Object Model" (2 pts).
func domQuiz() (*fakeQuizRepo, *fakeAnswerRepo) {
	quizzes := newFakeQuizRepo()
	quizzes.quizzes[7] = model.Quiz{ID: 7, CourseID: 3, Title: "DOM basics"}
	quizzes.questions[7] = []model.QuizQuestion{
		{ID: 1, QuizID: 7, QuestionText: "HTML is a markup language.", QuestionType: model.QuestionTypeTrueFalse, CorrectAnswer: "True", Points: 1, QuestionOrder: 1},
		{ID: 2, QuizID: 7, QuestionText: "What does DOM stand for?", QuestionType: model.QuestionTypeShortAnswer, CorrectAnswer: "Document Object Model", Points: 2, QuestionOrder: 2},
	}
	return quizzes, newFakeAnswerRepo()
}
