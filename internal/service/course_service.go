package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/edulearn/internal/apperror"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type CourseService interface {
	ListCourses(ctx context.Context) ([]dto.CourseSummaryDTO, error)
	GetCourse(ctx context.Context, courseID uint) (*dto.CourseDetailDTO, error)
	GetLesson(ctx context.Context, lessonID uint) (*dto.LessonResponseDTO, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	lessonRepo repository.LessonRepository
	quizRepo   repository.QuizRepository
}

func NewCourseService(courseRepo repository.CourseRepository, lessonRepo repository.LessonRepository, quizRepo repository.QuizRepository) CourseService {
	return &courseService{courseRepo: courseRepo, lessonRepo: lessonRepo, quizRepo: quizRepo}
}

func (s *courseService) ListCourses(ctx context.Context) ([]dto.CourseSummaryDTO, error) {
	courses, err := s.courseRepo.FindAllWithCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListCourses: Failed to get courses with counts from repository")
		return nil, apperror.Store("error fetching courses", err)
	}

	dtos := make([]dto.CourseSummaryDTO, 0, len(courses))
	for _, c := range courses {
		dtos = append(dtos, dto.CourseSummaryDTO{
			ID:              c.Course.ID,
			Title:           c.Course.Title,
			Description:     c.Course.Description,
			DifficultyLevel: c.Course.DifficultyLevel,
			DurationHours:   c.Course.DurationHours,
			ImageURL:        c.Course.ImageURL,
			LessonCount:     c.LessonCount,
			QuizCount:       c.QuizCount,
			CreatedAt:       c.Course.CreatedAt,
			UpdatedAt:       c.Course.UpdatedAt,
		})
	}
	return dtos, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID uint) (*dto.CourseDetailDTO, error) {
	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Course not found")
		}
		log.Error().Err(err).Uint("courseID", courseID).Msg("GetCourse: Failed to load course")
		return nil, apperror.Store("error fetching course", err)
	}

	lessons, err := s.lessonRepo.FindByCourseID(ctx, courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("GetCourse: Failed to load lessons")
		return nil, apperror.Store("error fetching lessons", err)
	}
	quizzes, err := s.quizRepo.FindByCourseIDWithQuestionCount(ctx, courseID)
	if err != nil {
		log.Error().Err(err).Uint("courseID", courseID).Msg("GetCourse: Failed to load quizzes")
		return nil, apperror.Store("error fetching quizzes", err)
	}

	var resp dto.CourseDetailDTO
	if err := copier.Copy(&resp, course); err != nil {
		return nil, fmt.Errorf("error preparing course response: %w", err)
	}
	resp.Lessons = make([]dto.LessonResponseDTO, 0, len(lessons))
	for _, l := range lessons {
		var ld dto.LessonResponseDTO
		copier.Copy(&ld, &l)
		resp.Lessons = append(resp.Lessons, ld)
	}
	resp.Quizzes = make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		var qd dto.QuizSummaryDTO
		copier.Copy(&qd, &q)
		resp.Quizzes = append(resp.Quizzes, qd)
	}
	return &resp, nil
}

func (s *courseService) GetLesson(ctx context.Context, lessonID uint) (*dto.LessonResponseDTO, error) {
	lesson, err := s.lessonRepo.FindByIDWithCourse(ctx, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Lesson not found")
		}
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("GetLesson: Failed to load lesson")
		return nil, apperror.Store("error fetching lesson", err)
	}

	var resp dto.LessonResponseDTO
	if err := copier.Copy(&resp, lesson); err != nil {
		return nil, fmt.Errorf("error preparing lesson response: %w", err)
	}
	return &resp, nil
}
