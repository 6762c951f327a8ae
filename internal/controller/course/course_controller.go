package course

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/controller"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
)

type CourseController struct {
	courseService     service.CourseService
	quizService       service.QuizService
	submissionService service.QuizSubmissionService
	progressRecorder  service.ProgressRecorder
	resp              *controller.Responder
}

func NewCourseController(
	courseService service.CourseService,
	quizService service.QuizService,
	submissionService service.QuizSubmissionService,
	progressRecorder service.ProgressRecorder,
	resp *controller.Responder,
) *CourseController {
	return &CourseController{
		courseService:     courseService,
		quizService:       quizService,
		submissionService: submissionService,
		progressRecorder:  progressRecorder,
		resp:              resp,
	}
}

func (c *CourseController) RegisterRoutes(api *gin.RouterGroup) {
	courses := api.Group("/courses")
	courses.GET("", c.GetAllCourses)
	courses.GET("/health", c.Health)
	courses.GET("/:courseId", c.GetCourse)
	courses.GET("/:courseId/progress/:userId", c.GetUserProgress)
	courses.GET("/lessons/:lessonId", c.GetLesson)
	courses.GET("/quizzes/:quizId", c.GetQuiz)
	courses.POST("/quizzes/:quizId/submit", c.SubmitQuiz)

	// Short aliases.
	api.GET("/lessons/:lessonId", c.GetLesson)
	quizzes := api.Group("/quizzes")
	quizzes.GET("/:quizId", c.GetQuiz)
	quizzes.POST("/:quizId/submit", c.SubmitQuiz)
}

func (c *CourseController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Message:   "Course service is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// GetAllCourses godoc
// @Summary List courses
// @Description All courses, newest first, with lesson and quiz counts.
// @Tags Courses
// @Produce json
// @Success 200 {object} dto.Envelope{data=object{courses=[]dto.CourseSummaryDTO}}
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.ListCourses(ctx.Request.Context())
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	c.resp.OK(ctx, gin.H{"courses": courses})
}

// GetCourse godoc
// @Summary Get a course with its lessons and quizzes
// @Tags Courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.Envelope{data=object{course=dto.CourseDetailDTO}}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{courseId} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "courseId")
	if !ok {
		c.resp.Fail(ctx, http.StatusBadRequest, "Invalid course id", nil)
		return
	}
	course, err := c.courseService.GetCourse(ctx.Request.Context(), courseID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	c.resp.OK(ctx, gin.H{"course": course})
}

// GetLesson godoc
// @Summary Get a lesson
// @Tags Courses
// @Produce json
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} dto.Envelope{data=object{lesson=dto.LessonResponseDTO}}
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /courses/lessons/{lessonId} [get]
// @Router /lessons/{lessonId} [get]
func (c *CourseController) GetLesson(ctx *gin.Context) {
	lessonID, ok := controller.ParseID(ctx, "lessonId")
	if !ok {
		c.resp.Fail(ctx, http.StatusBadRequest, "Invalid lesson id", nil)
		return
	}
	lesson, err := c.courseService.GetLesson(ctx.Request.Context(), lessonID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	c.resp.OK(ctx, gin.H{"lesson": lesson})
}

// GetQuiz godoc
// @Summary Get a quiz and its questions
// @Description Questions come in display order. Correct answers are never included.
// @Tags Quizzes
// @Produce json
// @Param quizId path int true "Quiz ID"
// @Success 200 {object} dto.Envelope{data=object{quiz=dto.QuizDetailDTO}}
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /courses/quizzes/{quizId} [get]
// @Router /quizzes/{quizId} [get]
func (c *CourseController) GetQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseID(ctx, "quizId")
	if !ok {
		c.resp.Fail(ctx, http.StatusBadRequest, "Invalid quiz id", nil)
		return
	}
	quiz, err := c.quizService.GetQuiz(ctx.Request.Context(), quizID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	c.resp.OK(ctx, gin.H{"quiz": quiz})
}

// SubmitQuiz godoc
// @Summary Submit answers to a quiz
// @Description Grades every answer, stores it (overwriting earlier answers to the same question) and records quiz progress.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param quizId path int true "Quiz ID"
// @Param submission body dto.QuizSubmitDTO true "User id and answers"
// @Success 200 {object} dto.Envelope{data=object{result=dto.GradeResultDTO}}
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found or has no questions"
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/quizzes/{quizId}/submit [post]
// @Router /quizzes/{quizId}/submit [post]
func (c *CourseController) SubmitQuiz(ctx *gin.Context) {
	quizID, ok := controller.ParseID(ctx, "quizId")
	if !ok {
		c.resp.Fail(ctx, http.StatusBadRequest, dto.MsgInvalidRequest, nil)
		return
	}

	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: Failed to bind JSON")
		c.resp.Fail(ctx, http.StatusBadRequest, dto.MsgInvalidRequest, err)
		return
	}

	result, err := c.submissionService.Submit(ctx.Request.Context(), quizID, req)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	c.resp.OK(ctx, gin.H{"result": result})
}

// GetUserProgress godoc
// @Summary A user's progress in a course
// @Tags Courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Param userId path int true "User ID"
// @Success 200 {object} dto.Envelope{data=object{progress=[]dto.ProgressResponseDTO}}
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses/{courseId}/progress/{userId} [get]
func (c *CourseController) GetUserProgress(ctx *gin.Context) {
	courseID, ok := controller.ParseID(ctx, "courseId")
	if !ok {
		c.resp.Fail(ctx, http.StatusBadRequest, "Invalid course id", nil)
		return
	}
	userID, ok := controller.ParseID(ctx, "userId")
	if !ok {
		c.resp.Fail(ctx, http.StatusBadRequest, "Invalid user id", nil)
		return
	}
	progress, err := c.progressRecorder.ListCourseProgress(ctx.Request.Context(), userID, courseID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	c.resp.OK(ctx, gin.H{"progress": progress})
}
