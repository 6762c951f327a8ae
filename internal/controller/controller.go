// Package controller holds the response helpers shared by the HTTP
// controllers and the handlers that sit outside any resource group.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/apperror"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/rs/zerolog/log"
)

const APIVersion = "1.0.0"

// Responder writes the JSON envelopes. Development mode adds the cause of
// an error to the body.
type Responder struct {
	development bool
}

func NewResponder(cfg *config.Config) *Responder {
	return &Responder{development: cfg.IsDevelopment()}
}

func (r *Responder) OK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Envelope{Success: true, Data: data})
}

func (r *Responder) Fail(ctx *gin.Context, status int, message string, cause error) {
	body := dto.ErrorResponse{Success: false, Message: message}
	if r.development && cause != nil {
		body.Error = cause.Error()
	}
	ctx.JSON(status, body)
}

// Error maps a service error onto a status code. Store and unclassified
// errors surface as a generic 500 message.
func (r *Responder) Error(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
	}

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.Request.URL.Path).Str("kind", apperror.KindOf(err).String()).Msg("Request failed")
		r.Fail(ctx, status, "Internal server error", err)
		return
	}
	r.Fail(ctx, status, appErr.Message, appErr.Err)
}

// ParseID reads a positive integer path parameter.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// Health godoc
// @Summary API health check
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Message:   "Educational Web API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   APIVersion,
	})
}

func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to Educational Web API",
		"endpoints": gin.H{
			"auth":    "/api/auth",
			"courses": "/api/courses",
			"lessons": "/api/lessons",
			"quizzes": "/api/quizzes",
			"health":  "/api/health",
			"swagger": "/swagger/index.html",
		},
	})
}

func NoRoute(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
		Success: false,
		Message: "Endpoint not found",
		Path:    ctx.Request.URL.RequestURI(),
	})
}
