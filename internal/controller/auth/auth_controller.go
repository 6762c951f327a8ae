package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulearn/internal/controller"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/middleware"
	"github.com/lshigami/edulearn/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
	tokens      service.TokenService
	resp        *controller.Responder
}

func NewAuthController(authService service.AuthService, tokens service.TokenService, resp *controller.Responder) *AuthController {
	return &AuthController{authService: authService, tokens: tokens, resp: resp}
}

func (c *AuthController) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/auth")
	group.POST("/register", c.Register)
	group.POST("/login", c.Login)
	group.GET("/profile/:userId", c.GetProfile)
	group.GET("/me", middleware.RequireAuth(c.tokens), c.Me)
	group.GET("/health", c.Health)
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "New account"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid email, short password or duplicate user"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: Failed to bind JSON")
		c.resp.Fail(ctx, http.StatusBadRequest, dto.ValidationMessage(err, dto.MsgRegisterRequired, dto.RegisterMessages), err)
		return
	}

	userID, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.resp.Fail(ctx, http.StatusBadRequest, dto.ValidationMessage(err, dto.MsgLoginRequired, nil), err)
		return
	}

	user, token, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    *user,
		Token:   token,
	})
}

// GetProfile godoc
// @Summary Get a user's profile
// @Tags Auth
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user id"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /auth/profile/{userId} [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID, ok := controller.ParseID(ctx, "userId")
	if !ok {
		c.resp.Fail(ctx, http.StatusBadRequest, "Invalid user id", nil)
		return
	}
	c.writeProfile(ctx, userID)
}

// Me godoc
// @Summary Profile of the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		c.resp.Fail(ctx, http.StatusUnauthorized, "Access token required", nil)
		return
	}
	c.writeProfile(ctx, userID)
}

func (c *AuthController) writeProfile(ctx *gin.Context, userID uint) {
	user, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		c.resp.Error(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: *user})
}

func (c *AuthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Success:   true,
		Message:   "Auth routes are working",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
