package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/jinzhu/copier"
	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/apperror"
	"github.com/lshigami/edulearn/internal/dto"
	"github.com/lshigami/edulearn/internal/model"
	"github.com/lshigami/edulearn/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (uint, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponseDTO, string, error)
	GetProfile(ctx context.Context, userID uint) (*dto.UserResponseDTO, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     TokenService
	bcryptCost int
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, cfg *config.Config) AuthService {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &authService{userRepo: userRepo, tokens: tokens, bcryptCost: cost}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (uint, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)

	// Same binding tags the HTTP layer checks, for callers that skip it.
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return 0, apperror.Validation(dto.ValidationMessage(err, dto.MsgRegisterRequired, dto.RegisterMessages))
	}

	exists, err := s.userRepo.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		log.Error().Err(err).Msg("Register: Failed to check for existing user")
		return 0, apperror.Store("failed to check existing users", err)
	}
	if exists {
		return 0, apperror.Validation("User with this email or username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return 0, err
	}

	user := model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Register: Failed to create user")
		return 0, apperror.Store("failed to create user", err)
	}

	log.Info().Uint("userID", user.ID).Msg("Register: User registered")
	return user.ID, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UserResponseDTO, string, error) {
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, "", apperror.Validation(dto.ValidationMessage(err, dto.MsgLoginRequired, nil))
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperror.Unauthorized("Invalid email or password")
		}
		log.Error().Err(err).Msg("Login: Failed to look up user")
		return nil, "", apperror.Store("failed to look up user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Login: Failed to issue token")
		return nil, "", err
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	log.Info().Uint("userID", user.ID).Msg("Login: User logged in")
	return &resp, token, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		log.Error().Err(err).Uint("userID", userID).Msg("GetProfile: Failed to load user")
		return nil, apperror.Store("failed to load user", err)
	}
	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	return &resp, nil
}
