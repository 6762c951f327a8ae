package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/edulearn/config"
	"github.com/lshigami/edulearn/internal/apperror"
	"github.com/lshigami/edulearn/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Env: "test",
		Auth: config.Auth{
			JWTSecret:  "test-secret",
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func validRegistration() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Email:     "ada@example.com",
		Password:  "engine42",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	cfg := testConfig()
	users := newFakeUserRepo()
	tokens := NewTokenService(cfg)
	svc := NewAuthService(users, tokens, cfg)
	ctx := context.Background()

	id, err := svc.Register(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a user id")
	}
	if users.users[id].Password == "engine42" {
		t.Fatal("password stored in plain text")
	}

	user, token, err := svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "engine42"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != id || user.Username != "ada" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != id || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegister_Validation(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(newFakeUserRepo(), NewTokenService(cfg), cfg)

	missing := validRegistration()
	missing.LastName = ""
	badEmail := validRegistration()
	badEmail.Email = "ada.example.com"
	short := validRegistration()
	short.Password = "12345"

	cases := map[string]struct {
		req     dto.RegisterRequest
		message string
	}{
		"missing field":  {missing, "Please fill all required fields"},
		"invalid email":  {badEmail, "Please enter a valid email address"},
		"short password": {short, "Password must be at least 6 characters long"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.req)
			if apperror.KindOf(err) != apperror.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) || appErr.Message != tc.message {
				t.Fatalf("message = %v, want %q", err, tc.message)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(newFakeUserRepo(), NewTokenService(cfg), cfg)
	ctx := context.Background()

	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	dup := validRegistration()
	dup.Email = "other@example.com"
	_, err := svc.Register(ctx, dup)
	if apperror.KindOf(err) != apperror.KindValidation {
		t.Fatalf("expected validation error for duplicate username, got %v", err)
	}
}

func TestLogin_Failures(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(newFakeUserRepo(), NewTokenService(cfg), cfg)
	ctx := context.Background()
	if _, err := svc.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com"}); apperror.KindOf(err) != apperror.KindValidation {
		t.Errorf("missing password: got %v", err)
	}
	if _, _, err := svc.Login(ctx, dto.LoginRequest{Email: "ada@example.com", Password: "wrong-pass"}); apperror.KindOf(err) != apperror.KindUnauthorized {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, err := svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "engine42"}); apperror.KindOf(err) != apperror.KindUnauthorized {
		t.Errorf("unknown email: got %v", err)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	cfg := testConfig()
	svc := NewAuthService(newFakeUserRepo(), NewTokenService(cfg), cfg)

	_, err := svc.GetProfile(context.Background(), 9)
	if apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTokenService_RejectsForeignSecretAndExpiry(t *testing.T) {
	cfg := testConfig()
	issuer := NewTokenService(cfg).(*tokenService)

	other := testConfig()
	other.Auth.JWTSecret = "another-secret"
	stranger := NewTokenService(other)

	users := newFakeUserRepo()
	svc := NewAuthService(users, issuer, cfg)
	id, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	user := users.users[id]

	token, err := issuer.Issue(&user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := stranger.Parse(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := issuer.Parse(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}
