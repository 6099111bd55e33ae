package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func newAuthService(users *stubUserRepo) *AuthService {
	return NewAuthService(users, "secret", time.Hour, bcrypt.MinCost, testLogger())
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserRepo()
	svc := newAuthService(users)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "c0rrect-horse",
		PasswordConfirm: "c0rrect-horse",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "c0rrect-horse" {
		t.Fatalf("expected password to be hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("c0rrect-horse")) != nil {
		t.Fatalf("stored hash does not match password")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != user.ID || claims["username"] != "alice" {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if claims["admin"] != false {
		t.Fatalf("new accounts must not be admin")
	}
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "c0rrect-horse",
		PasswordConfirm: "something-else",
	})

	var fe domain.FieldErrors
	if !errors.As(err, &fe) || len(fe["password"]) != 1 {
		t.Fatalf("expected password field error, got %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "1234",
		PasswordConfirm: "1234",
	})

	var fe domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fe["password"]) != 2 {
		t.Fatalf("expected one message per violated rule, got %v", fe["password"])
	}
}

func TestAuthService_Register_DuplicateUsernameAndEmail(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "alice", "alice@example.com", "c0rrect-horse", false)
	svc := newAuthService(users)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "c0rrect-horse",
		PasswordConfirm: "c0rrect-horse",
	})

	var fe domain.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fe["username"]) != 1 || len(fe["email"]) != 1 {
		t.Fatalf("expected username and email errors together, got %v", fe)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "carol", "carol@example.com", "s3cret-pass", true)
	svc := newAuthService(users)

	token, user, err := svc.Login(context.Background(), "carol", "s3cret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil || user.Username != "carol" {
		t.Fatalf("unexpected result: token=%q user=%+v", token, user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["admin"] != true {
		t.Fatalf("expected admin claim, got %v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	users := newStubUserRepo()
	users.seed(t, "dave", "dave@example.com", "goodpass1", false)
	svc := newAuthService(users)

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
