package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users      ports.UserRepository
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration, bcryptCost int, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL, bcryptCost: bcryptCost, log: log}
}

// Register validates the payload, creates the account, and returns a signed
// access token for it. Validation failures accumulate into FieldErrors so the
// caller sees every problem at once.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	fe := domain.FieldErrors{}

	if input.Password != input.PasswordConfirm {
		fe.Add("password", "passwords did not match")
	} else {
		for _, msg := range domain.CheckPasswordStrength(input.Password) {
			fe.Add("password", msg)
		}
	}

	if taken, err := s.usernameTaken(ctx, input.Username); err != nil {
		return "", nil, fmt.Errorf("register: %w", err)
	} else if taken {
		fe.Add("username", "username already taken")
	}
	if taken, err := s.emailTaken(ctx, input.Email); err != nil {
		return "", nil, fmt.Errorf("register: %w", err)
	} else if taken {
		fe.Add("email", "email already in use")
	}

	if !fe.Empty() {
		return "", nil, fe
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return token, created, nil
}

// Login authenticates a user by username and password and returns a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	return token, user, nil
}

func (s *AuthService) usernameTaken(ctx context.Context, username string) (bool, error) {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

func (s *AuthService) emailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"admin":    user.Admin,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
