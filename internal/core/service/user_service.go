package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
	"github.com/kn1ghtm0nster/blog/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// UserService implements the self-service and admin operations on accounts.
//
// Update runs two explicitly sequenced passes: a pure field-validation pass
// (validateUpdate) that accumulates per-field errors, then an apply pass that
// performs the admin-flag authorization check and the mutation. Keeping the
// passes separate means a syntactically valid payload can still be rejected
// at apply time with a request-level error, never merged into the field set.
type UserService struct {
	users      ports.UserRepository
	posts      ports.PostRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewUserService(users ports.UserRepository, posts ports.PostRepository, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, posts: posts, bcryptCost: bcryptCost, log: log}
}

// Get returns the public projection of a single user. Accessible to the user
// themselves or an admin.
func (s *UserService) Get(ctx context.Context, requester domain.Principal, targetID string) (*ports.UserDetail, error) {
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !requester.CanAccess(target) {
		return nil, domain.ErrForbidden
	}
	return s.detail(ctx, target)
}

// List returns one page of users ordered by id ascending. Admin only.
func (s *UserService) List(ctx context.Context, requester domain.Principal, input ports.ListUsersInput) (*ports.ListUsersResult, error) {
	if !requester.Authenticated || !requester.Admin {
		return nil, domain.ErrForbidden
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	size := input.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	users, total, err := s.users.List(ctx, ports.ListUsersFilter{Page: page, Limit: size})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	items := make([]ports.UserDetail, 0, len(users))
	for _, u := range users {
		d, err := s.detail(ctx, u)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
	}, nil
}

// Update applies a partial update to the target user. Accessible to the user
// themselves or an admin; changing the admin flag additionally requires the
// requester to be an admin.
func (s *UserService) Update(ctx context.Context, requester domain.Principal, targetID string, input ports.UpdateUserInput) (*ports.UserDetail, error) {
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !requester.CanAccess(target) {
		return nil, domain.ErrForbidden
	}

	// Pass 1: field validation. Everything here is attributable to a named
	// input field and accumulates so the caller sees all problems at once.
	fe, err := s.validateUpdate(ctx, target, input)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if !fe.Empty() {
		return nil, fe
	}

	// Pass 2: apply. The admin-flag authorization belongs here, not in field
	// validation: the flag is a well-formed boolean either way.
	if input.Admin != nil && !requester.Admin {
		return nil, domain.ErrAdminFieldForbidden
	}

	if input.Username != nil {
		target.Username = *input.Username
	}
	if input.Email != nil {
		target.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("update user: hash password: %w", err)
		}
		target.PasswordHash = string(hash)
	}
	if input.Admin != nil {
		target.Admin = *input.Admin
		target.Staff = *input.Admin
	}
	target.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, target); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", target.ID).
		Str("requester", requester.Username).
		Msg("user updated")

	return s.detail(ctx, target)
}

// Delete removes the target user and every post and comment they authored in
// one transaction. Accessible to the user themselves or an admin.
func (s *UserService) Delete(ctx context.Context, requester domain.Principal, targetID string) error {
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if !requester.CanAccess(target) {
		return domain.ErrForbidden
	}

	if err := s.users.DeleteCascade(ctx, target.ID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().
		Str("user_id", target.ID).
		Str("username", target.Username).
		Str("requester", requester.Username).
		Msg("user deleted")

	return nil
}

// validateUpdate is the pure field-validation pass. The returned error is
// reserved for store failures during the uniqueness probe; policy violations
// land in the FieldErrors.
func (s *UserService) validateUpdate(ctx context.Context, target *domain.User, input ports.UpdateUserInput) (domain.FieldErrors, error) {
	fe := domain.FieldErrors{}

	if input.Email != nil && *input.Email != target.Email {
		_, err := s.users.FindByEmail(ctx, *input.Email)
		switch {
		case err == nil:
			fe.Add("email", "email already in use")
		case !errors.Is(err, domain.ErrUserNotFound):
			return nil, err
		}
	}

	if input.Password != nil || input.PasswordConfirm != nil {
		if input.Password == nil || input.PasswordConfirm == nil || *input.Password != *input.PasswordConfirm {
			fe.Add("password", "passwords do not match")
		} else {
			for _, msg := range domain.CheckPasswordStrength(*input.Password) {
				fe.Add("password", msg)
			}
			// Reuse check: only meaningful against an existing record, which
			// is always the case on this path.
			if bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(*input.Password)) == nil {
				fe.Add("password", "new password cannot be the same as the old password")
			}
		}
	}

	return fe, nil
}

func (s *UserService) detail(ctx context.Context, u *domain.User) (*ports.UserDetail, error) {
	postIDs, err := s.posts.PostIDsByAuthor(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("load authored posts: %w", err)
	}
	commentIDs, err := s.posts.CommentIDsByAuthor(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("load authored comments: %w", err)
	}
	return &ports.UserDetail{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Admin:      u.Admin,
		PostIDs:    postIDs,
		CommentIDs: commentIDs,
	}, nil
}
