package user

import (
	"context"
	"errors"
	"strings"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrInternal     = errors.New("internal error")
)

// UpdateProfileInput carries only the fields to change.
type UpdateProfileInput struct {
	Name            *string
	Age             *int
	EducationLevel  *string
	CurrentField    *string
	YearsExperience *int
	Location        *string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Name = name
	}
	if in.Age != nil {
		if *in.Age <= 0 {
			return user.User{}, ErrInvalidInput
		}
		age := *in.Age
		usr.Age = &age
	}
	if in.EducationLevel != nil {
		usr.EducationLevel = strings.TrimSpace(*in.EducationLevel)
	}
	if in.CurrentField != nil {
		usr.CurrentField = strings.TrimSpace(*in.CurrentField)
	}
	if in.YearsExperience != nil {
		if *in.YearsExperience < 0 {
			return user.User{}, ErrInvalidInput
		}
		usr.YearsExperience = *in.YearsExperience
	}
	if in.Location != nil {
		usr.Location = strings.TrimSpace(*in.Location)
	}

	if err := s.users.UpdateProfile(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
