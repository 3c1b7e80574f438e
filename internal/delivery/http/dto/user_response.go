package dto

import (
	"time"

	"career-compass/internal/domain/user"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Age             *int      `json:"age"`
	EducationLevel  string    `json:"education_level"`
	CurrentField    string    `json:"current_field"`
	YearsExperience int       `json:"years_experience"`
	Location        string    `json:"location"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewUserProfileResponse(u user.User) UserProfileResponse {
	return UserProfileResponse{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Age:             u.Age,
		EducationLevel:  u.EducationLevel,
		CurrentField:    u.CurrentField,
		YearsExperience: u.YearsExperience,
		Location:        u.Location,
		CreatedAt:       u.CreatedAt,
	}
}

type AuthResponse struct {
	User         *UserProfileResponse `json:"user,omitempty"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}
