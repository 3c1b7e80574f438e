package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID
	Name            string
	Email           string
	PasswordHash    string
	Age             *int
	EducationLevel  string
	CurrentField    string
	YearsExperience int
	Location        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
